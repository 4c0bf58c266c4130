package repositories

import (
	"errors"
	"time"

	"vahub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type SubscriptionRepository interface {
	FindActivePlans() ([]models.Plan, error)
	FindPlanByID(id string) (*models.Plan, error)
	FindPlanByName(name string) (*models.Plan, error)
	FindByUserID(userID string) (*models.Subscription, error)
	Create(subscription *models.Subscription) error
	// Upgrade moves the user onto a new plan, records the payment and
	// refreshes the denormalized status on the users row in one
	// transaction.
	Upgrade(userID, planID string, payment *models.Payment) error
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindActivePlans() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepositoryImpl) FindPlanByID(id string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepositoryImpl) FindPlanByName(name string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.First(&plan, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionRepositoryImpl) FindByUserID(userID string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Preload("Plan").First(&subscription, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepositoryImpl) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

func (r *SubscriptionRepositoryImpl) Upgrade(userID, planID string, payment *models.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		periodEnd := time.Now().AddDate(0, 1, 0)
		result := tx.Model(&models.Subscription{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"plan_id":            planID,
				"status":             models.SubscriptionStatusActive,
				"current_period_end": periodEnd,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			subscription := &models.Subscription{
				UserID:           userID,
				PlanID:           planID,
				Status:           models.SubscriptionStatusActive,
				CurrentPeriodEnd: &periodEnd,
			}
			if err := tx.Create(subscription).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("subscription_status", models.SubscriptionStatusActive).Error
	})
}
