package repositories

import (
	"errors"
	"time"

	"vahub_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateLastLogin(userID string) error
	UpdateSubscriptionStatus(userID string, status models.SubscriptionStatus) error
	CountByRole(role models.UserRole) (int64, error)
	FindWithFilter(criteria UserFilter) ([]models.User, error)

	// Recordable mutations: entity write and audit append commit together
	// or not at all.
	UpdateStatusWithAudit(userID string, status models.UserStatus, entry *models.AdminLog) error
	DeleteWithAudit(userID string, entry *models.AdminLog) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

// UserFilter narrows admin user listings. Zero values mean "no filter".
type UserFilter struct {
	Role         models.UserRole
	Status       models.UserStatus
	Search       string // case-insensitive substring over name OR email
	ExcludeAdmin bool
	Limit        int
	Offset       int
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("VAProfile").Preload("VAProfile.Skills").
		Preload("EmployerProfile").Preload("Subscription").Preload("Subscription.Plan").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("VAProfile").Preload("EmployerProfile").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil && isUniqueViolation(err) {
		// The email column carries the only unique index on users.
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) UpdateLastLogin(userID string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login_at", time.Now()).Error
}

func (r *UserRepositoryImpl) UpdateSubscriptionStatus(userID string, status models.SubscriptionStatus) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"subscription_status": status,
		"updated_at":          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	if criteria.ExcludeAdmin {
		query = query.Where("role <> ?", models.UserRoleAdmin)
	}
	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit).Offset(criteria.Offset)
	}

	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) UpdateStatusWithAudit(userID string, status models.UserStatus, entry *models.AdminLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return tx.Create(entry).Error
	})
}

func (r *UserRepositoryImpl) DeleteWithAudit(userID string, entry *models.AdminLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Profile rows go with the user; the audit entry keeps only the id.
		var profile models.VAProfile
		if err := tx.Select("id").Where("user_id = ?", userID).First(&profile).Error; err == nil {
			if err := tx.Where("va_profile_id = ?", profile.ID).Delete(&models.VASkill{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.VAProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.EmployerProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("seeker_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}

		// Jobs, payments, messages and audit rows keep their weak
		// references to the deleted id.
		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return tx.Create(entry).Error
	})
}
