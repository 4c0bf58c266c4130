package services

import (
	"errors"
	"net/http"

	"vahub_backend/internal/logger"
	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type SubscriptionService interface {
	ListPlans() ([]dto.PlanResponse, error)
	GetSubscription(userID string) (*dto.SubscriptionResponse, error)
	Upgrade(userID string, req dto.UpgradeSubscriptionRequest) error
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository) SubscriptionService {
	return &SubscriptionServiceImpl{subscriptionRepo: subscriptionRepo}
}

func (s *SubscriptionServiceImpl) ListPlans() ([]dto.PlanResponse, error) {
	plans, err := s.subscriptionRepo.FindActivePlans()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to list plans", http.StatusInternalServerError)
	}

	responses := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		resp, err := dto.ToPlanResponse(&plans[i])
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "subscription", "Failed to read plan limits", http.StatusInternalServerError)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetSubscription never 404s: a user without a subscription row is
// reported with status "none" and no plan.
func (s *SubscriptionServiceImpl) GetSubscription(userID string) (*dto.SubscriptionResponse, error) {
	subscription, err := s.subscriptionRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return &dto.SubscriptionResponse{Status: models.SubscriptionStatusNone}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load subscription", http.StatusInternalServerError)
	}

	resp := &dto.SubscriptionResponse{
		Status:           subscription.Status,
		CurrentPeriodEnd: subscription.CurrentPeriodEnd,
	}
	if subscription.Plan != nil {
		plan, err := dto.ToPlanResponse(subscription.Plan)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "subscription", "Failed to read plan limits", http.StatusInternalServerError)
		}
		resp.Plan = &plan
	}
	return resp, nil
}

// Upgrade records a successful payment and moves the user to the plan.
// Payment capture itself is out of scope; the recorded payment mirrors
// what a provider callback would report.
func (s *SubscriptionServiceImpl) Upgrade(userID string, req dto.UpgradeSubscriptionRequest) error {
	plan, err := s.subscriptionRepo.FindPlanByID(req.PlanID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load plan", http.StatusInternalServerError)
	}

	payment := &models.Payment{
		UserID:   userID,
		Amount:   plan.Price,
		Currency: plan.Currency,
		Status:   models.PaymentStatusSuccess,
		Method:   req.PaymentMethod,
	}
	if err := s.subscriptionRepo.Upgrade(userID, plan.ID, payment); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to upgrade subscription", http.StatusInternalServerError)
	}

	logger.Info("subscription upgraded", "user_id", userID, "plan", plan.Name)
	return nil
}
