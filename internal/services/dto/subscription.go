package dto

import (
	"time"

	"vahub_backend/internal/models"
)

type UpgradeSubscriptionRequest struct {
	PlanID        string `json:"plan_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
}

type PlanResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    float64           `json:"price"`
	Currency string            `json:"currency"`
	Limits   models.PlanLimits `json:"limits"`
}

type SubscriptionResponse struct {
	Status           models.SubscriptionStatus `json:"status"`
	Plan             *PlanResponse             `json:"plan,omitempty"`
	CurrentPeriodEnd *time.Time                `json:"current_period_end,omitempty"`
}

func ToPlanResponse(plan *models.Plan) (PlanResponse, error) {
	limits, err := plan.ParseLimits()
	if err != nil {
		return PlanResponse{}, err
	}
	return PlanResponse{
		ID:       plan.ID,
		Name:     plan.Name,
		Price:    plan.Price,
		Currency: plan.Currency,
		Limits:   limits,
	}, nil
}
