package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// PlanLimits is the shape of the jsonb limits column on plans.
type PlanLimits struct {
	JobPostLimit         int `json:"job_post_limit"`
	MessagingLimit       int `json:"messaging_limit"`
	CandidateUnlockLimit int `json:"candidate_unlock_limit"`
	FeaturedJobsLimit    int `json:"featured_jobs_limit"`
}

type Plan struct {
	BaseModel
	Name     string         `gorm:"not null;uniqueIndex" json:"name"`
	Price    float64        `gorm:"not null" json:"price"`
	Currency string         `gorm:"default:'USD'" json:"currency"`
	Limits   datatypes.JSON `gorm:"type:jsonb" json:"limits"`
	IsActive bool           `gorm:"default:true" json:"is_active"`
}

// ParseLimits decodes the jsonb limits column. A plan without limits
// decodes to the zero value (everything limited to 0).
func (p *Plan) ParseLimits() (PlanLimits, error) {
	var limits PlanLimits
	if len(p.Limits) == 0 {
		return limits, nil
	}
	err := json.Unmarshal(p.Limits, &limits)
	return limits, err
}

type Subscription struct {
	BaseModel
	UserID           string             `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	PlanID           string             `gorm:"type:uuid;not null" json:"plan_id"`
	Status           SubscriptionStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CurrentPeriodEnd *time.Time         `json:"current_period_end,omitempty"`

	Plan *Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// Payment rows are append-only. Nothing in the codebase updates or
// deletes them.
type Payment struct {
	BaseModel
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Currency      string        `gorm:"default:'USD'" json:"currency"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Method        string        `json:"payment_method"`
	TransactionID string        `json:"transaction_id"`
}
