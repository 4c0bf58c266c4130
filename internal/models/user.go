package models

import "time"

// User is the identity row shared by every role. Role is assigned at
// registration and has no mutator anywhere in the service layer.
type User struct {
	BaseModel
	Name               string             `gorm:"not null" json:"name"`
	Email              string             `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string             `gorm:"not null" json:"-"`
	Role               UserRole           `gorm:"type:varchar(20);not null" json:"role"`
	Status             UserStatus         `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);default:'none'" json:"subscription_status"`
	AdminNotes         string             `json:"admin_notes,omitempty"`
	LastLoginAt        *time.Time         `json:"last_login,omitempty"`

	// Relations
	VAProfile       *VAProfile       `gorm:"foreignKey:UserID" json:"va_profile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
	Subscription    *Subscription    `gorm:"foreignKey:UserID" json:"subscription,omitempty"`
}
