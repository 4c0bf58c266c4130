package dto

import (
	"time"

	"vahub_backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user. The password hash never
// leaves the persistence layer.
type UserResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	Role               models.UserRole           `json:"role"`
	Status             models.UserStatus         `json:"status"`
	SubscriptionStatus models.SubscriptionStatus `json:"subscription_status"`
	LastLoginAt        *time.Time                `json:"last_login_at,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		Status:             user.Status,
		SubscriptionStatus: user.SubscriptionStatus,
		LastLoginAt:        user.LastLoginAt,
		CreatedAt:          user.CreatedAt,
	}
}
