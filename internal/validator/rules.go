package validator

import (
	"vahub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Custom rules referenced by DTO tags. Empty values pass; pair with
// `omitempty`-style optional semantics or `required` as needed.

func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("is-user-role", isUserRole); err != nil {
		return err
	}
	return v.RegisterValidation("is-user-status", isUserStatus)
}

func isUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, role := range models.UserRoles {
		if models.UserRole(value) == role {
			return true
		}
	}
	return false
}

func isUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, status := range models.UserStatuses {
		if models.UserStatus(value) == status {
			return true
		}
	}
	return false
}
