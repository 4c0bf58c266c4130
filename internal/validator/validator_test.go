package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

func TestValidatePassesOnValidPayload(t *testing.T) {
	v := New()

	err := v.Validate(registerPayload{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "longenough",
		Role:     "JOB_SEEKER",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(registerPayload{
		Name:     "D",
		Email:    "not-an-email",
		Password: "short",
		Role:     "JOB_SEEKER",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestUserRoleRule(t *testing.T) {
	v := New()

	err := v.Validate(registerPayload{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "longenough",
		Role:     "WIZARD",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}

func TestUserStatusRule(t *testing.T) {
	v := New()

	type payload struct {
		Status string `json:"status" validate:"required,is-user-status"`
	}

	assert.NoError(t, v.Validate(payload{Status: "SUSPENDED"}))
	assert.Error(t, v.Validate(payload{Status: "suspended"}))
	assert.Error(t, v.Validate(payload{Status: "FROZEN"}))
}

func TestUserRoleRuleLeavesEmptyToRequired(t *testing.T) {
	v := New()

	type payload struct {
		Role string `json:"role" validate:"is-user-role"`
	}

	assert.NoError(t, v.Validate(payload{Role: "EMPLOYER"}))
	// Empty values are left to the required tag.
	assert.NoError(t, v.Validate(payload{Role: ""}))
	assert.Error(t, v.Validate(payload{Role: "WIZARD"}))
}
