package integration_test

import (
	"net/http"
	"testing"

	"vahub_backend/internal/models"
	"vahub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEmployerAndLogin(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"name":     "Jordan Employer",
		"email":    "jordan_employer@test.local",
		"password": "super_password123",
		"role":     "EMPLOYER",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"role":"EMPLOYER"`)
	assert.Contains(t, body, `"status":"ACTIVE"`)
	assert.NotContains(t, body, "password")

	// Employers are active immediately and get the free plan.
	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "jordan_employer@test.local").Error)
	var subscription models.Subscription
	require.NoError(t, ts.DB.First(&subscription, "user_id = ?", user.ID).Error)

	loginRes, loginBody := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "jordan_employer@test.local",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, loginRes.StatusCode, loginBody)
	assert.Contains(t, loginBody, `"token"`)
}

func TestRegisterSeekerStartsPending(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Pat Seeker",
		"email":    "pat_seeker@test.local",
		"password": "super_password123",
		"role":     "JOB_SEEKER",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"PENDING"`)

	// Pending accounts can still log in; activation only gates their
	// visibility in talent search.
	loginRes, loginBody := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "pat_seeker@test.local",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, loginRes.StatusCode, loginBody)
	assert.Contains(t, loginBody, `"token"`)
	assert.Contains(t, loginBody, `"status":"PENDING"`)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	payload := map[string]interface{}{
		"name":     "First Account",
		"email":    "dup@test.local",
		"password": "super_password123",
		"role":     "EMPLOYER",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	payload["name"] = "Second Account"
	dupRes, dupBody := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, dupRes.StatusCode, dupBody)
	assert.Contains(t, dupBody, "Email already exists")

	// No second row was created.
	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", "dup@test.local").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsPrivilegedRoles(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Sneaky Admin",
		"email":    "sneaky@test.local",
		"password": "super_password123",
		"role":     "ADMIN",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := GetTestServer(t)
	_, user := helpers.CreateAndLoginEmployer(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	assert.Contains(t, body, "Invalid credentials")
}

func TestLoginSuspendedUser(t *testing.T) {
	ts := GetTestServer(t)

	user := &models.User{
		Name:   "Suspended Person",
		Email:  "suspended_login@test.local",
		Role:   models.UserRoleJobSeeker,
		Status: models.UserStatusSuspended,
	}
	helpers.CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": helpers.TestPassword,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	assert.Contains(t, body, "suspended")
}
