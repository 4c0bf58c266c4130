package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"vahub_backend/internal/models"
	"vahub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlans(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/plans", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Free")
	assert.Contains(t, body, "Premium")
	assert.Contains(t, body, `"job_post_limit":3`)
}

func TestGetSubscriptionAndUpgrade(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginEmployer(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/subscription", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"Free"`)
	assert.Contains(t, body, `"status":"active"`)

	var premium models.Plan
	require.NoError(t, ts.DB.First(&premium, "name = ?", "Premium").Error)

	upRes, upBody := ts.SendRequest(t, http.MethodPost, "/api/subscription/upgrade", token, map[string]interface{}{
		"plan_id":        premium.ID,
		"payment_method": "card",
	})
	require.Equal(t, http.StatusOK, upRes.StatusCode, upBody)

	// Subscription moved, payment recorded, user status denormalized.
	var subscription models.Subscription
	require.NoError(t, ts.DB.First(&subscription, "user_id = ?", user.ID).Error)
	assert.Equal(t, premium.ID, subscription.PlanID)

	var payment models.Payment
	require.NoError(t, ts.DB.First(&payment, "user_id = ?", user.ID).Error)
	assert.Equal(t, premium.Price, payment.Amount)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)

	var refreshed models.User
	require.NoError(t, ts.DB.First(&refreshed, "id = ?", user.ID).Error)
	assert.Equal(t, models.SubscriptionStatusActive, refreshed.SubscriptionStatus)
}

func TestSubscriptionWithoutRowReportsNone(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginSeeker(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/subscription", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "none", resp.Status)
}

func TestUpgradeToMissingPlan(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/subscription/upgrade", token, map[string]interface{}{
		"plan_id":        "00000000-0000-0000-0000-000000000000",
		"payment_method": "card",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
