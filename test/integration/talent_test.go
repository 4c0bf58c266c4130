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

func createTalent(t *testing.T, ts *helpers.TestServer, name string, rate float64, score int, status models.UserStatus) *models.User {
	user := &models.User{
		Name:   name,
		Email:  name + "_talent@test.local",
		Role:   models.UserRoleJobSeeker,
		Status: status,
	}
	helpers.CreateUser(t, ts.DB, user)

	require.NoError(t, ts.DB.Create(&models.VAProfile{
		UserID:            user.ID,
		Headline:          "Virtual assistant for hire",
		Bio:               "Bookkeeping and scheduling support.",
		HourlyRate:        rate,
		VerificationScore: score,
		Skills:            []models.VASkill{{SkillName: "Bookkeeping"}},
	}).Error)
	return user
}

func TestTalentSearchOnlyShowsActiveSeekers(t *testing.T) {
	ts := GetTestServer(t)

	active := createTalent(t, ts, "search_active", 15, 60, models.UserStatusActive)
	pending := createTalent(t, ts, "search_pending", 15, 60, models.UserStatusPending)
	suspended := createTalent(t, ts, "search_suspended", 15, 60, models.UserStatusSuspended)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/talents", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	assert.Contains(t, body, active.ID)
	assert.NotContains(t, body, pending.ID)
	assert.NotContains(t, body, suspended.ID)
}

func TestTalentSearchRateBoundsInclusive(t *testing.T) {
	ts := GetTestServer(t)

	cheap := createTalent(t, ts, "rate_low", 8, 60, models.UserStatusActive)
	exactMin := createTalent(t, ts, "rate_min", 10, 60, models.UserStatusActive)
	exactMax := createTalent(t, ts, "rate_max", 20, 60, models.UserStatusActive)
	expensive := createTalent(t, ts, "rate_high", 25, 60, models.UserStatusActive)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/talents?min_rate=10&max_rate=20", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	assert.NotContains(t, body, cheap.ID)
	assert.Contains(t, body, exactMin.ID)
	assert.Contains(t, body, exactMax.ID)
	assert.NotContains(t, body, expensive.ID)
}

func TestTalentSearchVerificationAndText(t *testing.T) {
	ts := GetTestServer(t)

	verified := createTalent(t, ts, "verify_high", 12, 90, models.UserStatusActive)
	unverified := createTalent(t, ts, "verify_low", 12, 10, models.UserStatusActive)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/talents?min_verification=50", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, verified.ID)
	assert.NotContains(t, body, unverified.ID)

	// Text search hits name, headline or bio substrings.
	textRes, textBody := ts.SendRequest(t, http.MethodGet, "/api/talents?search=bookkeeping", "", nil)
	require.Equal(t, http.StatusOK, textRes.StatusCode)
	assert.Contains(t, textBody, verified.ID)

	var talents []struct {
		UserID string   `json:"user_id"`
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal([]byte(textBody), &talents))
	for _, talent := range talents {
		require.NotNil(t, talent.Skills, "skills must serialize as a list, not null")
	}
}
