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

func TestSearchUsersFilters(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts)

	johnEmployer := &models.User{
		Name:  "John Hiring",
		Email: "john_hiring@test.local",
		Role:  models.UserRoleEmployer,
	}
	helpers.CreateUser(t, ts.DB, johnEmployer)
	johnSeeker := &models.User{
		Name:  "John Seeking",
		Email: "john_seeking@test.local",
		Role:  models.UserRoleJobSeeker,
	}
	helpers.CreateUser(t, ts.DB, johnSeeker)

	// Role + case-insensitive substring over name or email.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/users?role=EMPLOYER&search=john", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var users []struct {
		ID   string          `json:"id"`
		Role models.UserRole `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &users))

	found := map[string]bool{}
	for _, u := range users {
		found[u.ID] = true
		assert.Equal(t, models.UserRoleEmployer, u.Role)
	}
	assert.True(t, found[johnEmployer.ID])
	assert.False(t, found[johnSeeker.ID])

	// Admin accounts never appear in the results.
	allRes, allBody := ts.SendRequest(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, allRes.StatusCode)
	assert.NotContains(t, allBody, admin.ID)
}

func TestSearchUsersByStatus(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	banned := &models.User{
		Name:   "Banned Person",
		Email:  "banned_search@test.local",
		Role:   models.UserRoleJobSeeker,
		Status: models.UserStatusBanned,
	}
	helpers.CreateUser(t, ts.DB, banned)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/users?status=BANNED", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, banned.ID)
}

func TestPlatformStats(t *testing.T) {
	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	helpers.CreateJob(t, ts.DB, employer.ID, "Stats Pending Job", models.JobStatusPending)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		TotalJobSeekers   int64 `json:"total_job_seekers"`
		TotalEmployers    int64 `json:"total_employers"`
		TotalJobs         int64 `json:"total_jobs"`
		PendingJobs       int64 `json:"pending_jobs"`
		TotalApplications int64 `json:"total_applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.GreaterOrEqual(t, stats.TotalEmployers, int64(1))
	assert.GreaterOrEqual(t, stats.TotalJobs, int64(1))
	assert.GreaterOrEqual(t, stats.PendingJobs, int64(1))
	assert.GreaterOrEqual(t, stats.TotalJobs, stats.PendingJobs)
}
