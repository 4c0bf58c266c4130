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

func TestApplyAndDuplicateApplication(t *testing.T) {
	ts := GetTestServer(t)
	_, employer := helpers.CreateAndLoginEmployer(t, ts)
	seekerToken, seeker := helpers.CreateAndLoginSeeker(t, ts)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Apply Here", models.JobStatusApproved)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/applications", seekerToken, map[string]interface{}{
		"job_id":       job.ID,
		"cover_letter": "I have five years of experience.",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.ID)

	// A second application to the same job is refused and no row is added.
	dupRes, dupBody := ts.SendRequest(t, http.MethodPost, "/api/applications", seekerToken, map[string]interface{}{
		"job_id":       job.ID,
		"cover_letter": "Trying again.",
	})
	assert.Equal(t, http.StatusBadRequest, dupRes.StatusCode, dupBody)
	assert.Contains(t, dupBody, "already applied")

	var count int64
	ts.DB.Model(&models.Application{}).
		Where("job_id = ? AND seeker_id = ?", job.ID, seeker.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestApplyRequiresSeekerRole(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "No Employers", models.JobStatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/applications", employerToken, map[string]interface{}{
		"job_id": job.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplyToMissingJob(t *testing.T) {
	ts := GetTestServer(t)
	seekerToken, _ := helpers.CreateAndLoginSeeker(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/applications", seekerToken, map[string]interface{}{
		"job_id": "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestEmployerReviewsApplications(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	otherToken, _ := helpers.CreateAndLoginEmployer(t, ts)
	seekerToken, seeker := helpers.CreateAndLoginSeeker(t, ts)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Review Applications", models.JobStatusApproved)

	_, applyBody := ts.SendRequest(t, http.MethodPost, "/api/applications", seekerToken, map[string]interface{}{
		"job_id":       job.ID,
		"cover_letter": "Please consider me.",
	})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(applyBody), &created))

	// Only the owning employer can list a job's applications.
	otherRes, _ := ts.SendRequest(t, http.MethodGet, "/api/jobs/"+job.ID+"/applications", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, otherRes.StatusCode)

	listRes, listBody := ts.SendRequest(t, http.MethodGet, "/api/jobs/"+job.ID+"/applications", employerToken, nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode, listBody)
	assert.Contains(t, listBody, seeker.Name)
	assert.Contains(t, listBody, `"status":"APPLIED"`)

	// Shortlist, owned by the employer.
	updRes, updBody := ts.SendRequest(t, http.MethodPut, "/api/applications/"+created.ID+"/status", employerToken, map[string]interface{}{
		"status": "SHORTLISTED",
	})
	require.Equal(t, http.StatusOK, updRes.StatusCode, updBody)

	var application models.Application
	require.NoError(t, ts.DB.First(&application, "id = ?", created.ID).Error)
	assert.Equal(t, models.ApplicationStatusShortlisted, application.Status)

	// A different employer cannot touch it.
	foreignRes, _ := ts.SendRequest(t, http.MethodPut, "/api/applications/"+created.ID+"/status", otherToken, map[string]interface{}{
		"status": "REJECTED",
	})
	assert.Equal(t, http.StatusForbidden, foreignRes.StatusCode)

	// Status values outside the review set are invalid.
	badRes, _ := ts.SendRequest(t, http.MethodPut, "/api/applications/"+created.ID+"/status", employerToken, map[string]interface{}{
		"status": "APPLIED",
	})
	assert.Equal(t, http.StatusBadRequest, badRes.StatusCode)

	// A reviewed application has no outgoing transitions; the verdict
	// stands even for the owner.
	againRes, againBody := ts.SendRequest(t, http.MethodPut, "/api/applications/"+created.ID+"/status", employerToken, map[string]interface{}{
		"status": "HIRED",
	})
	assert.Equal(t, http.StatusConflict, againRes.StatusCode, againBody)

	require.NoError(t, ts.DB.First(&application, "id = ?", created.ID).Error)
	assert.Equal(t, models.ApplicationStatusShortlisted, application.Status)
}
