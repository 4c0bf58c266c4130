package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"vahub_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TestPassword = "password123"

// CreateUser inserts a user directly, hashing the raw password in
// PasswordHash. Defaults to ACTIVE so the account can log in.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash == "" {
		user.PasswordHash = TestPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash test password")
	user.PasswordHash = string(hashed)

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user")
}

// Login authenticates through the API and returns the token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.local", prefix, time.Now().UnixNano())
}

// CreateAndLoginEmployer creates an active employer on the Free plan
// and returns its token and user row.
func CreateAndLoginEmployer(t *testing.T, ts *TestServer) (string, *models.User) {
	user := &models.User{
		Name:  "Test Employer",
		Email: uniqueEmail("employer"),
		Role:  models.UserRoleEmployer,
	}
	CreateUser(t, ts.DB, user)

	require.NoError(t, ts.DB.Create(&models.EmployerProfile{
		UserID:      user.ID,
		CompanyName: "Test Company Inc.",
	}).Error)

	var freePlan models.Plan
	require.NoError(t, ts.DB.First(&freePlan, "name = ?", "Free").Error,
		"Free plan must be seeded before creating employers")
	require.NoError(t, ts.DB.Create(&models.Subscription{
		UserID: user.ID,
		PlanID: freePlan.ID,
		Status: models.SubscriptionStatusActive,
	}).Error)

	token := Login(t, ts, user.Email, TestPassword)
	return token, user
}

// CreateAndLoginSeeker creates an active job seeker with a profile.
func CreateAndLoginSeeker(t *testing.T, ts *TestServer) (string, *models.User) {
	user := &models.User{
		Name:  "Test Seeker",
		Email: uniqueEmail("seeker"),
		Role:  models.UserRoleJobSeeker,
	}
	CreateUser(t, ts.DB, user)

	require.NoError(t, ts.DB.Create(&models.VAProfile{
		UserID:            user.ID,
		Headline:          "Experienced virtual assistant",
		Bio:               "Inbox and calendar support.",
		HourlyRate:        10,
		VerificationScore: 70,
	}).Error)

	token := Login(t, ts, user.Email, TestPassword)
	return token, user
}

// CreateAndLoginAdmin creates an admin account.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	user := &models.User{
		Name:  "Test Admin",
		Email: uniqueEmail("admin"),
		Role:  models.UserRoleAdmin,
	}
	CreateUser(t, ts.DB, user)

	token := Login(t, ts, user.Email, TestPassword)
	return token, user
}

// CreateJob inserts a job directly with the given status.
func CreateJob(t *testing.T, db *gorm.DB, employerID, title string, status models.JobStatus) *models.Job {
	job := &models.Job{
		EmployerID:      employerID,
		Title:           title,
		Description:     "Test job description with enough detail.",
		SalaryMin:       500,
		SalaryMax:       1500,
		JobType:         "Full-time",
		ExperienceLevel: "Intermediate",
		Status:          status,
	}
	require.NoError(t, db.Create(job).Error, "failed to create test job")
	return job
}
