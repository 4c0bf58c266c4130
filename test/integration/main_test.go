package integration_test

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"vahub_backend/internal/models"
	"vahub_backend/test/helpers"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first
// use. Requires DATABASE_URL to point at a disposable test database;
// tests are skipped without it.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}

		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.ClearTables(t)
		createPlans(t, globalTestServer.DB)
	})
	return globalTestServer
}

func createPlans(t *testing.T, db *gorm.DB) {
	plans := []struct {
		name   string
		price  float64
		limits models.PlanLimits
	}{
		{"Free", 0, models.PlanLimits{JobPostLimit: 3, MessagingLimit: 20}},
		{"Premium", 29, models.PlanLimits{FeaturedJobsLimit: 5}},
	}
	for _, p := range plans {
		var count int64
		db.Model(&models.Plan{}).Where("name = ?", p.name).Count(&count)
		if count > 0 {
			continue
		}

		limitsJSON, err := json.Marshal(p.limits)
		if err != nil {
			t.Fatalf("failed to encode plan limits: %v", err)
		}
		plan := models.Plan{
			Name:   p.name,
			Price:  p.price,
			Limits: datatypes.JSON(limitsJSON),
		}
		if err := db.Create(&plan).Error; err != nil {
			t.Fatalf("failed to create %s plan: %v", p.name, err)
		}
	}
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
