package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vahub_backend/internal/app"
	"vahub_backend/internal/config"
	"vahub_backend/internal/database"

	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the database named by DATABASE_URL, runs
// migrations and starts an httptest server over the full router.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := database.Connect(cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables empties every table between test groups.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec(`TRUNCATE TABLE users, va_profiles, va_skills, employer_profiles,
		jobs, job_skills, applications, plans, subscriptions, payments,
		admin_logs, messages RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest issues an HTTP request against the test server and
// returns the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
