package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"vahub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageAndConversation(t *testing.T) {
	ts := GetTestServer(t)
	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)
	seekerToken, seeker := helpers.CreateAndLoginSeeker(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/messages", employerToken, map[string]interface{}{
		"receiver_id":  seeker.ID,
		"message_body": "Hi, are you available for an interview this week?",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	_, _ = ts.SendRequest(t, http.MethodPost, "/api/messages", seekerToken, map[string]interface{}{
		"receiver_id":  employer.ID,
		"message_body": "Yes, Thursday works for me.",
	})

	// Both sides see the same conversation, oldest first.
	convRes, convBody := ts.SendRequest(t, http.MethodGet, "/api/messages/"+seeker.ID, employerToken, nil)
	require.Equal(t, http.StatusOK, convRes.StatusCode, convBody)

	var messages []struct {
		SenderID string `json:"sender_id"`
		Body     string `json:"message_body"`
	}
	require.NoError(t, json.Unmarshal([]byte(convBody), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, employer.ID, messages[0].SenderID)
	assert.Equal(t, seeker.ID, messages[1].SenderID)
}

func TestSendMessageToMissingUser(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/messages", token, map[string]interface{}{
		"receiver_id":  "00000000-0000-0000-0000-000000000000",
		"message_body": "Anyone there?",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSendMessageRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	_, seeker := helpers.CreateAndLoginSeeker(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/messages", "", map[string]interface{}{
		"receiver_id":  seeker.ID,
		"message_body": "No token here.",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
