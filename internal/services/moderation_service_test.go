package services

import (
	"testing"

	"vahub_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestJobTransitionAllowed(t *testing.T) {
	cases := []struct {
		name    string
		from    models.JobStatus
		to      models.JobStatus
		allowed bool
	}{
		{"pending to approved", models.JobStatusPending, models.JobStatusApproved, true},
		{"pending to rejected", models.JobStatusPending, models.JobStatusRejected, true},
		{"pending to flagged", models.JobStatusPending, models.JobStatusFlagged, false},
		{"approved to flagged", models.JobStatusApproved, models.JobStatusFlagged, true},
		{"approved to rejected", models.JobStatusApproved, models.JobStatusRejected, false},
		{"approved to pending", models.JobStatusApproved, models.JobStatusPending, false},
		{"rejected to approved", models.JobStatusRejected, models.JobStatusApproved, false},
		{"rejected to flagged", models.JobStatusRejected, models.JobStatusFlagged, false},
		{"flagged to approved", models.JobStatusFlagged, models.JobStatusApproved, false},
		{"same status is not a transition", models.JobStatusPending, models.JobStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, JobTransitionAllowed(tc.from, tc.to))
		})
	}
}
