package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vahub_backend/internal/logger"
	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// jobTransitions is the legal job status graph. Anything absent is
// rejected with a conflict.
var jobTransitions = map[models.JobStatus][]models.JobStatus{
	models.JobStatusPending:  {models.JobStatusApproved, models.JobStatusRejected},
	models.JobStatusApproved: {models.JobStatusFlagged},
}

// JobTransitionAllowed reports whether a job may move from one status
// to another.
func JobTransitionAllowed(from, to models.JobStatus) bool {
	for _, allowed := range jobTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ModerationService owns every privileged status change and its audit
// trail. Each mutation and its audit entry commit together.
type ModerationService interface {
	ApproveJob(adminID, jobID string) error
	RejectJob(adminID, jobID, reason string) error
	FlagJob(adminID, jobID, reason string) error
	UpdateUserStatus(adminID, userID string, status models.UserStatus, note string) error
	DeleteUser(adminID, userID string) error
	GetPendingJobs() ([]repositories.JobListing, error)
	GetAuditLog() ([]repositories.AdminLogEntry, error)
}

type ModerationServiceImpl struct {
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
	adminLogRepo repositories.AdminLogRepository
}

func NewModerationService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	adminLogRepo repositories.AdminLogRepository,
) ModerationService {
	return &ModerationServiceImpl{
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		adminLogRepo: adminLogRepo,
	}
}

func (s *ModerationServiceImpl) transitionJob(adminID, jobID string, to models.JobStatus, reason, actionType string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to load job", http.StatusInternalServerError)
	}

	if !JobTransitionAllowed(job.Status, to) {
		return apperrors.ErrInvalidTransition("jobs", string(job.Status), string(to))
	}

	details, _ := json.Marshal(map[string]string{
		"from":   string(job.Status),
		"to":     string(to),
		"reason": reason,
	})
	entry := &models.AdminLog{
		AdminID:     adminID,
		ActionType:  actionType,
		TargetType:  models.TargetTypeJob,
		TargetID:    jobID,
		Description: fmt.Sprintf("Job %q moved from %s to %s", job.Title, job.Status, to),
		Details:     datatypes.JSON(details),
	}

	if err := s.jobRepo.UpdateStatusWithAudit(jobID, job.Status, to, reason, entry); err != nil {
		if errors.Is(err, repositories.ErrJobStatusConflict) {
			// Another moderation won the race between our legality check
			// and the write.
			return apperrors.ErrInvalidTransition("jobs", string(job.Status), string(to))
		}
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to update job status", http.StatusInternalServerError)
	}

	logger.Info("job status changed",
		"job_id", jobID, "from", job.Status, "to", to, "admin_id", adminID)
	return nil
}

func (s *ModerationServiceImpl) ApproveJob(adminID, jobID string) error {
	return s.transitionJob(adminID, jobID, models.JobStatusApproved, "", models.ActionJobApproved)
}

func (s *ModerationServiceImpl) RejectJob(adminID, jobID, reason string) error {
	if reason == "" {
		return apperrors.ErrRejectionReasonRequired
	}
	return s.transitionJob(adminID, jobID, models.JobStatusRejected, reason, models.ActionJobRejected)
}

func (s *ModerationServiceImpl) FlagJob(adminID, jobID, reason string) error {
	return s.transitionJob(adminID, jobID, models.JobStatusFlagged, reason, models.ActionJobFlagged)
}

// UpdateUserStatus accepts any target status. The user graph is
// deliberately permissive; the one hard rule is that admins cannot
// moderate themselves.
func (s *ModerationServiceImpl) UpdateUserStatus(adminID, userID string, status models.UserStatus, note string) error {
	if adminID == userID {
		return apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to load user", http.StatusInternalServerError)
	}

	details, _ := json.Marshal(map[string]string{
		"from": string(user.Status),
		"to":   string(status),
		"note": note,
	})
	entry := &models.AdminLog{
		AdminID:     adminID,
		ActionType:  models.ActionUserStatusUpdated,
		TargetType:  models.TargetTypeUser,
		TargetID:    userID,
		Description: fmt.Sprintf("User %s moved from %s to %s", user.Email, user.Status, status),
		Details:     datatypes.JSON(details),
	}

	if err := s.userRepo.UpdateStatusWithAudit(userID, status, entry); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to update user status", http.StatusInternalServerError)
	}

	logger.Info("user status changed",
		"user_id", userID, "from", user.Status, "to", status, "admin_id", adminID)
	return nil
}

func (s *ModerationServiceImpl) DeleteUser(adminID, userID string) error {
	if adminID == userID {
		return apperrors.ErrCannotModifySelf
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to load user", http.StatusInternalServerError)
	}

	entry := &models.AdminLog{
		AdminID:     adminID,
		ActionType:  models.ActionUserDeleted,
		TargetType:  models.TargetTypeUser,
		TargetID:    userID,
		Description: fmt.Sprintf("User %s (%s) deleted", user.Email, user.Role),
	}

	if err := s.userRepo.DeleteWithAudit(userID, entry); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to delete user", http.StatusInternalServerError)
	}

	logger.Info("user deleted", "user_id", userID, "admin_id", adminID)
	return nil
}

func (s *ModerationServiceImpl) GetPendingJobs() ([]repositories.JobListing, error) {
	listings, err := s.jobRepo.FindPending()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to load pending jobs", http.StatusInternalServerError)
	}
	return listings, nil
}

func (s *ModerationServiceImpl) GetAuditLog() ([]repositories.AdminLogEntry, error) {
	entries, err := s.adminLogRepo.FindLatest(100)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "moderation", "Failed to load audit log", http.StatusInternalServerError)
	}
	return entries, nil
}
