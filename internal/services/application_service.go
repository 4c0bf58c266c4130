package services

import (
	"errors"
	"net/http"

	"vahub_backend/internal/logger"
	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(seekerID string, req dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error)
	ListByJob(employerID, jobID string) ([]dto.ApplicationResponse, error)
	UpdateStatus(employerID, applicationID string, status models.ApplicationStatus) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits an application. One application per (job, seeker) pair;
// the duplicate is refused without touching the existing row.
func (s *ApplicationServiceImpl) Apply(seekerID string, req dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error) {
	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "applications", "Failed to load job", http.StatusInternalServerError)
	}

	application := &models.Application{
		JobID:       req.JobID,
		SeekerID:    seekerID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusApplied,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "applications", "Failed to create application", http.StatusInternalServerError)
	}

	logger.Info("application submitted", "application_id", application.ID, "job_id", req.JobID, "seeker_id", seekerID)
	return &dto.CreateApplicationResponse{ID: application.ID}, nil
}

// ListByJob returns a job's applications to the employer that owns it.
func (s *ApplicationServiceImpl) ListByJob(employerID, jobID string) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "applications", "Failed to load job", http.StatusInternalServerError)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	applications, err := s.applicationRepo.FindByJobID(jobID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "applications", "Failed to list applications", http.StatusInternalServerError)
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.ToApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// UpdateStatus moves an application out of APPLIED. Only the employer
// owning the job may do this.
func (s *ApplicationServiceImpl) UpdateStatus(employerID, applicationID string, status models.ApplicationStatus) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "applications", "Failed to load application", http.StatusInternalServerError)
	}
	if application.Job == nil || application.Job.EmployerID != employerID {
		return apperrors.ErrNotJobOwner
	}

	// APPLIED is the only state with outgoing edges; a reviewed
	// application stays where the employer put it.
	if application.Status != models.ApplicationStatusApplied {
		return apperrors.ErrInvalidTransition("applications", string(application.Status), string(status))
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "applications", "Failed to update application", http.StatusInternalServerError)
	}

	logger.Info("application status changed", "application_id", applicationID, "status", status)
	return nil
}
