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

type JobService interface {
	CreateJob(employerID string, req dto.CreateJobRequest) (*dto.CreateJobResponse, error)
	ListApproved() ([]dto.JobResponse, error)
	GetJobDetail(jobID string) (*dto.JobDetailResponse, error)
}

type JobServiceImpl struct {
	jobRepo          repositories.JobRepository
	profileRepo      repositories.ProfileRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:          jobRepo,
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// CreateJob inserts a PENDING job after checking the employer's plan
// allowance. A plan limit of 0 means unlimited.
func (s *JobServiceImpl) CreateJob(employerID string, req dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	if err := s.checkJobPostLimit(employerID); err != nil {
		return nil, err
	}

	job := &models.Job{
		EmployerID:      employerID,
		Title:           req.Title,
		Description:     req.Description,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Category:        req.Category,
		Status:          models.JobStatusPending,
	}
	for _, name := range req.Skills {
		job.Skills = append(job.Skills, models.JobSkill{SkillName: name})
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "jobs", "Failed to create job", http.StatusInternalServerError)
	}

	logger.Info("job created", "job_id", job.ID, "employer_id", employerID)
	return &dto.CreateJobResponse{ID: job.ID}, nil
}

func (s *JobServiceImpl) checkJobPostLimit(employerID string) error {
	subscription, err := s.subscriptionRepo.FindByUserID(employerID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			// No subscription row means no allowance has been granted.
			return apperrors.ErrSubscriptionLimit
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "jobs", "Failed to load subscription", http.StatusInternalServerError)
	}
	if subscription.Plan == nil {
		return apperrors.ErrSubscriptionLimit
	}

	limits, err := subscription.Plan.ParseLimits()
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalError, "jobs", "Failed to read plan limits", http.StatusInternalServerError)
	}
	if limits.JobPostLimit <= 0 {
		return nil
	}

	count, err := s.jobRepo.CountByEmployer(employerID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "jobs", "Failed to count jobs", http.StatusInternalServerError)
	}
	if count >= int64(limits.JobPostLimit) {
		return apperrors.ErrSubscriptionLimit
	}
	return nil
}

func (s *JobServiceImpl) ListApproved() ([]dto.JobResponse, error) {
	listings, err := s.jobRepo.FindApproved()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "jobs", "Failed to list jobs", http.StatusInternalServerError)
	}

	responses := make([]dto.JobResponse, 0, len(listings))
	for i := range listings {
		resp := dto.ToJobResponse(&listings[i].Job)
		resp.CompanyName = listings[i].CompanyName
		resp.LogoURL = listings[i].LogoURL
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetJobDetail returns a job regardless of status, with the employer's
// company profile attached.
func (s *JobServiceImpl) GetJobDetail(jobID string) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "jobs", "Failed to load job", http.StatusInternalServerError)
	}

	detail := &dto.JobDetailResponse{JobResponse: dto.ToJobResponse(job)}

	profile, err := s.profileRepo.FindEmployerProfileByUserID(job.EmployerID)
	if err == nil {
		detail.Employer = dto.ToEmployerProfileResponse(profile)
		detail.CompanyName = profile.CompanyName
		detail.LogoURL = profile.LogoURL
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "jobs", "Failed to load employer profile", http.StatusInternalServerError)
	}

	return detail, nil
}
