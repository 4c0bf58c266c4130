package services

import (
	"net/http"

	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type AnalyticsService interface {
	PlatformStats() (*dto.PlatformStatsResponse, error)
}

type AnalyticsServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *AnalyticsServiceImpl) PlatformStats() (*dto.PlatformStatsResponse, error) {
	stats := &dto.PlatformStatsResponse{}

	var err error
	if stats.TotalJobSeekers, err = s.userRepo.CountByRole(models.UserRoleJobSeeker); err != nil {
		return nil, s.wrap(err)
	}
	if stats.TotalEmployers, err = s.userRepo.CountByRole(models.UserRoleEmployer); err != nil {
		return nil, s.wrap(err)
	}
	if stats.TotalJobs, err = s.jobRepo.CountAll(); err != nil {
		return nil, s.wrap(err)
	}
	if stats.PendingJobs, err = s.jobRepo.CountByStatus(models.JobStatusPending); err != nil {
		return nil, s.wrap(err)
	}
	if stats.TotalApplications, err = s.applicationRepo.CountAll(); err != nil {
		return nil, s.wrap(err)
	}

	return stats, nil
}

func (s *AnalyticsServiceImpl) wrap(err error) error {
	return apperrors.Wrap(err, apperrors.CodeDatabaseError, "analytics", "Failed to compute stats", http.StatusInternalServerError)
}
