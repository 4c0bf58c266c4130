package services

import (
	"net/http"

	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type TalentService interface {
	SearchTalent(req dto.TalentSearchRequest) ([]dto.TalentResponse, error)
}

type TalentServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewTalentService(profileRepo repositories.ProfileRepository) TalentService {
	return &TalentServiceImpl{profileRepo: profileRepo}
}

func (s *TalentServiceImpl) SearchTalent(req dto.TalentSearchRequest) ([]dto.TalentResponse, error) {
	criteria := repositories.TalentFilter{
		Search:               req.Search,
		MinHourlyRate:        req.MinHourlyRate,
		MaxHourlyRate:        req.MaxHourlyRate,
		MinVerificationScore: req.MinVerificationScore,
	}

	profiles, err := s.profileRepo.SearchTalent(criteria)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "talents", "Failed to search talent", http.StatusInternalServerError)
	}

	responses := make([]dto.TalentResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, dto.ToTalentResponse(&profiles[i]))
	}
	return responses, nil
}
