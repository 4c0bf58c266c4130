package dto

import (
	"time"

	"vahub_backend/internal/models"
)

type TalentSearchRequest struct {
	Search               string   `form:"search" validate:"max=200"`
	MinHourlyRate        *float64 `form:"min_rate" validate:"omitempty,min=0"`
	MaxHourlyRate        *float64 `form:"max_rate" validate:"omitempty,min=0"`
	MinVerificationScore int      `form:"min_verification" validate:"min=0,max=100"`
}

type TalentResponse struct {
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Headline          string    `json:"headline"`
	Bio               string    `json:"bio"`
	HourlyRate        float64   `json:"hourly_rate"`
	Availability      string    `json:"availability"`
	ExperienceYears   int       `json:"experience_years"`
	VerificationScore int       `json:"verification_score"`
	IsFeatured        bool      `json:"is_featured"`
	ProfileViews      int       `json:"profile_views"`
	Skills            []string  `json:"skills"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToTalentResponse(profile *models.VAProfile) TalentResponse {
	skills := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skills = append(skills, s.SkillName)
	}
	resp := TalentResponse{
		UserID:            profile.UserID,
		Headline:          profile.Headline,
		Bio:               profile.Bio,
		HourlyRate:        profile.HourlyRate,
		Availability:      profile.Availability,
		ExperienceYears:   profile.ExperienceYears,
		VerificationScore: profile.VerificationScore,
		IsFeatured:        profile.IsFeatured,
		ProfileViews:      profile.ProfileViews,
		Skills:            skills,
		CreatedAt:         profile.CreatedAt,
	}
	if profile.User != nil {
		resp.Name = profile.User.Name
	}
	return resp
}
