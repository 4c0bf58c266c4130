package dto

import (
	"fmt"
	"math"
	"time"

	"vahub_backend/internal/models"
)

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=200"`
	Description     string   `json:"description" validate:"required,min=10"`
	SalaryMin       float64  `json:"salary_min" validate:"min=0"`
	SalaryMax       float64  `json:"salary_max" validate:"min=0"`
	JobType         string   `json:"job_type" validate:"max=50"`
	ExperienceLevel string   `json:"experience_level" validate:"max=50"`
	Category        string   `json:"category" validate:"max=100"`
	Skills          []string `json:"skills" validate:"dive,min=1,max=100"`
}

type CreateJobResponse struct {
	ID string `json:"id"`
}

type JobResponse struct {
	ID              string           `json:"id"`
	EmployerID      string           `json:"employer_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	SalaryMin       float64          `json:"salary_min"`
	SalaryMax       float64          `json:"salary_max"`
	SalaryRange     string           `json:"salary_range"`
	JobType         string           `json:"job_type"`
	ExperienceLevel string           `json:"experience_level"`
	Category        string           `json:"category"`
	Status          models.JobStatus `json:"status"`
	IsFeatured      bool             `json:"is_featured"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	Skills          []string         `json:"skills"`
	CompanyName     string           `json:"company_name,omitempty"`
	LogoURL         string           `json:"logo_url,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type JobDetailResponse struct {
	JobResponse
	Employer *EmployerProfileResponse `json:"employer,omitempty"`
}

type EmployerProfileResponse struct {
	UserID             string `json:"user_id"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	Website            string `json:"website"`
	Industry           string `json:"industry"`
	TeamSize           string `json:"team_size"`
	LogoURL            string `json:"logo_url"`
}

// FormatSalaryRange renders a salary band for display. Equal bounds
// (or a missing upper bound) collapse to a single value, and
// integer-valued amounts drop the decimals.
func FormatSalaryRange(min, max float64) string {
	if min == max || max <= 0 {
		return "$" + formatAmount(min)
	}
	return fmt.Sprintf("$%s - $%s", formatAmount(min), formatAmount(max))
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func ToJobResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:              job.ID,
		EmployerID:      job.EmployerID,
		Title:           job.Title,
		Description:     job.Description,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		SalaryRange:     FormatSalaryRange(job.SalaryMin, job.SalaryMax),
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		Category:        job.Category,
		Status:          job.Status,
		IsFeatured:      job.IsFeatured,
		RejectionReason: job.RejectionReason,
		Skills:          job.SkillNames(),
		CreatedAt:       job.CreatedAt,
	}
}

func ToEmployerProfileResponse(profile *models.EmployerProfile) *EmployerProfileResponse {
	if profile == nil {
		return nil
	}
	return &EmployerProfileResponse{
		UserID:             profile.UserID,
		CompanyName:        profile.CompanyName,
		CompanyDescription: profile.CompanyDescription,
		Website:            profile.Website,
		Industry:           profile.Industry,
		TeamSize:           profile.TeamSize,
		LogoURL:            profile.LogoURL,
	}
}
