package dto

import (
	"time"

	"vahub_backend/internal/models"
)

type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
}

type CreateApplicationResponse struct {
	ID string `json:"id"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SHORTLISTED REJECTED HIRED"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	SeekerID    string                   `json:"seeker_id"`
	SeekerName  string                   `json:"seeker_name,omitempty"`
	JobTitle    string                   `json:"job_title,omitempty"`
	CoverLetter string                   `json:"cover_letter"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

func ToApplicationResponse(application *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		SeekerID:    application.SeekerID,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
	}
	if application.Seeker != nil {
		resp.SeekerName = application.Seeker.Name
	}
	if application.Job != nil {
		resp.JobTitle = application.Job.Title
	}
	return resp
}
