package dto

// Requests for the moderation endpoints. Admin identity comes from the
// authenticated session, never from the payload.

type ApproveJobRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

type RejectJobRequest struct {
	JobID  string `json:"job_id" validate:"required,uuid"`
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

type FlagJobRequest struct {
	JobID  string `json:"job_id" validate:"required,uuid"`
	Reason string `json:"reason" validate:"max=1000"`
}

type UpdateUserStatusRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,is-user-status"`
	Note   string `json:"note" validate:"max=1000"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type SearchUsersRequest struct {
	Role   string `form:"role" validate:"omitempty,is-user-role"`
	Status string `form:"status" validate:"omitempty,is-user-status"`
	Search string `form:"search" validate:"max=200"`
	Limit  int    `form:"limit" validate:"min=0,max=200"`
	Offset int    `form:"offset" validate:"min=0"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type PlatformStatsResponse struct {
	TotalJobSeekers   int64 `json:"total_job_seekers"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalJobs         int64 `json:"total_jobs"`
	PendingJobs       int64 `json:"pending_jobs"`
	TotalApplications int64 `json:"total_applications"`
}
