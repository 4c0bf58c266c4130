package models

import "gorm.io/datatypes"

// Audit action types. One of these is written for every privileged mutation.
const (
	ActionJobApproved       = "job_approved"
	ActionJobRejected       = "job_rejected"
	ActionJobFlagged        = "job_flagged"
	ActionUserStatusUpdated = "user_status_updated"
	ActionUserDeleted       = "user_deleted"
)

// Audit target types.
const (
	TargetTypeJob  = "job"
	TargetTypeUser = "user"
)

// AdminLog is the append-only audit trail. TargetID is a weak reference:
// the row it points at may be deleted later without invalidating the log.
type AdminLog struct {
	BaseModel
	AdminID     string         `gorm:"type:uuid;not null;index" json:"admin_id"`
	ActionType  string         `gorm:"not null" json:"action_type"`
	TargetType  string         `json:"target_type"`
	TargetID    string         `json:"target_id"`
	Description string         `json:"description"`
	Details     datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
}
