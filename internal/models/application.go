package models

// Application links a seeker to a job. The (job, seeker) pair is unique.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	SeekerID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"seeker_id"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'APPLIED'" json:"status"`

	Job    *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Seeker *User `gorm:"foreignKey:SeekerID" json:"seeker,omitempty"`
}
