package models

// Job is created PENDING by an employer and leaves PENDING exactly once,
// through a moderation action. Only APPROVED jobs are visible to seekers.
type Job struct {
	BaseModel
	EmployerID      string    `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"not null" json:"description"`
	SalaryMin       float64   `json:"salary_min"`
	SalaryMax       float64   `json:"salary_max"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	Category        string    `json:"category,omitempty"`
	Status          JobStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	IsFeatured      bool      `gorm:"default:false" json:"is_featured"`
	RejectionReason string    `json:"rejection_reason,omitempty"`

	Skills []JobSkill `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"skills"`
}

type JobSkill struct {
	BaseModel
	JobID     string `gorm:"type:uuid;not null;index" json:"-"`
	SkillName string `gorm:"not null" json:"skill_name"`
}

// SkillNames flattens the skill rows for list responses. Always returns a
// non-nil slice so empty skill lists marshal as [].
func (j *Job) SkillNames() []string {
	names := make([]string, 0, len(j.Skills))
	for _, s := range j.Skills {
		names = append(names, s.SkillName)
	}
	return names
}
