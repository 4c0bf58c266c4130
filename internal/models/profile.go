package models

// VAProfile is the public job-seeker profile shown in talent search.
type VAProfile struct {
	BaseModel
	UserID            string  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Headline          string  `json:"headline"`
	Bio               string  `json:"bio"`
	HourlyRate        float64 `json:"hourly_rate"`
	Availability      string  `json:"availability"`
	ExperienceYears   int     `json:"experience_years"`
	VerificationScore int     `gorm:"default:0" json:"verification_score"`
	IntroVideoURL     string  `json:"intro_video_url,omitempty"`
	ResumeURL         string  `json:"resume_url,omitempty"`
	ProfileViews      int     `gorm:"default:0" json:"profile_views"`
	IsFeatured        bool    `gorm:"default:false" json:"is_featured"`

	Skills []VASkill `gorm:"foreignKey:VAProfileID" json:"skills"`
	User   *User     `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

type VASkill struct {
	BaseModel
	VAProfileID     string `gorm:"type:uuid;not null;index" json:"-"`
	SkillName       string `gorm:"not null" json:"skill_name"`
	YearsExperience int    `json:"years_experience"`
}

type EmployerProfile struct {
	BaseModel
	UserID             string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	Website            string `json:"website,omitempty"`
	Industry           string `json:"industry,omitempty"`
	TeamSize           string `json:"team_size,omitempty"`
	LogoURL            string `json:"logo_url,omitempty"`
}
