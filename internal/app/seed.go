package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"vahub_backend/internal/auth"
	"vahub_backend/internal/config"
	"vahub_backend/internal/logger"
	"vahub_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed brings the database to a usable baseline. It is idempotent:
// plans and the bootstrap admin are created only when missing, and the
// demo data only lands on an empty jobs table outside production.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedPlans(db); err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if cfg.Server.Env != "production" && cfg.Seed.DemoData {
		if err := seedDemoData(db); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}

func seedPlans(db *gorm.DB) error {
	plans := []struct {
		name   string
		price  float64
		limits models.PlanLimits
	}{
		{"Free", 0, models.PlanLimits{JobPostLimit: 3, MessagingLimit: 20}},
		{"Premium", 29, models.PlanLimits{FeaturedJobsLimit: 5}},
	}

	for _, p := range plans {
		var existing models.Plan
		err := db.First(&existing, "name = ?", p.name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		limitsJSON, err := json.Marshal(p.limits)
		if err != nil {
			return err
		}
		plan := models.Plan{
			Name:   p.name,
			Price:  p.price,
			Limits: datatypes.JSON(limitsJSON),
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
		logger.Info("plan seeded", "name", p.name)
	}
	return nil
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", cfg.FirstAdminEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Platform Admin",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("bootstrap admin created", "email", cfg.FirstAdminEmail)
	return nil
}

// seedDemoData creates a demo employer, a demo job seeker and a few
// approved jobs so a fresh environment has something to browse.
func seedDemoData(db *gorm.DB) error {
	var jobCount int64
	if err := db.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		return nil
	}

	hash, err := auth.HashPassword("demo-password-1")
	if err != nil {
		return err
	}

	employer := models.User{
		Name:         "Acme Staffing",
		Email:        "employer@demo.local",
		PasswordHash: hash,
		Role:         models.UserRoleEmployer,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(&employer).Error; err != nil {
		return err
	}
	if err := db.Create(&models.EmployerProfile{
		UserID:      employer.ID,
		CompanyName: "Acme Staffing",
		Industry:    "Outsourcing",
		TeamSize:    "11-50",
	}).Error; err != nil {
		return err
	}

	seeker := models.User{
		Name:         "Dana Reyes",
		Email:        "seeker@demo.local",
		PasswordHash: hash,
		Role:         models.UserRoleJobSeeker,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(&seeker).Error; err != nil {
		return err
	}
	if err := db.Create(&models.VAProfile{
		UserID:            seeker.ID,
		Headline:          "Executive assistant, 5 years remote",
		Bio:               "Calendar management, inbox triage and travel planning for founders.",
		HourlyRate:        12,
		Availability:      "Full-time",
		ExperienceYears:   5,
		VerificationScore: 80,
		Skills: []models.VASkill{
			{SkillName: "Calendar Management"},
			{SkillName: "Email Management"},
		},
	}).Error; err != nil {
		return err
	}

	jobs := []models.Job{
		{
			EmployerID:      employer.ID,
			Title:           "Executive Virtual Assistant",
			Description:     "Support two founders across calendars, inboxes and travel.",
			SalaryMin:       800,
			SalaryMax:       1200,
			JobType:         "Full-time",
			ExperienceLevel: "Intermediate",
			Category:        "Administration",
			Status:          models.JobStatusApproved,
			IsFeatured:      true,
			Skills: []models.JobSkill{
				{SkillName: "Calendar Management"},
				{SkillName: "Travel Planning"},
			},
		},
		{
			EmployerID:      employer.ID,
			Title:           "Social Media Manager",
			Description:     "Plan and schedule content across three brand accounts.",
			SalaryMin:       500,
			SalaryMax:       500,
			JobType:         "Part-time",
			ExperienceLevel: "Entry",
			Category:        "Marketing",
			Status:          models.JobStatusApproved,
			Skills: []models.JobSkill{
				{SkillName: "Content Scheduling"},
			},
		},
	}
	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("demo data seeded", "jobs", len(jobs))
	return nil
}
