package repositories

import (
	"errors"
	"time"

	"vahub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobStatusConflict = errors.New("job status changed concurrently")
)

// JobListing is a job row annotated with the employer's public company
// fields, as the listing endpoints render it.
type JobListing struct {
	models.Job
	CompanyName string `json:"company_name"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindApproved() ([]JobListing, error)
	FindPending() ([]JobListing, error)
	CountByEmployer(employerID string) (int64, error)
	CountAll() (int64, error)
	CountByStatus(status models.JobStatus) (int64, error)

	// Recordable mutation: status write and audit append commit together.
	// The write is conditional on the row still holding the from status;
	// a lost race surfaces as ErrJobStatusConflict.
	UpdateStatusWithAudit(jobID string, from, to models.JobStatus, reason string, entry *models.AdminLog) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Skills").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// findListings fetches jobs matching status plus company annotations,
// then attaches skills in a second query to keep the join flat.
func (r *JobRepositoryImpl) findListings(status models.JobStatus, order string) ([]JobListing, error) {
	var listings []JobListing
	err := r.db.Table("jobs").
		Select("jobs.*, employer_profiles.company_name, employer_profiles.logo_url").
		Joins("JOIN employer_profiles ON jobs.employer_id = employer_profiles.user_id").
		Where("jobs.status = ?", status).
		Order(order).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return []JobListing{}, nil
	}

	ids := make([]string, 0, len(listings))
	for i := range listings {
		ids = append(ids, listings[i].ID)
		listings[i].Skills = []models.JobSkill{}
	}

	var skills []models.JobSkill
	if err := r.db.Where("job_id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, err
	}

	byJob := make(map[string][]models.JobSkill, len(listings))
	for _, s := range skills {
		byJob[s.JobID] = append(byJob[s.JobID], s)
	}
	for i := range listings {
		if js, ok := byJob[listings[i].ID]; ok {
			listings[i].Skills = js
		}
	}
	return listings, nil
}

func (r *JobRepositoryImpl) FindApproved() ([]JobListing, error) {
	return r.findListings(models.JobStatusApproved, "jobs.is_featured DESC, jobs.created_at DESC")
}

func (r *JobRepositoryImpl) FindPending() ([]JobListing, error) {
	return r.findListings(models.JobStatusPending, "jobs.created_at DESC")
}

func (r *JobRepositoryImpl) CountByEmployer(employerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("employer_id = ?", employerID).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByStatus(status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) UpdateStatusWithAudit(jobID string, from, to models.JobStatus, reason string, entry *models.AdminLog) error {
	// Only REJECTED rows carry a rejection_reason; any other target
	// status clears the column. Reasons for other actions live in the
	// audit entry's details.
	rowReason := ""
	if to == models.JobStatusRejected {
		rowReason = reason
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Job{}).Where("id = ? AND status = ?", jobID, from).Updates(map[string]interface{}{
			"status":           to,
			"rejection_reason": rowReason,
			"updated_at":       time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobStatusConflict
		}
		return tx.Create(entry).Error
	})
}
