package repositories

import (
	"errors"

	"vahub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobID(jobID string) ([]models.Application, error)
	FindBySeekerID(seekerID string) ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	CountAll() (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobID(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Seeker").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindBySeekerID(seekerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("seeker_id = ?", seekerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}
