package repositories

import (
	"errors"

	"vahub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// TalentFilter narrows the public talent search. Nil bounds mean
// "unbounded"; both rate bounds are inclusive.
type TalentFilter struct {
	Search               string // substring over name, headline or bio
	MinHourlyRate        *float64
	MaxHourlyRate        *float64
	MinVerificationScore int
}

type ProfileRepository interface {
	CreateVAProfile(profile *models.VAProfile) error
	CreateEmployerProfile(profile *models.EmployerProfile) error
	FindVAProfileByUserID(userID string) (*models.VAProfile, error)
	FindEmployerProfileByUserID(userID string) (*models.EmployerProfile, error)
	SearchTalent(criteria TalentFilter) ([]models.VAProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateVAProfile(profile *models.VAProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindVAProfileByUserID(userID string) (*models.VAProfile, error) {
	var profile models.VAProfile
	err := r.db.Preload("Skills").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindEmployerProfileByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SearchTalent returns active job-seeker profiles only, with the owning
// user and skills preloaded.
func (r *ProfileRepositoryImpl) SearchTalent(criteria TalentFilter) ([]models.VAProfile, error) {
	var profiles []models.VAProfile

	query := r.db.Model(&models.VAProfile{}).
		Joins("JOIN users ON users.id = va_profiles.user_id").
		Where("users.role = ?", models.UserRoleJobSeeker).
		Where("users.status = ?", models.UserStatusActive)

	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where(
			"users.name ILIKE ? OR va_profiles.headline ILIKE ? OR va_profiles.bio ILIKE ?",
			search, search, search,
		)
	}
	if criteria.MinHourlyRate != nil {
		query = query.Where("va_profiles.hourly_rate >= ?", *criteria.MinHourlyRate)
	}
	if criteria.MaxHourlyRate != nil {
		query = query.Where("va_profiles.hourly_rate <= ?", *criteria.MaxHourlyRate)
	}
	if criteria.MinVerificationScore > 0 {
		query = query.Where("va_profiles.verification_score >= ?", criteria.MinVerificationScore)
	}

	err := query.Preload("Skills").Preload("User").
		Order("va_profiles.is_featured DESC, va_profiles.created_at DESC").
		Find(&profiles).Error
	return profiles, err
}
