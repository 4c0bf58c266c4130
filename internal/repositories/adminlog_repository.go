package repositories

import (
	"time"

	"vahub_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminLogEntry is an audit row annotated with the acting admin's name
// for display. Name resolution is a join, not a foreign key preload,
// so deleted admins still show up with an empty name.
type AdminLogEntry struct {
	ID          string         `json:"id"`
	AdminID     string         `json:"admin_id"`
	AdminName   string         `json:"admin_name"`
	ActionType  string         `json:"action_type"`
	TargetType  string         `json:"target_type"`
	TargetID    string         `json:"target_id"`
	Description string         `json:"description"`
	Details     datatypes.JSON `json:"details,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type AdminLogRepository interface {
	Create(log *models.AdminLog) error
	FindLatest(limit int) ([]AdminLogEntry, error)
}

type AdminLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminLogRepository(db *gorm.DB) AdminLogRepository {
	return &AdminLogRepositoryImpl{db: db}
}

func (r *AdminLogRepositoryImpl) Create(log *models.AdminLog) error {
	return r.db.Create(log).Error
}

func (r *AdminLogRepositoryImpl) FindLatest(limit int) ([]AdminLogEntry, error) {
	var entries []AdminLogEntry
	err := r.db.Table("admin_logs").
		Select("admin_logs.*, COALESCE(users.name, '') AS admin_name").
		Joins("LEFT JOIN users ON users.id = admin_logs.admin_id").
		Order("admin_logs.created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
