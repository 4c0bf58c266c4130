package repositories

import (
	"errors"

	"vahub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(message *models.Message) error
	FindConversation(userA, userB string) ([]models.Message, error)
	CountSentSince(senderID string, sinceDays int) (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindConversation returns both directions of traffic between two
// users, oldest first.
func (r *MessageRepositoryImpl) FindConversation(userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) CountSentSince(senderID string, sinceDays int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("sender_id = ? AND created_at >= NOW() - make_interval(days => ?)", senderID, sinceDays).
		Count(&count).Error
	return count, err
}
