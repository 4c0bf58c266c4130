package models

type Message struct {
	BaseModel
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Body       string `gorm:"not null" json:"message_body"`
	IsFlagged  bool   `gorm:"default:false" json:"is_flagged"`
}
