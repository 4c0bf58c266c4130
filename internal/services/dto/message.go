package dto

import (
	"time"

	"vahub_backend/internal/models"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Body       string `json:"message_body" validate:"required,min=1,max=5000"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Body       string    `json:"message_body"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Body:       message.Body,
		CreatedAt:  message.CreatedAt,
	}
}
