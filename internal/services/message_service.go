package services

import (
	"errors"
	"net/http"

	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type MessageService interface {
	Send(senderID string, req dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetConversation(userID, otherID string) ([]dto.MessageResponse, error)
}

type MessageServiceImpl struct {
	messageRepo      repositories.MessageRepository
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) MessageService {
	return &MessageServiceImpl{
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Send delivers a direct message after checking the sender's monthly
// messaging allowance. A limit of 0 means unlimited.
func (s *MessageServiceImpl) Send(senderID string, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "messages", "Failed to load receiver", http.StatusInternalServerError)
	}

	if err := s.checkMessagingLimit(senderID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "messages", "Failed to send message", http.StatusInternalServerError)
	}

	resp := dto.ToMessageResponse(message)
	return &resp, nil
}

func (s *MessageServiceImpl) checkMessagingLimit(senderID string) error {
	subscription, err := s.subscriptionRepo.FindByUserID(senderID)
	if err != nil {
		// Users without a subscription message freely; limits only come
		// with a plan.
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "messages", "Failed to load subscription", http.StatusInternalServerError)
	}
	if subscription.Plan == nil {
		return nil
	}

	limits, err := subscription.Plan.ParseLimits()
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalError, "messages", "Failed to read plan limits", http.StatusInternalServerError)
	}
	if limits.MessagingLimit <= 0 {
		return nil
	}

	sent, err := s.messageRepo.CountSentSince(senderID, 30)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "messages", "Failed to count messages", http.StatusInternalServerError)
	}
	if sent >= int64(limits.MessagingLimit) {
		return apperrors.ErrSubscriptionLimit
	}
	return nil
}

func (s *MessageServiceImpl) GetConversation(userID, otherID string) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindConversation(userID, otherID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "messages", "Failed to load conversation", http.StatusInternalServerError)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, dto.ToMessageResponse(&messages[i]))
	}
	return responses, nil
}
