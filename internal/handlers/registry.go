package handlers

import (
	"vahub_backend/internal/services"
	"vahub_backend/internal/validator"
)

// AppHandlers bundles every route-owning handler.
type AppHandlers struct {
	Auth         *AuthHandler
	Job          *JobHandler
	Talent       *TalentHandler
	Application  *ApplicationHandler
	Admin        *AdminHandler
	Subscription *SubscriptionHandler
	Message      *MessageHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		Job:          NewJobHandler(base, container.Job, container.Application),
		Talent:       NewTalentHandler(base, container.Talent),
		Application:  NewApplicationHandler(base, container.Application),
		Admin:        NewAdminHandler(base, container.Moderation, container.User, container.Analytics),
		Subscription: NewSubscriptionHandler(base, container.Subscription),
		Message:      NewMessageHandler(base, container.Message),
	}
}
