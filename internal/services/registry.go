package services

import (
	"vahub_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared set of repositories.
type ServiceContainer struct {
	Auth         AuthService
	Job          JobService
	Talent       TalentService
	Application  ApplicationService
	User         UserService
	Moderation   ModerationService
	Subscription SubscriptionService
	Message      MessageService
	Analytics    AnalyticsService
}

func NewServiceContainer(db *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	adminLogRepo := repositories.NewAdminLogRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, profileRepo, subscriptionRepo),
		Job:          NewJobService(jobRepo, profileRepo, subscriptionRepo),
		Talent:       NewTalentService(profileRepo),
		Application:  NewApplicationService(applicationRepo, jobRepo),
		User:         NewUserService(userRepo),
		Moderation:   NewModerationService(jobRepo, userRepo, adminLogRepo),
		Subscription: NewSubscriptionService(subscriptionRepo),
		Message:      NewMessageService(messageRepo, userRepo, subscriptionRepo),
		Analytics:    NewAnalyticsService(userRepo, jobRepo, applicationRepo),
	}
}
