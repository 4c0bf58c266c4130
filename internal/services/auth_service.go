package services

import (
	"errors"
	"net/http"

	"vahub_backend/internal/auth"
	"vahub_backend/internal/logger"
	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Register creates a user plus its role-specific profile row. Only the
// two public roles may self-register; staff accounts are seeded or
// created by an admin. Employers start ACTIVE on the free plan, job
// seekers start PENDING until an admin clears them.
func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleEmployer && role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to hash password", http.StatusInternalServerError)
	}

	status := models.UserStatusPending
	if role == models.UserRoleEmployer {
		status = models.UserStatusActive
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create user", http.StatusInternalServerError)
	}

	switch role {
	case models.UserRoleJobSeeker:
		err = s.profileRepo.CreateVAProfile(&models.VAProfile{UserID: user.ID})
	case models.UserRoleEmployer:
		err = s.profileRepo.CreateEmployerProfile(&models.EmployerProfile{UserID: user.ID})
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create profile", http.StatusInternalServerError)
	}

	if role == models.UserRoleEmployer {
		if plan, planErr := s.subscriptionRepo.FindPlanByName("Free"); planErr == nil {
			if err := s.subscriptionRepo.Create(&models.Subscription{
				UserID: user.ID,
				PlanID: plan.ID,
				Status: models.SubscriptionStatusActive,
			}); err != nil {
				return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create subscription", http.StatusInternalServerError)
			}
		}
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to issue token", http.StatusInternalServerError)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}

func (s *AuthServiceImpl) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to load user", http.StatusInternalServerError)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// PENDING accounts may log in; they are simply invisible in talent
	// search until an admin activates them.
	switch user.Status {
	case models.UserStatusSuspended:
		return nil, apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return nil, apperrors.ErrUserBanned
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to issue token", http.StatusInternalServerError)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}
