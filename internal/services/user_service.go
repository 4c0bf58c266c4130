package services

import (
	"errors"
	"net/http"

	"vahub_backend/internal/models"
	"vahub_backend/internal/repositories"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"
)

type UserService interface {
	SearchUsers(req dto.SearchUsersRequest) ([]dto.UserResponse, error)
	GetUser(id string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// SearchUsers backs the admin user browser. Admin accounts are kept
// out of the result set so they cannot be moderated from the UI.
func (s *UserServiceImpl) SearchUsers(req dto.SearchUsersRequest) ([]dto.UserResponse, error) {
	criteria := repositories.UserFilter{
		Role:         models.UserRole(req.Role),
		Status:       models.UserStatus(req.Status),
		Search:       req.Search,
		ExcludeAdmin: true,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}

	users, err := s.userRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "users", "Failed to search users", http.StatusInternalServerError)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ToUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserServiceImpl) GetUser(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "users", "Failed to load user", http.StatusInternalServerError)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
