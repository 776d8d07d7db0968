package services

import (
	"errors"
	"fmt"

	"github.com/teamflow/teamflow-api/internal/dto"
	"github.com/teamflow/teamflow-api/internal/repository"
	"gorm.io/gorm"
)

// UserService exposes the user directory
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns a user with the password stripped
func (s *UserService) GetUser(userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	sanitized := dto.ToUserDTO(*user)
	return &sanitized, nil
}

// ListUsers returns all users with passwords stripped
func (s *UserService) ListUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	sanitized := make([]dto.UserDTO, len(users))
	for i, user := range users {
		sanitized[i] = dto.ToUserDTO(user)
	}
	return sanitized, nil
}
