package services

import (
	"errors"
	"fmt"

	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"gorm.io/gorm"
)

// UserService provides business logic for user profile operations.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{
		users: users,
	}
}

// GetProfile retrieves an active user account by ID.
func (s *UserService) GetProfile(id uint64) (*models.UserAccount, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput represents the editable profile fields.
type UpdateProfileInput struct {
	Name  string
	Title *string
	Email string
}

// UpdateProfile updates the user's profile fields. Changing the email
// to one held by another account fails with ErrEmailTaken.
func (s *UserService) UpdateProfile(id uint64, input UpdateProfileInput) (*models.UserAccount, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Email != user.Email {
		if existing, err := s.users.FindByEmail(input.Email); err == nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	user.Name = input.Name
	user.Title = input.Title
	user.Email = input.Email

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
