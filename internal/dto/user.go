package dto

import (
	"time"

	"github.com/shoptalk/shoptalk-api/internal/models"
)

// SignupRequest is the request body for account registration.
type SignupRequest struct {
	Name     string  `json:"name"`
	Title    *string `json:"title"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

// SignInRequest is the request body for credential sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for profile updates. Pointer
// fields distinguish a missing field from an empty one.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Title *string `json:"title"`
	Email *string `json:"email"`
}

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Title     *string   `json:"title,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse carries a user together with their bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse converts a user model to its public shape.
func ToUserResponse(user *models.UserAccount) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Title:     user.Title,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
