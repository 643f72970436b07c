package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/constants"
	"github.com/shoptalk/shoptalk-api/internal/dto"
	apierrors "github.com/shoptalk/shoptalk-api/internal/errors"
	"github.com/shoptalk/shoptalk-api/internal/middleware"
	"github.com/shoptalk/shoptalk-api/internal/services"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Access token required")
		return
	}

	user, err := h.users.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found", "User does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile handles PUT /api/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Access token required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	current, err := h.users.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found", "User does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to load profile")
		return
	}

	// Absent fields keep their current values.
	name := current.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	email := current.Email
	if req.Email != nil {
		email = strings.TrimSpace(*req.Email)
	}
	title := current.Title
	if req.Title != nil {
		title = req.Title
	}

	if name == "" {
		apierrors.Validation(c, "Name cannot be empty")
		return
	}
	if utf8.RuneCountInString(name) > constants.MaxUserNameLength {
		apierrors.Validation(c, "Name must not exceed 255 characters")
		return
	}
	if len(email) < constants.MinEmailLength {
		apierrors.Validation(c, "Email must be at least 5 characters")
		return
	}
	if len(email) > constants.MaxEmailLength {
		apierrors.Validation(c, "Email must not exceed 254 characters")
		return
	}
	if !validEmail(email) {
		apierrors.Validation(c, "Invalid email format")
		return
	}
	if title != nil && utf8.RuneCountInString(*title) > constants.MaxTitleLength {
		apierrors.Validation(c, "Title must not exceed 100 characters")
		return
	}

	updated, err := h.users.UpdateProfile(userID, services.UpdateProfileInput{
		Name:  name,
		Title: title,
		Email: email,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			apierrors.Conflict(c, "Email already in use", "This email is already registered to another user")
			return
		}
		apierrors.InternalError(c, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}
