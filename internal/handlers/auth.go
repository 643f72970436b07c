package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/constants"
	"github.com/shoptalk/shoptalk-api/internal/dto"
	apierrors "github.com/shoptalk/shoptalk-api/internal/errors"
	"github.com/shoptalk/shoptalk-api/internal/middleware"
	"github.com/shoptalk/shoptalk-api/internal/services"
)

// validEmail reports whether the address is RFC-shaped. Display-name
// forms are not accepted.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// AuthHandler handles registration and sign-in endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" {
		apierrors.Validation(c, "Name is required")
		return
	}
	if utf8.RuneCountInString(req.Name) > constants.MaxUserNameLength {
		apierrors.Validation(c, "Name must not exceed 255 characters")
		return
	}
	if len(req.Email) < constants.MinEmailLength {
		apierrors.Validation(c, "Email must be at least 5 characters")
		return
	}
	if len(req.Email) > constants.MaxEmailLength {
		apierrors.Validation(c, "Email must not exceed 254 characters")
		return
	}
	if !validEmail(req.Email) {
		apierrors.Validation(c, "Invalid email format")
		return
	}
	if len(req.Password) < constants.MinPasswordLength {
		apierrors.Validation(c, "Password must be at least 6 characters")
		return
	}
	if len(req.Password) > constants.MaxPasswordLength {
		apierrors.Validation(c, "Password must not exceed 128 characters")
		return
	}
	if req.Title != nil && utf8.RuneCountInString(*req.Title) > constants.MaxTitleLength {
		apierrors.Validation(c, "Title must not exceed 100 characters")
		return
	}

	user, err := h.auth.Signup(services.SignupInput{
		Name:     req.Name,
		Title:    req.Title,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			apierrors.Conflict(c, "Email already in use", "This email is already registered to another user")
			return
		}
		apierrors.InternalError(c, "Failed to create account")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		apierrors.Validation(c, "Email and password are required")
		return
	}

	user, token, err := h.auth.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "Invalid email or password")
			return
		}
		apierrors.InternalError(c, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the
// server has nothing to invalidate; clients drop the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Signed out successfully"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Access token required")
		return
	}

	user, err := h.auth.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.Unauthorized(c, "Invalid access token")
			return
		}
		apierrors.InternalError(c, "Failed to load account")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
