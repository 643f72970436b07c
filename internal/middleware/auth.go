package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shoptalk/shoptalk-api/internal/constants"
	"github.com/shoptalk/shoptalk-api/internal/errors"
)

// AuthMiddleware validates bearer tokens and loads the caller's user ID
// into the request context.
type AuthMiddleware struct {
	jwtSecret string
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// RequireAuth aborts with 401 unless the request carries a valid bearer
// token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			errors.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(m.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			errors.Unauthorized(c, "Invalid access token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			errors.Unauthorized(c, "Invalid access token")
			c.Abort()
			return
		}

		// Numeric JSON claims decode as float64.
		rawID, ok := claims["user_id"].(float64)
		if !ok || rawID <= 0 {
			errors.Unauthorized(c, "Invalid access token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, uint64(rawID))
		c.Next()
	}
}

// GetUserID returns the authenticated caller's user ID from the request
// context. It is only valid behind RequireAuth.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
