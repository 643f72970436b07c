package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/constants"
	apierrors "github.com/shoptalk/shoptalk-api/internal/errors"
	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/services"
)

// ChannelAuthMiddleware gates channel routes on the caller's membership
// role. It runs behind RequireAuth.
type ChannelAuthMiddleware struct {
	permissions *services.PermissionService
}

// NewChannelAuthMiddleware creates a new ChannelAuthMiddleware.
func NewChannelAuthMiddleware(permissions *services.PermissionService) *ChannelAuthMiddleware {
	return &ChannelAuthMiddleware{permissions: permissions}
}

// RequireMembership aborts unless the caller holds an active membership
// in the channel named by the :id route parameter. An unknown channel
// yields 404; a known channel without a membership yields 403. On
// success the channel and membership are stored in the request context.
func (m *ChannelAuthMiddleware) RequireMembership() gin.HandlerFunc {
	return func(c *gin.Context) {
		channelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			// A malformed ID cannot name an existing channel.
			apierrors.NotFound(c, "Channel not found", "Channel does not exist")
			c.Abort()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		channel, member, err := m.permissions.Membership(channelID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrChannelNotFound):
				apierrors.NotFound(c, "Channel not found", "Channel does not exist")
			case errors.Is(err, services.ErrNotChannelMember):
				apierrors.AccessDenied(c, "User does not have access to this channel")
			default:
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyChannel, channel)
		c.Set(constants.ContextKeyMembership, member)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller's membership, loaded
// by RequireMembership, carries the admin role. The action string names
// the attempted operation in the error message.
func (m *ChannelAuthMiddleware) RequireAdmin(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, ok := GetMembership(c)
		if !ok || !member.Role.CanManageChannel() {
			apierrors.InsufficientPermissions(c, "User does not have permission to "+action)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetChannel returns the channel loaded by RequireMembership.
func GetChannel(c *gin.Context) (*models.Channel, bool) {
	value, exists := c.Get(constants.ContextKeyChannel)
	if !exists {
		return nil, false
	}
	channel, ok := value.(*models.Channel)
	return channel, ok
}

// GetMembership returns the caller's membership loaded by
// RequireMembership.
func GetMembership(c *gin.Context) (*models.ChannelMember, bool) {
	value, exists := c.Get(constants.ContextKeyMembership)
	if !exists {
		return nil, false
	}
	member, ok := value.(*models.ChannelMember)
	return member, ok
}
