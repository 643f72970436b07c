package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/constants"
	"github.com/shoptalk/shoptalk-api/internal/dto"
	apierrors "github.com/shoptalk/shoptalk-api/internal/errors"
	"github.com/shoptalk/shoptalk-api/internal/middleware"
	"github.com/shoptalk/shoptalk-api/internal/services"
)

// MessageHandler handles channel message endpoints.
type MessageHandler struct {
	messages *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// ValidateListQuery parses and validates message pagination before the
// membership gate runs. An oversized limit is a 400 for every caller,
// whether or not the channel exists or they can see it. A limit above
// the maximum is rejected, not clamped. Parsed values are stored in the
// request context for List.
func (h *MessageHandler) ValidateListQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := constants.DefaultMessagePageSize
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apierrors.Validation(c, "Limit must be a positive integer")
				c.Abort()
				return
			}
			if parsed > constants.MaxMessagePageSize {
				apierrors.Validation(c, "Limit must not exceed 100")
				c.Abort()
				return
			}
			limit = parsed
		}

		var before uint64
		if raw := c.Query("before"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apierrors.Validation(c, "Before must be a valid message ID")
				c.Abort()
				return
			}
			before = parsed
		}

		c.Set(constants.ContextKeyMessageLimit, limit)
		c.Set(constants.ContextKeyMessageBefore, before)
		c.Next()
	}
}

// List handles GET /api/channels/:id/messages. Messages come back
// newest first; the before cursor pages into older history. Pagination
// is validated by ValidateListQuery ahead of the membership gate.
func (h *MessageHandler) List(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	limit := c.GetInt(constants.ContextKeyMessageLimit)
	if limit == 0 {
		limit = constants.DefaultMessagePageSize
	}
	before := c.GetUint64(constants.ContextKeyMessageBefore)

	messages, hasMore, err := h.messages.ListMessages(channel.ID, limit, before)
	if err != nil {
		apierrors.InternalError(c, "Failed to list messages")
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageListResponse(messages, hasMore))
}

// Send handles POST /api/channels/:id/messages. Observers can read the
// channel but may not post to it.
func (h *MessageHandler) Send(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}
	member, ok := middleware.GetMembership(c)
	if !ok {
		apierrors.AccessDenied(c, "User does not have access to this channel")
		return
	}
	if !member.Role.CanSendMessages() {
		apierrors.InsufficientPermissions(c, "User does not have permission to send messages")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Access token required")
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	if req.Content == nil {
		apierrors.Validation(c, "Message content is required")
		return
	}
	content := *req.Content
	if strings.TrimSpace(content) == "" {
		apierrors.Validation(c, "Message content cannot be empty")
		return
	}
	if utf8.RuneCountInString(content) > constants.MaxMessageLength {
		apierrors.Validation(c, "Message content must not exceed 1000 characters")
		return
	}

	message, err := h.messages.SendMessage(channel.ID, userID, content)
	if err != nil {
		apierrors.InternalError(c, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}
