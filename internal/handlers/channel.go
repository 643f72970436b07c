package handlers

import (
	"errors"
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

// ChannelHandler handles channel and membership endpoints.
type ChannelHandler struct {
	channels *services.ChannelService
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(channels *services.ChannelService) *ChannelHandler {
	return &ChannelHandler{channels: channels}
}

// validateChannelName checks a channel name and reports the failure to
// the client. A nil name means the field was absent from the body,
// which is reported differently from an empty value. It returns the
// trimmed name and whether validation passed.
func validateChannelName(c *gin.Context, name *string) (string, bool) {
	if name == nil {
		apierrors.Validation(c, "Channel name is required")
		return "", false
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		apierrors.Validation(c, "Channel name cannot be empty")
		return "", false
	}
	if utf8.RuneCountInString(trimmed) > constants.MaxChannelNameLength {
		apierrors.Validation(c, "Channel name must not exceed 100 characters")
		return "", false
	}
	return trimmed, true
}

// List handles GET /api/channels. Only channels the caller holds an
// active membership in are returned.
func (h *ChannelHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Access token required")
		return
	}

	memberships, err := h.channels.ListChannelsForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list channels")
		return
	}

	resp := dto.ChannelListResponse{Channels: make([]dto.ChannelSummaryResponse, 0, len(memberships))}
	for i := range memberships {
		resp.Channels = append(resp.Channels, dto.ToChannelSummaryResponse(&memberships[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/channels. The creator becomes the channel's
// first admin.
func (h *ChannelHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Access token required")
		return
	}

	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	name, ok := validateChannelName(c, req.Name)
	if !ok {
		return
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > constants.MaxDescriptionLength {
		apierrors.Validation(c, "Description must not exceed 1000 characters")
		return
	}

	channel, err := h.channels.CreateChannel(services.CreateChannelInput{
		Name:        name,
		Description: req.Description,
		CreatorID:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChannelNameTaken):
			apierrors.Conflict(c, "Channel already exists", "A channel with this name already exists")
		case errors.Is(err, services.ErrCreatorInactive):
			apierrors.InsufficientPermissions(c, "User does not have permission to create channels")
		default:
			apierrors.InternalError(c, "Failed to create channel")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChannelDetailResponse(channel, 1))
}

// Get handles GET /api/channels/:id.
func (h *ChannelHandler) Get(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	count, err := h.channels.MemberCount(channel.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load channel")
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelDetailResponse(channel, count))
}

// Update handles PUT /api/channels/:id. Admin only.
func (h *ChannelHandler) Update(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	var req dto.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	name, ok := validateChannelName(c, req.Name)
	if !ok {
		return
	}
	description := channel.Description
	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > constants.MaxDescriptionLength {
			apierrors.Validation(c, "Description must not exceed 1000 characters")
			return
		}
		description = req.Description
	}

	updated, err := h.channels.UpdateChannel(channel, name, description)
	if err != nil {
		if errors.Is(err, services.ErrChannelNameTaken) {
			apierrors.Conflict(c, "Channel already exists", "A channel with this name already exists")
			return
		}
		apierrors.InternalError(c, "Failed to update channel")
		return
	}

	count, err := h.channels.MemberCount(updated.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load channel")
		return
	}

	c.JSON(http.StatusOK, dto.ToChannelDetailResponse(updated, count))
}

// Delete handles DELETE /api/channels/:id. Admin only.
func (h *ChannelHandler) Delete(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	if err := h.channels.DeleteChannel(channel.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete channel")
		return
	}

	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Channel deleted successfully"})
}

// ListMembers handles GET /api/channels/:id/members.
func (h *ChannelHandler) ListMembers(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	members, err := h.channels.ListMembers(channel.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list members")
		return
	}

	resp := dto.MemberListResponse{
		Members: make([]dto.MemberResponse, 0, len(members)),
		Count:   len(members),
	}
	for i := range members {
		resp.Members = append(resp.Members, dto.ToMemberResponse(&members[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// AddMembers handles POST /api/channels/:id/members. Admin only. Every
// listed user must exist; users already holding an active membership
// are left untouched.
func (h *ChannelHandler) AddMembers(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	var req dto.AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Validation(c, "Invalid request body")
		return
	}

	if req.UserIDs == nil {
		apierrors.Validation(c, "userIds field is required")
		return
	}
	if len(req.UserIDs) == 0 {
		apierrors.Validation(c, "At least one user ID is required")
		return
	}

	added, err := h.channels.AddMembers(channel.ID, req.UserIDs)
	if err != nil {
		if errors.Is(err, services.ErrUsersNotFound) {
			apierrors.NotFound(c, "User not found", "One or more users do not exist")
			return
		}
		apierrors.InternalError(c, "Failed to add members")
		return
	}

	resp := dto.AddMembersResponse{
		Message: "Members added successfully",
		Added:   make([]dto.UserResponse, 0, len(added)),
	}
	for i := range added {
		resp.Added = append(resp.Added, dto.ToUserResponse(&added[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveMember handles DELETE /api/channels/:id/members/:userId. Admin
// only. The removal is a soft delete; the target's message history
// stays intact.
func (h *ChannelHandler) RemoveMember(c *gin.Context) {
	channel, ok := middleware.GetChannel(c)
	if !ok {
		apierrors.NotFound(c, "Channel not found", "Channel does not exist")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Member not found", "User is not a member of this channel")
		return
	}

	if err := h.channels.RemoveMember(channel.ID, targetID); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			apierrors.NotFound(c, "Member not found", "User is not a member of this channel")
			return
		}
		apierrors.InternalError(c, "Failed to remove member")
		return
	}

	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Member removed successfully"})
}
