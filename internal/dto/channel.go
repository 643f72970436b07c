package dto

import (
	"time"

	"github.com/shoptalk/shoptalk-api/internal/models"
)

// CreateChannelRequest is the request body for channel creation.
// Pointer fields distinguish a missing field from an empty one.
type CreateChannelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateChannelRequest is the request body for channel updates.
type UpdateChannelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddMembersRequest is the request body for bulk member addition. The
// nil slice means the field was absent from the body.
type AddMembersRequest struct {
	UserIDs []uint64 `json:"userIds"`
}

// ChannelSummaryResponse is a channel as seen in the caller's channel
// list, including the caller's own role.
type ChannelSummaryResponse struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Role        models.Role `json:"role"`
	JoinedAt    time.Time   `json:"joinedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ChannelDetailResponse is the full channel view with its member count.
type ChannelDetailResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MemberCount int64     `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MemberResponse flattens a membership with its user for the member
// list.
type MemberResponse struct {
	ID       uint64      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	JoinedAt time.Time   `json:"joinedAt"`
}

// ChannelListResponse wraps the caller's channel list.
type ChannelListResponse struct {
	Channels []ChannelSummaryResponse `json:"channels"`
}

// MemberListResponse wraps a channel's member list.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Count   int              `json:"count"`
}

// AddMembersResponse reports the users granted membership.
type AddMembersResponse struct {
	Message string         `json:"message"`
	Added   []UserResponse `json:"added"`
}

// MessageOnlyResponse is the body for operations that return no data.
type MessageOnlyResponse struct {
	Message string `json:"message"`
}

// ToChannelSummaryResponse converts a membership with its preloaded
// channel into a channel list entry.
func ToChannelSummaryResponse(m *models.ChannelMember) ChannelSummaryResponse {
	return ChannelSummaryResponse{
		ID:          m.Channel.ID,
		Name:        m.Channel.Name,
		Description: m.Channel.Description,
		Role:        m.Role,
		JoinedAt:    m.CreatedAt,
		CreatedAt:   m.Channel.CreatedAt,
	}
}

// ToChannelDetailResponse converts a channel and member count into the
// detail view.
func ToChannelDetailResponse(channel *models.Channel, memberCount int64) ChannelDetailResponse {
	return ChannelDetailResponse{
		ID:          channel.ID,
		Name:        channel.Name,
		Description: channel.Description,
		MemberCount: memberCount,
		CreatedAt:   channel.CreatedAt,
		UpdatedAt:   channel.UpdatedAt,
	}
}

// ToMemberResponse converts a membership with its preloaded user into a
// member list entry.
func ToMemberResponse(m *models.ChannelMember) MemberResponse {
	return MemberResponse{
		ID:       m.User.ID,
		Name:     m.User.Name,
		Email:    m.User.Email,
		Role:     m.Role,
		JoinedAt: m.CreatedAt,
	}
}
