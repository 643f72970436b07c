package dto

import (
	"time"

	"github.com/shoptalk/shoptalk-api/internal/models"
)

// SendMessageRequest is the request body for posting a message.
type SendMessageRequest struct {
	Content *string `json:"content"`
}

// MessageResponse is the public shape of a channel message. Sender is
// nil when the author account no longer exists.
type MessageResponse struct {
	ID          uint64        `json:"id"`
	ChannelID   uint64        `json:"channelId"`
	Content     string        `json:"content"`
	Sender      *UserResponse `json:"sender"`
	Attachments []Attachment  `json:"attachments,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Attachment is the public shape of a message attachment.
type Attachment struct {
	ID      uint64 `json:"id"`
	FileURL string `json:"fileUrl"`
}

// MessageListResponse is one page of a channel's message history.
// HasMore reports whether older messages exist beyond this page.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	HasMore  bool              `json:"hasMore"`
}

// ToMessageResponse converts a message model to its public shape.
func ToMessageResponse(m *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.Sender != nil {
		sender := ToUserResponse(m.Sender)
		resp.Sender = &sender
	}
	for _, a := range m.Attachments {
		resp.Attachments = append(resp.Attachments, Attachment{ID: a.ID, FileURL: a.FileURL})
	}
	return resp
}

// ToMessageListResponse converts a message page to its public shape.
func ToMessageListResponse(messages []models.Message, hasMore bool) MessageListResponse {
	resp := MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
		HasMore:  hasMore,
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, ToMessageResponse(&messages[i]))
	}
	return resp
}
