package services

import (
	"fmt"

	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/repository"
)

// MessageService provides business logic for reading and posting
// channel messages. Access checks happen before these methods are
// reached.
type MessageService struct {
	messages repository.MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{
		messages: messages,
	}
}

// ListMessages returns up to limit visible messages in descending
// chronological order, plus whether older messages remain beyond the
// page. A non-zero before cursor restricts the page to messages older
// than it.
func (s *MessageService) ListMessages(channelID uint64, limit int, before uint64) ([]models.Message, bool, error) {
	// Fetch one extra row to detect whether more pages exist.
	page, err := s.messages.ListByChannel(channelID, limit+1, before)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list messages: %w", err)
	}

	hasMore := len(page) > limit
	if hasMore {
		page = page[:limit]
	}

	return page, hasMore, nil
}

// SendMessage stores a message authored by the user and returns it with
// the sender loaded.
func (s *MessageService) SendMessage(channelID, userID uint64, content string) (*models.Message, error) {
	message := &models.Message{
		ChannelID: channelID,
		UserID:    &userID,
		Content:   content,
	}

	if err := s.messages.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	created, err := s.messages.FindByID(message.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created message: %w", err)
	}

	return created, nil
}
