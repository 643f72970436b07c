package services

import (
	"errors"
	"fmt"

	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrChannelNameTaken = errors.New("a channel with this name already exists")
	ErrUsersNotFound    = errors.New("one or more users do not exist")
	ErrCreatorInactive  = errors.New("creator account is not active")
)

// ChannelService provides business logic for channel and membership
// operations.
type ChannelService struct {
	channels repository.ChannelRepository
	users    repository.UserRepository
}

// NewChannelService creates a new ChannelService.
func NewChannelService(channels repository.ChannelRepository, users repository.UserRepository) *ChannelService {
	return &ChannelService{
		channels: channels,
		users:    users,
	}
}

// CreateChannelInput represents parameters to create a new channel.
type CreateChannelInput struct {
	Name        string
	Description *string
	CreatorID   uint64
}

// CreateChannel creates a channel and makes the creator its first admin.
func (s *ChannelService) CreateChannel(input CreateChannelInput) (*models.Channel, error) {
	if _, err := s.users.FindByID(input.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorInactive
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	if _, err := s.channels.FindByName(input.Name); err == nil {
		return nil, ErrChannelNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check channel name: %w", err)
	}

	channel := &models.Channel{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.channels.CreateWithAdmin(channel, input.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChannelNameTaken
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return channel, nil
}

// ListChannelsForUser returns the active memberships of a user with
// their channels.
func (s *ChannelService) ListChannelsForUser(userID uint64) ([]models.ChannelMember, error) {
	memberships, err := s.channels.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return memberships, nil
}

// MemberCount counts the active members of a channel.
func (s *ChannelService) MemberCount(channelID uint64) (int64, error) {
	count, err := s.channels.CountMembers(channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

// UpdateChannel updates a channel's name and description.
func (s *ChannelService) UpdateChannel(channel *models.Channel, name string, description *string) (*models.Channel, error) {
	if name != channel.Name {
		if existing, err := s.channels.FindByName(name); err == nil && existing.ID != channel.ID {
			return nil, ErrChannelNameTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check channel name: %w", err)
		}
	}

	channel.Name = name
	channel.Description = description
	if err := s.channels.Update(channel); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrChannelNameTaken
		}
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}

	return channel, nil
}

// DeleteChannel soft deletes a channel. Operations against it behave as
// not found from then on.
func (s *ChannelService) DeleteChannel(channelID uint64) error {
	if err := s.channels.Delete(channelID); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}

// ListMembers returns the active members of a channel.
func (s *ChannelService) ListMembers(channelID uint64) ([]models.ChannelMember, error) {
	members, err := s.channels.ListMembers(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// AddMembers grants the member role to every listed user. All users
// must resolve to active accounts. The operation is idempotent: a user
// who already holds an active membership keeps it, and a soft-deleted
// membership is restored rather than duplicated.
func (s *ChannelService) AddMembers(channelID uint64, userIDs []uint64) ([]models.UserAccount, error) {
	unique := make([]uint64, 0, len(userIDs))
	seen := make(map[uint64]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := s.users.FindByIDs(unique)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	if len(users) != len(unique) {
		return nil, ErrUsersNotFound
	}

	if err := s.channels.AddMembers(channelID, unique, models.RoleMember); err != nil {
		return nil, fmt.Errorf("failed to add members: %w", err)
	}

	return users, nil
}

// RemoveMember soft deletes the target's membership. The target must
// currently be an active member.
func (s *ChannelService) RemoveMember(channelID, targetID uint64) error {
	if _, err := s.channels.FindMember(channelID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find channel member: %w", err)
	}

	if err := s.channels.RemoveMember(channelID, targetID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}
