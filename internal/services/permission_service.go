package services

import (
	"errors"
	"fmt"

	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrChannelNotFound  = errors.New("channel not found")
	ErrNotChannelMember = errors.New("user is not a member of this channel")
	ErrMemberNotFound   = errors.New("target user is not a member of this channel")
)

// PermissionService decides whether an actor may read, post to, or
// manage a channel. Every check resolves to a single role lookup
// against the actor's active membership.
type PermissionService struct {
	channels repository.ChannelRepository
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(channels repository.ChannelRepository) *PermissionService {
	return &PermissionService{
		channels: channels,
	}
}

// Membership resolves the channel and the actor's active membership in
// it. The channel is checked first: an unknown or soft-deleted channel
// yields ErrChannelNotFound regardless of membership state. A
// soft-deleted membership is indistinguishable from no membership.
func (s *PermissionService) Membership(channelID, userID uint64) (*models.Channel, *models.ChannelMember, error) {
	channel, err := s.channels.FindByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrChannelNotFound
		}
		return nil, nil, fmt.Errorf("failed to find channel: %w", err)
	}

	member, err := s.channels.FindMember(channelID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return channel, nil, ErrNotChannelMember
		}
		return nil, nil, fmt.Errorf("failed to find channel member: %w", err)
	}

	return channel, member, nil
}

// CanReadChannel reports whether the actor may read channel metadata,
// message history, and the member list. Any active membership grants
// read access. An unknown channel surfaces ErrChannelNotFound so the
// caller can distinguish 404 from 403.
func (s *PermissionService) CanReadChannel(channelID, userID uint64) (bool, error) {
	_, _, err := s.Membership(channelID, userID)
	if errors.Is(err, ErrNotChannelMember) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CanSendMessage reports whether the actor may post messages to the
// channel.
func (s *PermissionService) CanSendMessage(channelID, userID uint64) (bool, error) {
	_, member, err := s.Membership(channelID, userID)
	if errors.Is(err, ErrNotChannelMember) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return member.Role.CanSendMessages(), nil
}

// CanManageChannel reports whether the actor may rename or delete the
// channel and add or remove members.
func (s *PermissionService) CanManageChannel(channelID, userID uint64) (bool, error) {
	_, member, err := s.Membership(channelID, userID)
	if errors.Is(err, ErrNotChannelMember) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return member.Role.CanManageChannel(), nil
}

// CanManageMembership reports whether the actor may remove the target
// from the channel. On top of the manage check, the target must hold an
// active membership; ErrMemberNotFound is returned otherwise. There is
// no self-protection rule: an admin removing themselves goes through
// the same path.
func (s *PermissionService) CanManageMembership(channelID, actorID, targetID uint64) (bool, error) {
	allowed, err := s.CanManageChannel(channelID, actorID)
	if err != nil || !allowed {
		return false, err
	}

	if _, err := s.channels.FindMember(channelID, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMemberNotFound
		}
		return false, fmt.Errorf("failed to find channel member: %w", err)
	}

	return true, nil
}
