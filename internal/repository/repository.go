package repository

import (
	"github.com/shoptalk/shoptalk-api/internal/models"
)

// UserRepository defines the interface for user account data access
type UserRepository interface {
	// Create creates a new user account
	Create(user *models.UserAccount) error

	// FindByID finds an active user account by ID
	FindByID(id uint64) (*models.UserAccount, error)

	// FindByEmail finds an active user account by email
	FindByEmail(email string) (*models.UserAccount, error)

	// Update updates a user account
	Update(user *models.UserAccount) error

	// FindByIDs finds the active accounts among the given user IDs
	FindByIDs(ids []uint64) ([]models.UserAccount, error)
}

// ChannelRepository defines the interface for channel and membership data access
type ChannelRepository interface {
	// CreateWithAdmin creates a channel and its first admin membership atomically
	CreateWithAdmin(channel *models.Channel, adminID uint64) error

	// FindByID finds an active channel by ID
	FindByID(id uint64) (*models.Channel, error)

	// FindByName finds an active channel by its unique name
	FindByName(name string) (*models.Channel, error)

	// Update updates a channel
	Update(channel *models.Channel) error

	// Delete soft deletes a channel and its memberships
	Delete(id uint64) error

	// ListForUser lists the active memberships of a user with channels preloaded
	ListForUser(userID uint64) ([]models.ChannelMember, error)

	// FindMember finds the active membership for a (channel, user) pair
	FindMember(channelID, userID uint64) (*models.ChannelMember, error)

	// ListMembers lists the active members of a channel with users preloaded
	ListMembers(channelID uint64) ([]models.ChannelMember, error)

	// CountMembers counts the active members of a channel
	CountMembers(channelID uint64) (int64, error)

	// AddMembers grants the role to each user, resurrecting soft-deleted memberships
	AddMembers(channelID uint64, userIDs []uint64, role models.Role) error

	// RemoveMember soft deletes a membership
	RemoveMember(channelID, userID uint64) error
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Create creates a new message
	Create(message *models.Message) error

	// FindByID finds an active message by ID with the sender preloaded
	FindByID(id uint64) (*models.Message, error)

	// ListByChannel lists up to limit active messages in descending ID order,
	// optionally only those older than the before cursor
	ListByChannel(channelID uint64, limit int, before uint64) ([]models.Message, error)
}

// ProductFilter holds filtering options for listing products
type ProductFilter struct {
	CategoryID *uint64
	BrandID    *uint64
	Page       int
	PageSize   int
}

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	// List retrieves products with filtering and pagination
	List(filter ProductFilter) ([]models.Product, int64, error)

	// FindByID finds a product by ID with images, options and reviews preloaded
	FindByID(id uint64) (*models.Product, error)

	// ListCategories lists all categories
	ListCategories() ([]models.Category, error)
}
