package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUserID        = "user_id"
	ContextKeyChannel       = "channel"
	ContextKeyMembership    = "channel_membership"
	ContextKeyMessageLimit  = "message_limit"
	ContextKeyMessageBefore = "message_before"
)

// Validation limits for account fields.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
	MinEmailLength    = 5
	MaxEmailLength    = 254
	MaxUserNameLength = 255
	MaxTitleLength    = 100
)

// Validation limits for channels and messages.
const (
	MaxChannelNameLength = 100
	MaxDescriptionLength = 1000
	MaxMessageLength     = 1000
)

// Message pagination. Requests above MaxMessagePageSize are rejected,
// not clamped.
const (
	DefaultMessagePageSize = 50
	MaxMessagePageSize     = 100
)

// Offset pagination for catalog listings.
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
