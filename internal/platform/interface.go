// Package platform declares the chat platform operations the services depend on.
// The Discord handler implements them over discordgo.
package platform

import (
	"context"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/voicewatcher/internal/platform Messenger,Directory,Moderator

// Messenger posts text to channels
type Messenger interface {
	// SendMessage posts content to a text channel
	SendMessage(ctx context.Context, channelID, content string) error
}

// Directory looks up guild members and their voice state
type Directory interface {
	// ListMembers returns up to limit members in directory order
	ListMembers(ctx context.Context, guildID string, limit int) ([]*models.Member, error)

	// GetCachedMember returns a member from the local cache only
	GetCachedMember(guildID, userID string) (*models.Member, bool)

	// FetchMember fetches a member from the API
	FetchMember(ctx context.Context, guildID, userID string) (*models.Member, error)

	// VoiceChannel returns the voice channel the member is connected to, or "" when disconnected
	VoiceChannel(ctx context.Context, guildID, userID string) (string, error)

	// GuildName resolves a guild's display name
	GuildName(ctx context.Context, guildID string) (string, error)

	// ChannelName resolves a channel's display name
	ChannelName(ctx context.Context, channelID string) (string, error)
}

// Moderator applies moderation actions. Every call takes an audit log reason.
type Moderator interface {
	Kick(ctx context.Context, guildID, userID, reason string) error
	SetTimedRestriction(ctx context.Context, guildID, userID string, until time.Time, reason string) error
	SetVoiceMute(ctx context.Context, guildID, userID string, mute bool, reason string) error
	DisconnectFromVoice(ctx context.Context, guildID, userID, reason string) error
}
