package discord

import (
	"context"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler receives every text message seen by the bot
type CommandHandler interface {
	// ChannelID returns the channel the handler accepts commands in
	ChannelID() string

	// HandleMessage processes a message; it must return quickly
	HandleMessage(ctx context.Context, msg *models.ChannelMessage)
}

// ReplyRouter hands messages to flows waiting for an answer
type ReplyRouter interface {
	Deliver(msg *models.ChannelMessage) bool
}

// VoiceHandler receives voice state transitions
type VoiceHandler interface {
	// MonitoredChannelID returns the voice channel being watched
	MonitoredChannelID() string

	HandleVoiceStateUpdate(ctx context.Context, change *models.VoiceStateChange) bool
}

// toChannelMessage normalizes a gateway message; it returns nil for messages without an author
func toChannelMessage(m *discordgo.MessageCreate) *models.ChannelMessage {
	if m == nil || m.Message == nil || m.Author == nil {
		return nil
	}

	return &models.ChannelMessage{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		AuthorID:    m.Author.ID,
		Content:     m.Content,
		AuthorIsBot: m.Author.Bot,
	}
}

// toVoiceStateChange normalizes a voice state update
func toVoiceStateChange(v *discordgo.VoiceStateUpdate) *models.VoiceStateChange {
	if v == nil || v.VoiceState == nil {
		return nil
	}

	change := &models.VoiceStateChange{
		GuildID:        v.GuildID,
		UserID:         v.UserID,
		AfterChannelID: v.ChannelID,
		Member:         toMember(v.Member),
	}
	if v.BeforeUpdate != nil {
		change.BeforeChannelID = v.BeforeUpdate.ChannelID
	}
	return change
}

// toMember converts a discordgo member; it returns nil when the user is missing
func toMember(m *discordgo.Member) *models.Member {
	if m == nil || m.User == nil {
		return nil
	}

	return &models.Member{
		ID:            m.User.ID,
		Username:      m.User.Username,
		Discriminator: m.User.Discriminator,
		Bot:           m.User.Bot,
	}
}
