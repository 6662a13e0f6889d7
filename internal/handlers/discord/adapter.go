package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/bwmarrin/discordgo"
)

var (
	_ platform.Messenger = (*Platform)(nil)
	_ platform.Directory = (*Platform)(nil)
	_ platform.Moderator = (*Platform)(nil)
)

// Platform implements the platform ports over a discordgo session.
// Lookups try the gateway state cache before the REST API.
type Platform struct {
	session *discordgo.Session
}

// NewPlatform wraps session
func NewPlatform(session *discordgo.Session) *Platform {
	return &Platform{session: session}
}

// SendMessage posts content to a text channel
func (p *Platform) SendMessage(ctx context.Context, channelID, content string) error {
	_, err := p.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	return mapError(err)
}

// ListMembers returns the first limit members of the guild
func (p *Platform) ListMembers(ctx context.Context, guildID string, limit int) ([]*models.Member, error) {
	members, err := p.session.GuildMembers(guildID, "", limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]*models.Member, 0, len(members))
	for _, m := range members {
		if member := toMember(m); member != nil {
			result = append(result, member)
		}
	}
	return result, nil
}

// GetCachedMember returns a member from the state cache only
func (p *Platform) GetCachedMember(guildID, userID string) (*models.Member, bool) {
	if p.session.State == nil {
		return nil, false
	}

	m, err := p.session.State.Member(guildID, userID)
	if err != nil {
		return nil, false
	}

	member := toMember(m)
	return member, member != nil
}

// FetchMember fetches a member from the API
func (p *Platform) FetchMember(ctx context.Context, guildID, userID string) (*models.Member, error) {
	m, err := p.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	member := toMember(m)
	if member == nil {
		return nil, platform.ErrNotFound
	}
	return member, nil
}

// VoiceChannel returns the member's current voice channel from the state cache.
// The cache is authoritative with the voice states intent, so a miss means disconnected.
func (p *Platform) VoiceChannel(ctx context.Context, guildID, userID string) (string, error) {
	if p.session.State == nil {
		return "", errors.New("state cache is disabled")
	}

	vs, err := p.session.State.VoiceState(guildID, userID)
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return vs.ChannelID, nil
}

// GuildName resolves a guild's name
func (p *Platform) GuildName(ctx context.Context, guildID string) (string, error) {
	if p.session.State != nil {
		if g, err := p.session.State.Guild(guildID); err == nil && g.Name != "" {
			return g.Name, nil
		}
	}

	g, err := p.session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", mapError(err)
	}
	return g.Name, nil
}

// ChannelName resolves a channel's name
func (p *Platform) ChannelName(ctx context.Context, channelID string) (string, error) {
	ch, err := p.channel(ctx, channelID)
	if err != nil {
		return "", err
	}
	return ch.Name, nil
}

func (p *Platform) channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if p.session.State != nil {
		if ch, err := p.session.State.Channel(channelID); err == nil {
			return ch, nil
		}
	}

	ch, err := p.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	return ch, nil
}

// Kick removes the member from the guild
func (p *Platform) Kick(ctx context.Context, guildID, userID, reason string) error {
	return mapError(p.session.GuildMemberDeleteWithReason(guildID, userID, reason, discordgo.WithContext(ctx)))
}

// SetTimedRestriction times the member out until the given instant
func (p *Platform) SetTimedRestriction(ctx context.Context, guildID, userID string, until time.Time, reason string) error {
	return mapError(p.session.GuildMemberTimeout(guildID, userID, &until,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason)))
}

// SetVoiceMute server-mutes or unmutes the member
func (p *Platform) SetVoiceMute(ctx context.Context, guildID, userID string, mute bool, reason string) error {
	return mapError(p.session.GuildMemberMute(guildID, userID, mute,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason)))
}

// DisconnectFromVoice moves the member out of voice
func (p *Platform) DisconnectFromVoice(ctx context.Context, guildID, userID, reason string) error {
	return mapError(p.session.GuildMemberMove(guildID, userID, nil,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason)))
}

// mapError translates REST status codes into platform errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return err
	}

	switch restErr.Response.StatusCode {
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", platform.ErrForbidden, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", platform.ErrNotFound, err)
	default:
		return err
	}
}
