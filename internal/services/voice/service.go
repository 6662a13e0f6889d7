// Package voice reports users joining the monitored voice channel to the webhook.
package voice

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/models"
)

// Service turns voice state transitions into webhook events
type Service struct {
	config *Config
	logger *slog.Logger

	// inflight tracks sends still running in the background
	inflight sync.WaitGroup
}

// New creates a new voice watcher
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.MonitoredChannelID == "" {
		return nil, errors.New("monitored channel ID is required")
	}
	if cfg.Directory == nil {
		return nil, errors.New("directory cannot be nil")
	}
	if cfg.Dispatcher == nil {
		return nil, errors.New("dispatcher cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Service{
		config: cfg,
		logger: cfg.Logger.With("component", "voice"),
	}, nil
}

// MonitoredChannelID returns the channel being watched
func (s *Service) MonitoredChannelID() string {
	return s.config.MonitoredChannelID
}

// Entered reports whether change moves the user into the monitored channel.
// Moves within the channel and departures do not count.
func (s *Service) Entered(change *models.VoiceStateChange) bool {
	monitored := s.config.MonitoredChannelID
	return change.BeforeChannelID != monitored && change.AfterChannelID == monitored
}

// HandleVoiceStateUpdate sends a webhook event when change is an entry into the
// monitored channel. The send runs in the background; the return value only
// reports whether one was started.
func (s *Service) HandleVoiceStateUpdate(ctx context.Context, change *models.VoiceStateChange) bool {
	if change == nil || !s.Entered(change) {
		return false
	}

	event := s.buildEvent(ctx, change)

	s.logger.Info("user joined monitored voice channel",
		"guild_id", change.GuildID,
		"channel_id", change.AfterChannelID,
		"user_id", change.UserID)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		// The event outlives the gateway callback that produced it.
		sendCtx := context.WithoutCancel(ctx)
		if !s.config.Dispatcher.Send(sendCtx, event) {
			s.logger.Error("voice join event was not delivered",
				"guild_id", change.GuildID,
				"user_id", change.UserID)
		}
	}()

	return true
}

// Wait blocks until background sends have finished
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) buildEvent(ctx context.Context, change *models.VoiceStateChange) *models.WebhookEvent {
	guildName, err := s.config.Directory.GuildName(ctx, change.GuildID)
	if err != nil {
		s.logger.Warn("failed to resolve guild name", "guild_id", change.GuildID, "error", err)
	}

	channelName, err := s.config.Directory.ChannelName(ctx, change.AfterChannelID)
	if err != nil {
		s.logger.Warn("failed to resolve channel name", "channel_id", change.AfterChannelID, "error", err)
	}

	member := s.member(ctx, change)

	return &models.WebhookEvent{
		Event:      models.EventUserJoinedMonitoredVoiceChannel,
		OccurredAt: models.FormatOccurredAt(s.config.Clock.Now()),
		Guild: models.WebhookRef{
			ID:   change.GuildID,
			Name: guildName,
		},
		Channel: models.WebhookRef{
			ID:   change.AfterChannelID,
			Name: channelName,
		},
		User: models.WebhookUserRef{
			ID:       change.UserID,
			Username: member.Username,
			Tag:      member.Tag(),
		},
	}
}

func (s *Service) member(ctx context.Context, change *models.VoiceStateChange) *models.Member {
	if change.Member != nil {
		return change.Member
	}
	if m, ok := s.config.Directory.GetCachedMember(change.GuildID, change.UserID); ok {
		return m
	}

	m, err := s.config.Directory.FetchMember(ctx, change.GuildID, change.UserID)
	if err != nil {
		s.logger.Warn("failed to resolve member", "guild_id", change.GuildID, "user_id", change.UserID, "error", err)
		return &models.Member{ID: change.UserID}
	}
	return m
}
