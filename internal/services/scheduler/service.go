// Package scheduler persists delayed moderation actions and runs them when they come due.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/common/uuid"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/repositories/deferred"
)

const (
	DefaultPollInterval = time.Second

	// UnmuteReason is the audit log reason used when a temporary mute ends
	UnmuteReason = "Fim do mute temporario do !julgar"
)

type service struct {
	config *Config
	logger *slog.Logger

	mu       sync.RWMutex
	handlers map[models.DeferredKind]Handler
}

// New creates a new scheduler with the unmute handler registered
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, errors.New("repository cannot be nil")
	}
	if cfg.Directory == nil {
		return nil, errors.New("directory cannot be nil")
	}
	if cfg.Moderator == nil {
		return nil, errors.New("moderator cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	s := &service{
		config:   cfg,
		logger:   cfg.Logger.With("component", "scheduler"),
		handlers: make(map[models.DeferredKind]Handler),
	}
	s.RegisterHandler(models.DeferredKindUnmute, s.unmute)

	return s, nil
}

// RegisterHandler sets the handler run for actions of kind
func (s *service) RegisterHandler(kind models.DeferredKind, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[kind] = handler
}

// Schedule queues an action to run at input.DueAt
func (s *service) Schedule(ctx context.Context, input *ScheduleInput) (*models.DeferredAction, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.GuildID == "" {
		return nil, ErrInvalidGuildID
	}
	if input.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if !s.hasHandler(input.Kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, input.Kind)
	}

	action := &models.DeferredAction{
		ID:        s.config.UUID.NewID(),
		Kind:      input.Kind,
		GuildID:   input.GuildID,
		UserID:    input.UserID,
		Reason:    input.Reason,
		DueAt:     input.DueAt,
		CreatedAt: s.config.Clock.Now(),
	}

	if err := s.config.Repository.SaveAction(ctx, &deferred.SaveActionInput{Action: action}); err != nil {
		return nil, fmt.Errorf("failed to save deferred action: %w", err)
	}

	s.logger.Debug("deferred action scheduled",
		"action_id", action.ID,
		"kind", action.Kind,
		"guild_id", action.GuildID,
		"user_id", action.UserID,
		"due_at", action.DueAt)

	return action, nil
}

// Pending lists queued actions ordered by due time
func (s *service) Pending(ctx context.Context) ([]*models.DeferredAction, error) {
	return s.config.Repository.ListPending(ctx, &deferred.ListPendingInput{})
}

// Run polls for due actions until ctx is cancelled
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	s.logger.Info("deferred scheduler started", "poll_interval", s.config.PollInterval)

	for {
		if _, err := s.RunDue(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("failed to claim due actions", "error", err)
		}

		select {
		case <-ctx.Done():
			s.logger.Info("deferred scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RunDue claims every action due now and runs it, returning how many were claimed.
// Handler failures are logged and do not stop the batch. Actions claimed
// alongside a repository error still run before the error is returned.
func (s *service) RunDue(ctx context.Context) (int, error) {
	actions, err := s.config.Repository.ClaimDue(ctx, &deferred.ClaimDueInput{
		Now: s.config.Clock.Now(),
	})

	for _, action := range actions {
		s.execute(ctx, action)
	}

	return len(actions), err
}

func (s *service) execute(ctx context.Context, action *models.DeferredAction) {
	s.mu.RLock()
	handler, ok := s.handlers[action.Kind]
	s.mu.RUnlock()

	logger := s.logger.With(
		"action_id", action.ID,
		"kind", action.Kind,
		"guild_id", action.GuildID,
		"user_id", action.UserID)

	if !ok {
		logger.Warn("dropping deferred action", "error", ErrUnknownKind)
		return
	}

	if err := handler(ctx, action); err != nil {
		logger.Warn("deferred action failed", "error", err)
		return
	}

	logger.Debug("deferred action completed")
}

func (s *service) hasHandler(kind models.DeferredKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.handlers[kind]
	return ok
}

// unmute lifts the voice mute if the member is still connected
func (s *service) unmute(ctx context.Context, action *models.DeferredAction) error {
	channelID, err := s.config.Directory.VoiceChannel(ctx, action.GuildID, action.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up voice state: %w", err)
	}
	if channelID == "" {
		return nil
	}

	reason := action.Reason
	if reason == "" {
		reason = UnmuteReason
	}

	return s.config.Moderator.SetVoiceMute(ctx, action.GuildID, action.UserID, false, reason)
}
