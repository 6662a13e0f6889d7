// Package moderation applies the four judgment actions against a guild member.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/KirkDiggler/voicewatcher/internal/services/scheduler"
)

const (
	// RestrictionDuration is how long castigo and mute last
	RestrictionDuration = 10 * time.Minute

	msgForbidden = "Nao tenho permissao suficiente para aplicar esta acao."
	msgAPIError  = "A acao falhou por erro da API do Discord."
)

var _ Executor = (*Service)(nil)

// Service applies moderation actions
type Service struct {
	config *Config
	logger *slog.Logger
}

// New creates a new moderation executor
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Directory == nil {
		return nil, errors.New("directory cannot be nil")
	}
	if cfg.Moderator == nil {
		return nil, errors.New("moderator cannot be nil")
	}
	if cfg.Scheduler == nil {
		return nil, errors.New("scheduler cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Service{
		config: cfg,
		logger: cfg.Logger.With("component", "moderation"),
	}, nil
}

// AuditReason is the audit log reason recorded for actions requested by actor
func AuditReason(actor *models.Member) string {
	return fmt.Sprintf("Acao !julgar solicitada por %s (%s)", actor.Tag(), actor.ID)
}

// Apply makes a single attempt at the action. Precondition and API failures
// come back as an unsuccessful output, never as an error.
func (s *Service) Apply(ctx context.Context, input *ApplyInput) *ApplyOutput {
	if input == nil || input.Actor == nil || input.Target == nil {
		return &ApplyOutput{Message: msgAPIError}
	}

	out, err := s.apply(ctx, input)
	if err == nil {
		return out
	}

	if errors.Is(err, platform.ErrForbidden) {
		return &ApplyOutput{Message: msgForbidden}
	}

	s.logger.Warn("failed to apply julgar action",
		"guild_id", input.GuildID,
		"actor_id", input.Actor.ID,
		"target_id", input.Target.ID,
		"action", input.Action,
		"error", err)

	return &ApplyOutput{Message: msgAPIError}
}

func (s *Service) apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error) {
	reason := AuditReason(input.Actor)
	target := input.Target

	switch input.Action {
	case models.ActionKick:
		if err := s.config.Moderator.Kick(ctx, input.GuildID, target.ID, reason); err != nil {
			return nil, err
		}
		return succeeded(fmt.Sprintf("Acao aplicada: **kick** em %s.", target.Mention())), nil

	case models.ActionCastigo:
		until := s.config.Clock.Now().Add(RestrictionDuration)
		if err := s.config.Moderator.SetTimedRestriction(ctx, input.GuildID, target.ID, until, reason); err != nil {
			return nil, err
		}
		return succeeded(fmt.Sprintf("Acao aplicada: **castigo** em %s por 10 minutos.", target.Mention())), nil

	case models.ActionMute:
		return s.mute(ctx, input.GuildID, target, reason)

	case models.ActionDisconnectAdm:
		return s.disconnect(ctx, input.GuildID, target, reason)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, input.Action)
	}
}

func (s *Service) mute(ctx context.Context, guildID string, target *models.Member, reason string) (*ApplyOutput, error) {
	channelID, err := s.config.Directory.VoiceChannel(ctx, guildID, target.ID)
	if err != nil {
		return nil, err
	}
	if channelID == "" {
		return failed(fmt.Sprintf("Nao foi possivel aplicar mute: %s nao esta em canal de voz.", target.Mention())), nil
	}

	if err := s.config.Moderator.SetVoiceMute(ctx, guildID, target.ID, true, reason); err != nil {
		return nil, err
	}

	// The mute stands even if its reversal cannot be queued.
	_, err = s.config.Scheduler.Schedule(ctx, &scheduler.ScheduleInput{
		Kind:    models.DeferredKindUnmute,
		GuildID: guildID,
		UserID:  target.ID,
		Reason:  scheduler.UnmuteReason,
		DueAt:   s.config.Clock.Now().Add(RestrictionDuration),
	})
	if err != nil {
		s.logger.Error("failed to schedule unmute",
			"guild_id", guildID,
			"user_id", target.ID,
			"error", err)
	}

	return succeeded(fmt.Sprintf("Acao aplicada: **mute** em %s por 10 minutos.", target.Mention())), nil
}

func (s *Service) disconnect(ctx context.Context, guildID string, target *models.Member, reason string) (*ApplyOutput, error) {
	channelID, err := s.config.Directory.VoiceChannel(ctx, guildID, target.ID)
	if err != nil {
		return nil, err
	}
	if channelID == "" {
		return failed(fmt.Sprintf("Nao foi possivel desconectar: %s nao esta em canal de voz.", target.Mention())), nil
	}
	if channelID != s.config.AdminVoiceChannelID {
		return failed(fmt.Sprintf("Nao foi possivel desconectar: %s nao esta no canal ADM configurado.", target.Mention())), nil
	}

	if err := s.config.Moderator.DisconnectFromVoice(ctx, guildID, target.ID, reason); err != nil {
		return nil, err
	}
	return succeeded(fmt.Sprintf("Acao aplicada: **disconnect** de %s do canal ADM.", target.Mention())), nil
}

func succeeded(message string) *ApplyOutput {
	return &ApplyOutput{Success: true, Message: message}
}

func failed(message string) *ApplyOutput {
	return &ApplyOutput{Message: message}
}
