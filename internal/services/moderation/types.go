package moderation

import (
	"log/slog"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/KirkDiggler/voicewatcher/internal/services/scheduler"
)

// Config holds the executor's dependencies
type Config struct {
	Directory platform.Directory
	Moderator platform.Moderator
	Scheduler scheduler.Service
	Clock     clock.Clock
	Logger    *slog.Logger

	// AdminVoiceChannelID is the only voice channel the disconnect action applies to
	AdminVoiceChannelID string
}

// ApplyInput describes one moderation action
type ApplyInput struct {
	GuildID string
	Actor   *models.Member
	Target  *models.Member
	Action  models.ActionChoice
}

// ApplyOutput is the result shown in chat
type ApplyOutput struct {
	Success bool
	Message string
}
