package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/common/uuid"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/KirkDiggler/voicewatcher/internal/repositories/deferred"
)

// Handler executes one claimed action
type Handler func(ctx context.Context, action *models.DeferredAction) error

// Config holds the scheduler's dependencies
type Config struct {
	Repository deferred.Repository
	Directory  platform.Directory
	Moderator  platform.Moderator
	Clock      clock.Clock
	UUID       uuid.Generator
	Logger     *slog.Logger

	// PollInterval is how often the queue is checked for due actions
	PollInterval time.Duration
}

type ScheduleInput struct {
	Kind    models.DeferredKind
	GuildID string
	UserID  string
	Reason  string
	DueAt   time.Time
}
