package scheduler

import (
	"context"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/voicewatcher/internal/services/scheduler Service

// Service runs moderation actions at a later time
type Service interface {
	// Schedule queues an action to run at input.DueAt
	Schedule(ctx context.Context, input *ScheduleInput) (*models.DeferredAction, error)

	// Pending lists queued actions ordered by due time
	Pending(ctx context.Context) ([]*models.DeferredAction, error)

	// Run executes due actions until ctx is cancelled
	Run(ctx context.Context) error
}
