package deferred

import (
	"context"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

// Repository is a timer-indexed queue of deferred moderation actions
type Repository interface {
	// SaveAction enqueues an action keyed by its due time
	SaveAction(ctx context.Context, input *SaveActionInput) error

	// ClaimDue removes and returns every action due at or before input.Now.
	// Each action is returned by exactly one ClaimDue call. Claimed actions are
	// returned even when the error is non-nil.
	ClaimDue(ctx context.Context, input *ClaimDueInput) ([]*models.DeferredAction, error)

	// ListPending returns queued actions ordered by due time without claiming them
	ListPending(ctx context.Context, input *ListPendingInput) ([]*models.DeferredAction, error)
}
