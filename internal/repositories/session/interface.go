package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/voicewatcher/internal/repositories/session Repository

import (
	"context"
)

// Repository tracks which (channel, user) pairs have a judgment flow in progress.
// TryAcquire must check and insert as one atomic step. Each key remembers the
// owner that acquired it and only that owner may refresh or release it.
type Repository interface {
	// TryAcquire registers the key and returns true, or returns false without changes if it is already held
	TryAcquire(ctx context.Context, input *TryAcquireInput) (bool, error)

	// Refresh extends the lease and reports whether input.Owner still holds the key
	Refresh(ctx context.Context, input *RefreshInput) (bool, error)

	// Release removes the key when input.Owner holds it; releasing an absent or foreign key is not an error
	Release(ctx context.Context, input *ReleaseInput) error
}
