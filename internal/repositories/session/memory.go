package session

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

// memoryRepository implements the Repository interface with a process-local set
type memoryRepository struct {
	mu     sync.Mutex
	active map[models.SessionKey]string
}

// NewMemory creates an in-memory session registry
func NewMemory() *memoryRepository {
	return &memoryRepository{
		active: make(map[models.SessionKey]string),
	}
}

// TryAcquire registers the key if no flow holds it yet
func (r *memoryRepository) TryAcquire(ctx context.Context, input *TryAcquireInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, held := r.active[input.Key]; held {
		return false, nil
	}
	r.active[input.Key] = input.Owner

	return true, nil
}

// Refresh reports whether input.Owner holds the key. Memory keys never expire.
func (r *memoryRepository) Refresh(ctx context.Context, input *RefreshInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owner, held := r.active[input.Key]
	return held && owner == input.Owner, nil
}

// Release drops the key if input.Owner holds it
func (r *memoryRepository) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	if owner, held := r.active[input.Key]; held && owner == input.Owner {
		delete(r.active, input.Key)
	}
	r.mu.Unlock()

	return nil
}

// Len returns the number of active sessions
func (r *memoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
