package deferred

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

// memoryRepository keeps deferred actions in process memory; they are lost on exit
type memoryRepository struct {
	mu      sync.Mutex
	actions map[string]*models.DeferredAction
}

// NewMemory creates an in-memory deferred action queue
func NewMemory() *memoryRepository {
	return &memoryRepository{
		actions: make(map[string]*models.DeferredAction),
	}
}

// SaveAction stores the action
func (r *memoryRepository) SaveAction(ctx context.Context, input *SaveActionInput) error {
	if input == nil || input.Action == nil {
		return errors.New("input and action cannot be nil")
	}
	if input.Action.ID == "" {
		return errors.New("action ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *input.Action
	r.actions[copied.ID] = &copied

	return nil
}

// ClaimDue pops every action due at or before input.Now
func (r *memoryRepository) ClaimDue(ctx context.Context, input *ClaimDueInput) ([]*models.DeferredAction, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*models.DeferredAction
	for id, action := range r.actions {
		if action.DueAt.After(input.Now) {
			continue
		}
		due = append(due, action)
		delete(r.actions, id)
	}

	sortByDue(due)
	return due, nil
}

// ListPending returns a snapshot of the queue
func (r *memoryRepository) ListPending(ctx context.Context, input *ListPendingInput) ([]*models.DeferredAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make([]*models.DeferredAction, 0, len(r.actions))
	for _, action := range r.actions {
		copied := *action
		pending = append(pending, &copied)
	}

	sortByDue(pending)
	return pending, nil
}

func sortByDue(actions []*models.DeferredAction) {
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].DueAt.Before(actions[j].DueAt)
	})
}
