package moderation

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_executor.go github.com/KirkDiggler/voicewatcher/internal/services/moderation Executor

// Executor applies one moderation action and describes the result for chat
type Executor interface {
	Apply(ctx context.Context, input *ApplyInput) *ApplyOutput
}
