package judgment

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/common/uuid"
	"github.com/KirkDiggler/voicewatcher/internal/dice"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/KirkDiggler/voicewatcher/internal/repositories/session"
	"github.com/KirkDiggler/voicewatcher/internal/services/moderation"
	"github.com/KirkDiggler/voicewatcher/internal/services/prompt"
)

// Config holds the orchestrator's settings and collaborators
type Config struct {
	// JudgmentChannelID is the only text channel where commands are accepted
	JudgmentChannelID string

	// PromptTimeout is the idle window of each question
	PromptTimeout time.Duration

	// CandidateLimit caps the target list
	CandidateLimit int

	Messenger platform.Messenger
	Directory platform.Directory
	Sessions  session.Repository
	Prompter  *prompt.Service
	Executor  moderation.Executor
	Roller    dice.Roller
	UUID      uuid.Generator
	Logger    *slog.Logger
}
