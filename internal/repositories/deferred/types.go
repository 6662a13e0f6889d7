package deferred

import (
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

type SaveActionInput struct {
	Action *models.DeferredAction
}

type ClaimDueInput struct {
	Now time.Time
}

type ListPendingInput struct {
}
