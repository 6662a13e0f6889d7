package webhook

import (
	"context"

	"github.com/KirkDiggler/voicewatcher/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_dispatcher.go github.com/KirkDiggler/voicewatcher/internal/services/webhook Dispatcher

// Dispatcher delivers events to the configured webhook endpoint
type Dispatcher interface {
	// Send posts event with bounded retries and reports whether any attempt got a 2xx
	Send(ctx context.Context, event *models.WebhookEvent) bool

	// Stats returns delivery counters since startup
	Stats() Stats
}
