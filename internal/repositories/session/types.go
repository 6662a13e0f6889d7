package session

import "github.com/KirkDiggler/voicewatcher/internal/models"

type TryAcquireInput struct {
	Key   models.SessionKey
	Owner string
}

type RefreshInput struct {
	Key   models.SessionKey
	Owner string
}

type ReleaseInput struct {
	Key   models.SessionKey
	Owner string
}
