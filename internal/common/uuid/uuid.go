package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/voicewatcher/internal/common/uuid Generator

// Generator hands out identifiers for flows and deferred actions
type Generator interface {
	NewID() string
}

// RandomGenerator produces random (version 4) UUIDs
type RandomGenerator struct{}

// New returns the default generator
func New() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a new random UUID string
func (g *RandomGenerator) NewID() string {
	return uuid.NewString()
}
