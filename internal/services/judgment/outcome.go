package judgment

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/voicewatcher/internal/dice"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
)

// OutcomeResolver draws the bot's number and decides who the action lands on
type OutcomeResolver struct {
	roller    dice.Roller
	directory platform.Directory
}

// NewOutcomeResolver creates a resolver
func NewOutcomeResolver(roller dice.Roller, directory platform.Directory) *OutcomeResolver {
	return &OutcomeResolver{roller: roller, directory: directory}
}

// Resolve rolls the counter-number for chosen
func (r *OutcomeResolver) Resolve(chosen int) models.OutcomeDraw {
	rolled := r.roller.Roll(LuckyNumberMax)
	return models.OutcomeDraw{
		Chosen:  chosen,
		Rolled:  rolled,
		Matched: chosen == rolled,
	}
}

// Target returns selected on a match and the actor otherwise
func (r *OutcomeResolver) Target(draw models.OutcomeDraw, selected, actor *models.Member) *models.Member {
	if draw.Matched {
		return selected
	}
	return actor
}

// Actor resolves the command author from the cache, falling back to the API
func (r *OutcomeResolver) Actor(ctx context.Context, guildID, userID string) (*models.Member, error) {
	if member, ok := r.directory.GetCachedMember(guildID, userID); ok {
		return member, nil
	}

	member, err := r.directory.FetchMember(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrActorNotFound, err)
	}
	return member, nil
}
