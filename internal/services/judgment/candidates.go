package judgment

import (
	"context"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
)

const (
	// DefaultCandidateLimit is how many members a judgment list offers
	DefaultCandidateLimit = 5

	// directoryScanLimit bounds how many directory entries are read per selection
	directoryScanLimit = 100
)

// CandidateSelector picks the first human members of a guild
type CandidateSelector struct {
	directory platform.Directory
}

// NewCandidateSelector creates a selector over directory
func NewCandidateSelector(directory platform.Directory) *CandidateSelector {
	return &CandidateSelector{directory: directory}
}

// Select returns up to limit non-bot members in directory order.
// An empty result is not an error.
func (c *CandidateSelector) Select(ctx context.Context, guildID string, limit int) ([]*models.Member, error) {
	if limit < 1 {
		limit = DefaultCandidateLimit
	}

	members, err := c.directory.ListMembers(ctx, guildID, directoryScanLimit)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Member, 0, limit)
	for _, member := range members {
		if member == nil || member.Bot {
			continue
		}
		candidates = append(candidates, member)
		if len(candidates) == limit {
			break
		}
	}

	return candidates, nil
}
