package deferred

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() Repository
	cleanup func()
	repo    Repository
	testNow time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() Repository { return NewMemory() },
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() Repository {
		mr, err := miniredis.Run()
		s.Require().NoError(err)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		s.cleanup = func() {
			client.Close()
			mr.Close()
		}

		repo, err := NewRedis(&Config{RedisClient: client})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) action(id string, dueIn time.Duration) *models.DeferredAction {
	return &models.DeferredAction{
		ID:        id,
		Kind:      models.DeferredKindUnmute,
		GuildID:   "test-guild-id",
		UserID:    "user-" + id,
		Reason:    "Fim do mute temporario do !julgar",
		DueAt:     s.testNow.Add(dueIn),
		CreatedAt: s.testNow,
	}
}

func (s *RepositoryTestSuite) TestSaveRejectsInvalidInput() {
	ctx := context.Background()

	s.Error(s.repo.SaveAction(ctx, nil))
	s.Error(s.repo.SaveAction(ctx, &SaveActionInput{}))
	s.Error(s.repo.SaveAction(ctx, &SaveActionInput{Action: &models.DeferredAction{}}))
}

func (s *RepositoryTestSuite) TestClaimDueReturnsOnlyDueActions() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("late", 20*time.Minute)}))
	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("soon", 10*time.Minute)}))
	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("now", 0)}))

	claimed, err := s.repo.ClaimDue(ctx, &ClaimDueInput{Now: s.testNow})
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Equal("now", claimed[0].ID)

	claimed, err = s.repo.ClaimDue(ctx, &ClaimDueInput{Now: s.testNow.Add(15 * time.Minute)})
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Equal("soon", claimed[0].ID)
	s.Equal("user-soon", claimed[0].UserID)
	s.Equal(models.DeferredKindUnmute, claimed[0].Kind)
	s.True(claimed[0].DueAt.Equal(s.testNow.Add(10 * time.Minute)))

	pending, err := s.repo.ListPending(ctx, &ListPendingInput{})
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal("late", pending[0].ID)
}

func (s *RepositoryTestSuite) TestClaimedActionsAreNotReturnedAgain() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("a", 0)}))

	claimed, err := s.repo.ClaimDue(ctx, &ClaimDueInput{Now: s.testNow})
	s.Require().NoError(err)
	s.Len(claimed, 1)

	claimed, err = s.repo.ClaimDue(ctx, &ClaimDueInput{Now: s.testNow.Add(time.Hour)})
	s.Require().NoError(err)
	s.Empty(claimed)
}

func (s *RepositoryTestSuite) TestConcurrentClaimsNeverDuplicate() {
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action(id, 0)}))
	}

	var mu sync.Mutex
	seen := make(map[string]int)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := s.repo.ClaimDue(ctx, &ClaimDueInput{Now: s.testNow})
			if err != nil {
				return
			}
			mu.Lock()
			for _, a := range claimed {
				seen[a.ID]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Len(seen, 5)
	for id, n := range seen {
		s.Equalf(1, n, "action %s claimed %d times", id, n)
	}
}

func (s *RepositoryTestSuite) TestListPendingIsOrderedByDueTime() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("third", 30*time.Minute)}))
	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("first", 10*time.Minute)}))
	s.Require().NoError(s.repo.SaveAction(ctx, &SaveActionInput{Action: s.action("second", 20*time.Minute)}))

	pending, err := s.repo.ListPending(ctx, &ListPendingInput{})
	s.Require().NoError(err)
	s.Require().Len(pending, 3)
	s.Equal("first", pending[0].ID)
	s.Equal("second", pending[1].ID)
	s.Equal("third", pending[2].ID)
}
