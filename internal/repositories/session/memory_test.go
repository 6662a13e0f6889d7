package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo *memoryRepository
	key  models.SessionKey
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.key = models.SessionKey{ChannelID: "test-channel-id", UserID: "test-user-id"}
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestSecondAcquireFails() {
	ctx := context.Background()

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(1, s.repo.Len())
}

func (s *MemoryRepositoryTestSuite) TestReleaseMakesKeyAvailable() {
	ctx := context.Background()

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key}))
	s.Equal(0, s.repo.Len())

	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *MemoryRepositoryTestSuite) TestReleaseIsIdempotent() {
	ctx := context.Background()

	s.NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key}))
	s.NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key}))
}

func (s *MemoryRepositoryTestSuite) TestKeysAreIndependent() {
	ctx := context.Background()
	other := models.SessionKey{ChannelID: s.key.ChannelID, UserID: "other-user-id"}

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: other})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *MemoryRepositoryTestSuite) TestConcurrentAcquireAdmitsOne() {
	ctx := context.Background()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
			if err == nil && ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins)
}

func (s *MemoryRepositoryTestSuite) TestOnlyTheOwnerReleases() {
	ctx := context.Background()

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key, Owner: "flow-1"})
	s.Require().NoError(err)
	s.Require().True(ok)

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key, Owner: "flow-2"}))
	s.Equal(1, s.repo.Len())

	held, err := s.repo.Refresh(ctx, &RefreshInput{Key: s.key, Owner: "flow-2"})
	s.Require().NoError(err)
	s.False(held)

	held, err = s.repo.Refresh(ctx, &RefreshInput{Key: s.key, Owner: "flow-1"})
	s.Require().NoError(err)
	s.True(held)

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key, Owner: "flow-1"}))
	s.Zero(s.repo.Len())
}
