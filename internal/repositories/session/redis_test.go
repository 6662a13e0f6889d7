package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	key    models.SessionKey
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.key = models.SessionKey{ChannelID: "test-channel-id", UserID: "test-user-id"}
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestAcquireReleaseCycle() {
	ctx := context.Background()

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key}))
	s.False(s.mr.Exists(sessionKeyPrefix + s.key.String()))

	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisRepositoryTestSuite) TestAcquireSetsTTL() {
	ctx := context.Background()

	_, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)

	s.Equal(time.Minute, s.mr.TTL(sessionKeyPrefix+s.key.String()))

	// an expired lock frees the key
	s.mr.FastForward(2 * time.Minute)
	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisRepositoryTestSuite) TestConcurrentAcquireAdmitsOne() {
	ctx := context.Background()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
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

func (s *RedisRepositoryTestSuite) TestAcquireFailsWhenRedisIsDown() {
	s.mr.Close()

	_, err := s.repo.TryAcquire(context.Background(), &TryAcquireInput{Key: s.key})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestRefreshRestartsTTL() {
	ctx := context.Background()
	redisKey := sessionKeyPrefix + s.key.String()

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key, Owner: "flow-1"})
	s.Require().NoError(err)
	s.Require().True(ok)

	s.mr.FastForward(50 * time.Second)
	held, err := s.repo.Refresh(ctx, &RefreshInput{Key: s.key, Owner: "flow-1"})
	s.Require().NoError(err)
	s.True(held)
	s.Equal(time.Minute, s.mr.TTL(redisKey))

	// still held after the original lease would have ended
	s.mr.FastForward(50 * time.Second)
	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key, Owner: "flow-2"})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisRepositoryTestSuite) TestExpiredOwnerCannotReleaseNewLock() {
	ctx := context.Background()
	redisKey := sessionKeyPrefix + s.key.String()

	ok, err := s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key, Owner: "flow-1"})
	s.Require().NoError(err)
	s.Require().True(ok)

	s.mr.FastForward(2 * time.Minute)
	ok, err = s.repo.TryAcquire(ctx, &TryAcquireInput{Key: s.key, Owner: "flow-2"})
	s.Require().NoError(err)
	s.Require().True(ok)

	held, err := s.repo.Refresh(ctx, &RefreshInput{Key: s.key, Owner: "flow-1"})
	s.Require().NoError(err)
	s.False(held)

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key, Owner: "flow-1"}))
	s.True(s.mr.Exists(redisKey))

	s.Require().NoError(s.repo.Release(ctx, &ReleaseInput{Key: s.key, Owner: "flow-2"}))
	s.False(s.mr.Exists(redisKey))
}
