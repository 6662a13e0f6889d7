package voice

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/voicewatcher/internal/common/clock/mocks"
	"github.com/KirkDiggler/voicewatcher/internal/logging"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	platformMocks "github.com/KirkDiggler/voicewatcher/internal/platform/mocks"
	webhookMocks "github.com/KirkDiggler/voicewatcher/internal/services/webhook/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WatcherTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDirectory  *platformMocks.MockDirectory
	mockDispatcher *webhookMocks.MockDispatcher
	mockClock      *clockMocks.MockClock
	watcher        *Service
	ctx            context.Context

	testTime      time.Time
	testGuildID   string
	testChannelID string
	testMember    *models.Member
}

func (s *WatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDirectory = platformMocks.NewMockDirectory(s.mockCtrl)
	s.mockDispatcher = webhookMocks.NewMockDispatcher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.testGuildID = "10"
	s.testChannelID = "20"
	s.testMember = &models.Member{ID: "30", Username: "alice"}

	var err error
	s.watcher, err = New(&Config{
		MonitoredChannelID: s.testChannelID,
		Directory:          s.mockDirectory,
		Dispatcher:         s.mockDispatcher,
		Clock:              s.mockClock,
		Logger:             logging.Discard(),
	})
	s.Require().NoError(err)
}

func (s *WatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWatcherTestSuite(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}

func (s *WatcherTestSuite) change(before, after string) *models.VoiceStateChange {
	return &models.VoiceStateChange{
		GuildID:         s.testGuildID,
		UserID:          s.testMember.ID,
		BeforeChannelID: before,
		AfterChannelID:  after,
		Member:          s.testMember,
	}
}

func (s *WatcherTestSuite) expectNames() {
	s.mockDirectory.EXPECT().GuildName(gomock.Any(), s.testGuildID).Return("The Guild", nil)
	s.mockDirectory.EXPECT().ChannelName(gomock.Any(), s.testChannelID).Return("Lobby", nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
}

func (s *WatcherTestSuite) TestJoinFromNowhereFires() {
	s.expectNames()
	s.mockDispatcher.EXPECT().Send(gomock.Any(), &models.WebhookEvent{
		Event:      models.EventUserJoinedMonitoredVoiceChannel,
		OccurredAt: "2025-04-05T10:00:00Z",
		Guild:      models.WebhookRef{ID: s.testGuildID, Name: "The Guild"},
		Channel:    models.WebhookRef{ID: s.testChannelID, Name: "Lobby"},
		User:       models.WebhookUserRef{ID: "30", Username: "alice", Tag: "alice"},
	}).Return(true)

	s.True(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change("", s.testChannelID)))
	s.watcher.Wait()
}

func (s *WatcherTestSuite) TestMoveFromOtherChannelFires() {
	s.expectNames()
	s.mockDispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true)

	s.True(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change("other", s.testChannelID)))
	s.watcher.Wait()
}

func (s *WatcherTestSuite) TestNonEntryTransitionsAreIgnored() {
	s.False(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change(s.testChannelID, s.testChannelID)))
	s.False(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change(s.testChannelID, "")))
	s.False(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change(s.testChannelID, "other")))
	s.False(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change("", "other")))
	s.False(s.watcher.HandleVoiceStateUpdate(s.ctx, nil))
}

func (s *WatcherTestSuite) TestFailedDeliveryIsOnlyLogged() {
	s.expectNames()
	s.mockDispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).Return(false)

	s.True(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change("", s.testChannelID)))
	s.watcher.Wait()
}

func (s *WatcherTestSuite) TestMemberResolvedFromDirectory() {
	change := s.change("", s.testChannelID)
	change.Member = nil

	s.expectNames()
	s.mockDirectory.EXPECT().GetCachedMember(s.testGuildID, "30").Return(nil, false)
	s.mockDirectory.EXPECT().FetchMember(gomock.Any(), s.testGuildID, "30").
		Return(&models.Member{ID: "30", Username: "legacy", Discriminator: "0420"}, nil)
	s.mockDispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.WebhookEvent) bool {
			s.Equal("legacy", event.User.Username)
			s.Equal("legacy#0420", event.User.Tag)
			return true
		})

	s.True(s.watcher.HandleVoiceStateUpdate(s.ctx, change))
	s.watcher.Wait()
}

func (s *WatcherTestSuite) TestNameLookupFailureStillSends() {
	s.mockDirectory.EXPECT().GuildName(gomock.Any(), s.testGuildID).Return("", errors.New("boom"))
	s.mockDirectory.EXPECT().ChannelName(gomock.Any(), s.testChannelID).Return("", errors.New("boom"))
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockDispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.WebhookEvent) bool {
			s.Equal(s.testGuildID, event.Guild.ID)
			s.Empty(event.Guild.Name)
			return true
		})

	s.True(s.watcher.HandleVoiceStateUpdate(s.ctx, s.change("", s.testChannelID)))
	s.watcher.Wait()
}

func (s *WatcherTestSuite) TestSendOutlivesCallerContext() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.expectNames()
	s.mockDispatcher.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(sendCtx context.Context, _ *models.WebhookEvent) bool {
			s.NoError(sendCtx.Err())
			return true
		})

	s.True(s.watcher.HandleVoiceStateUpdate(ctx, s.change("", s.testChannelID)))
	cancel()
	s.watcher.Wait()
}
