package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PlatformTestSuite struct {
	suite.Suite
	session  *discordgo.Session
	platform *Platform
	ctx      context.Context
}

func (s *PlatformTestSuite) SetupTest() {
	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	s.session = session
	s.platform = NewPlatform(session)
	s.ctx = context.Background()

	s.Require().NoError(session.State.GuildAdd(&discordgo.Guild{
		ID:   "guild-1",
		Name: "The Guild",
		Channels: []*discordgo.Channel{
			{ID: "voice-1", GuildID: "guild-1", Name: "Lobby", Type: discordgo.ChannelTypeGuildVoice},
		},
		Members: []*discordgo.Member{
			{GuildID: "guild-1", User: &discordgo.User{ID: "user-1", Username: "alice", GlobalName: "Alice"}},
		},
		VoiceStates: []*discordgo.VoiceState{
			{GuildID: "guild-1", UserID: "user-1", ChannelID: "voice-1"},
		},
	}))
}

func TestPlatformTestSuite(t *testing.T) {
	suite.Run(t, new(PlatformTestSuite))
}

func (s *PlatformTestSuite) TestCachedLookups() {
	member, ok := s.platform.GetCachedMember("guild-1", "user-1")
	s.Require().True(ok)
	s.Equal("alice", member.Username)

	_, ok = s.platform.GetCachedMember("guild-1", "missing")
	s.False(ok)

	name, err := s.platform.GuildName(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal("The Guild", name)

	name, err = s.platform.ChannelName(s.ctx, "voice-1")
	s.Require().NoError(err)
	s.Equal("Lobby", name)
}

func (s *PlatformTestSuite) TestVoiceChannel() {
	channelID, err := s.platform.VoiceChannel(s.ctx, "guild-1", "user-1")
	s.Require().NoError(err)
	s.Equal("voice-1", channelID)

	channelID, err = s.platform.VoiceChannel(s.ctx, "guild-1", "user-2")
	s.Require().NoError(err)
	s.Empty(channelID)
}

func TestMapError(t *testing.T) {
	restErr := func(status int) error {
		return &discordgo.RESTError{Response: &http.Response{StatusCode: status}}
	}

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(restErr(http.StatusForbidden)), platform.ErrForbidden)
	assert.ErrorIs(t, mapError(restErr(http.StatusNotFound)), platform.ErrNotFound)

	serverErr := mapError(restErr(http.StatusInternalServerError))
	assert.NotErrorIs(t, serverErr, platform.ErrForbidden)
	assert.NotErrorIs(t, serverErr, platform.ErrNotFound)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapError(plain))
}

func TestToMember(t *testing.T) {
	assert.Nil(t, toMember(nil))
	assert.Nil(t, toMember(&discordgo.Member{}))

	member := toMember(&discordgo.Member{
		Nick: "nick",
		User: &discordgo.User{ID: "1", Username: "bob", Discriminator: "0007", Bot: true},
	})
	require.NotNil(t, member)
	assert.Equal(t, &models.Member{ID: "1", Username: "bob", Discriminator: "0007", Bot: true}, member)
	assert.Equal(t, "bob#0007", member.Tag())
}

func TestToChannelMessage(t *testing.T) {
	assert.Nil(t, toChannelMessage(&discordgo.MessageCreate{Message: &discordgo.Message{Content: "x"}}))

	msg := toChannelMessage(&discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		GuildID:   "g1",
		ChannelID: "c1",
		Content:   "!julgar",
		Author:    &discordgo.User{ID: "u1", Bot: true},
	}})
	assert.Equal(t, &models.ChannelMessage{
		GuildID:     "g1",
		ChannelID:   "c1",
		MessageID:   "m1",
		AuthorID:    "u1",
		Content:     "!julgar",
		AuthorIsBot: true,
	}, msg)
}

func TestToVoiceStateChange(t *testing.T) {
	joined := toVoiceStateChange(&discordgo.VoiceStateUpdate{
		VoiceState: &discordgo.VoiceState{GuildID: "g1", UserID: "u1", ChannelID: "v1"},
	})
	assert.Equal(t, &models.VoiceStateChange{GuildID: "g1", UserID: "u1", AfterChannelID: "v1"}, joined)

	moved := toVoiceStateChange(&discordgo.VoiceStateUpdate{
		VoiceState:   &discordgo.VoiceState{GuildID: "g1", UserID: "u1", ChannelID: "v2"},
		BeforeUpdate: &discordgo.VoiceState{GuildID: "g1", UserID: "u1", ChannelID: "v1"},
	})
	assert.Equal(t, "v1", moved.BeforeChannelID)
	assert.Equal(t, "v2", moved.AfterChannelID)

	assert.Nil(t, toVoiceStateChange(&discordgo.VoiceStateUpdate{}))
}

func TestChannelTypeChecks(t *testing.T) {
	assert.True(t, isVoiceChannel(discordgo.ChannelTypeGuildVoice))
	assert.True(t, isVoiceChannel(discordgo.ChannelTypeGuildStageVoice))
	assert.False(t, isVoiceChannel(discordgo.ChannelTypeGuildText))
	assert.True(t, isTextChannel(discordgo.ChannelTypeGuildText))
	assert.False(t, isTextChannel(discordgo.ChannelTypeGuildVoice))
}
