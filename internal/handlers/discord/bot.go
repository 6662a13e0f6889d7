package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// Intents requested from the gateway
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

// Bot represents the Discord bot instance
type Bot struct {
	session  *discordgo.Session
	platform *Platform
	config   *Config
	logger   *slog.Logger

	// ctx scopes event handling; it is cancelled by Stop
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// AdminVoiceChannelID is validated on ready alongside the handler channels
	AdminVoiceChannelID string

	Logger *slog.Logger
}

// New creates a new Discord bot. Handlers are attached with Attach before Start.
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = Intents

	// Events are handled in gateway order so replies reach a flow in the order they were sent.
	session.SyncEvents = true

	ctx, cancel := context.WithCancel(context.Background())

	return &Bot{
		session:  session,
		platform: NewPlatform(session),
		config:   cfg,
		logger:   cfg.Logger.With("component", "discord"),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Platform returns the platform ports backed by this bot's session
func (b *Bot) Platform() *Platform {
	return b.platform
}

// Attach registers the gateway handlers
func (b *Bot) Attach(commands CommandHandler, replies ReplyRouter, voice VoiceHandler) {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.handleReady(r, commands, voice)
	})
	b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessageCreate(m, commands, replies)
	})
	b.session.AddHandler(func(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		b.handleVoiceStateUpdate(v, voice)
	})
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop cancels running flows and closes the gateway connection
func (b *Bot) Stop() error {
	b.cancel()
	return b.session.Close()
}

func (b *Bot) handleMessageCreate(m *discordgo.MessageCreate, commands CommandHandler, replies ReplyRouter) {
	msg := toChannelMessage(m)
	if msg == nil {
		return
	}

	// A reply to an open prompt is also offered to the command handler, so a
	// repeated !julgar mid-flow still gets the "already in progress" answer.
	if !msg.AuthorIsBot && replies != nil {
		replies.Deliver(msg)
	}
	if commands != nil {
		commands.HandleMessage(b.ctx, msg)
	}
}

func (b *Bot) handleVoiceStateUpdate(v *discordgo.VoiceStateUpdate, voice VoiceHandler) {
	change := toVoiceStateChange(v)
	if change == nil || voice == nil {
		return
	}

	b.logger.Debug("voice state update received",
		"user_id", change.UserID,
		"before_channel_id", change.BeforeChannelID,
		"after_channel_id", change.AfterChannelID)

	voice.HandleVoiceStateUpdate(b.ctx, change)
}

func (b *Bot) handleReady(r *discordgo.Ready, commands CommandHandler, voice VoiceHandler) {
	if r.User != nil {
		b.logger.Info("discord bot connected to gateway",
			"bot_user", fmt.Sprintf("%s (%s)", r.User.Username, r.User.ID))
	}

	if voice != nil {
		b.checkChannel("monitored", voice.MonitoredChannelID(), isVoiceChannel)
	}
	if commands != nil {
		b.checkChannel("julgar", commands.ChannelID(), isTextChannel)
	}
	if b.config.AdminVoiceChannelID != "" {
		b.checkChannel("adm", b.config.AdminVoiceChannelID, isVoiceChannel)
	}
}

// checkChannel logs whether a configured channel exists and has the expected type
func (b *Bot) checkChannel(role, channelID string, valid func(discordgo.ChannelType) bool) {
	logger := b.logger.With("role", role, "channel_id", channelID)

	ch, err := b.platform.channel(b.ctx, channelID)
	switch {
	case errors.Is(err, platform.ErrNotFound):
		logger.Error("configured channel not found")
		return
	case errors.Is(err, platform.ErrForbidden):
		logger.Error("no permission to access configured channel")
		return
	case err != nil:
		logger.Error("failed to resolve configured channel", "error", err)
		return
	}

	if !valid(ch.Type) {
		logger.Error("configured channel has the wrong type", "channel_type", int(ch.Type))
		return
	}

	logger.Info("configured channel ready", "channel_name", ch.Name, "guild_id", ch.GuildID)
}

func isVoiceChannel(t discordgo.ChannelType) bool {
	return t == discordgo.ChannelTypeGuildVoice || t == discordgo.ChannelTypeGuildStageVoice
}

func isTextChannel(t discordgo.ChannelType) bool {
	return t == discordgo.ChannelTypeGuildText
}
