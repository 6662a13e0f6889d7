package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/common/uuid"
	"github.com/KirkDiggler/voicewatcher/internal/config"
	"github.com/KirkDiggler/voicewatcher/internal/dice"
	"github.com/KirkDiggler/voicewatcher/internal/handlers/discord"
	"github.com/KirkDiggler/voicewatcher/internal/handlers/ops"
	"github.com/KirkDiggler/voicewatcher/internal/logging"
	"github.com/KirkDiggler/voicewatcher/internal/repositories/deferred"
	"github.com/KirkDiggler/voicewatcher/internal/repositories/session"
	"github.com/KirkDiggler/voicewatcher/internal/services/judgment"
	"github.com/KirkDiggler/voicewatcher/internal/services/moderation"
	"github.com/KirkDiggler/voicewatcher/internal/services/prompt"
	"github.com/KirkDiggler/voicewatcher/internal/services/scheduler"
	"github.com/KirkDiggler/voicewatcher/internal/services/voice"
	"github.com/KirkDiggler/voicewatcher/internal/services/webhook"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "voicewatcher",
	Short: "Discord bot for voice join webhooks and the !julgar game",
	Long: `voicewatcher connects to the Discord gateway and does two things:
posts a webhook event whenever someone joins the monitored voice channel,
and runs the interactive !julgar judgment game in the configured text channel.`,
	SilenceUsage: true,
	RunE:         runBot,
}

func init() {
	rootCmd.Flags().String("env-file", "", "path to a .env file (defaults to ./.env when present)")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	v := config.New()
	if err := v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("failed to bind log level flag: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, deferredRepo, closeStore, err := newRepositories(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	bot, err := discord.New(&discord.Config{
		Token:               cfg.Discord.Token,
		AdminVoiceChannelID: cfg.Discord.AdmVoiceChannelID,
		Logger:              logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}
	platform := bot.Platform()

	systemClock := &clock.DefaultClock{}
	ids := uuid.New()

	deferredSvc, err := scheduler.New(&scheduler.Config{
		Repository: deferredRepo,
		Directory:  platform,
		Moderator:  platform,
		Clock:      systemClock,
		UUID:       ids,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	dispatcher, err := webhook.New(&webhook.Config{
		URL:                cfg.Webhook.URL,
		Secret:             cfg.Webhook.Secret,
		InsecureSkipVerify: !cfg.Webhook.VerifyTLS,
		DisableRedirects:   !cfg.Webhook.FollowRedirects,
		Timeout:            cfg.Webhook.Timeout,
		Policy:             webhook.DefaultPolicy(cfg.Webhook.MaxRetries),
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create webhook dispatcher: %w", err)
	}

	prompter, err := prompt.New(&prompt.Config{
		Messenger: platform,
		Clock:     systemClock,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create prompter: %w", err)
	}

	executor, err := moderation.New(&moderation.Config{
		Directory:           platform,
		Moderator:           platform,
		Scheduler:           deferredSvc,
		Clock:               systemClock,
		Logger:              logger,
		AdminVoiceChannelID: cfg.Discord.AdmVoiceChannelID,
	})
	if err != nil {
		return fmt.Errorf("failed to create moderation executor: %w", err)
	}

	judge, err := judgment.New(&judgment.Config{
		JudgmentChannelID: cfg.Discord.JulgarChannelID,
		PromptTimeout:     cfg.Judgment.PromptTimeout,
		Messenger:         platform,
		Directory:         platform,
		Sessions:          sessions,
		Prompter:          prompter,
		Executor:          executor,
		Roller:            dice.New(&dice.Config{}),
		UUID:              ids,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create judgment service: %w", err)
	}

	watcher, err := voice.New(&voice.Config{
		MonitoredChannelID: cfg.Discord.VoiceChannelID,
		Directory:          platform,
		Dispatcher:         dispatcher,
		Clock:              systemClock,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create voice watcher: %w", err)
	}

	bot.Attach(judge, prompter, watcher)

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if err := deferredSvc.Run(ctx); err != nil {
			logger.Error("scheduler stopped with error", "error", err)
		}
	}()

	var opsServer *http.Server
	if cfg.Ops.Addr != "" {
		opsServer = &http.Server{
			Addr:              cfg.Ops.Addr,
			Handler:           ops.NewRouter(ops.New(deferredSvc, dispatcher, logger)),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("ops server listening", "addr", cfg.Ops.Addr)
			if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("ops server failed", "error", err)
			}
		}()
	}

	if err := bot.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if err := bot.Stop(); err != nil {
		logger.Warn("error stopping bot", "error", err)
	}
	judge.Wait()
	watcher.Wait()
	<-schedulerDone

	if opsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("error stopping ops server", "error", err)
		}
	}

	logger.Info("bot has been shut down")
	return nil
}

// newRepositories picks Redis backends when REDIS_ADDR is set and in-memory ones otherwise
func newRepositories(cfg *config.Config) (session.Repository, deferred.Repository, func(), error) {
	if !cfg.Redis.Enabled() {
		return session.NewMemory(), deferred.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	closeClient := func() {
		_ = redisClient.Close()
	}

	sessions, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
		TTL:         cfg.Redis.SessionTTL,
	})
	if err != nil {
		closeClient()
		return nil, nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	deferredRepo, err := deferred.NewRedis(&deferred.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		closeClient()
		return nil, nil, nil, fmt.Errorf("failed to create deferred repository: %w", err)
	}

	return sessions, deferredRepo, closeClient, nil
}
