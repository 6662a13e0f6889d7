package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigError is a custom error type for configuration problems
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrMissingValue ConfigError = "missing required environment variable"
	ErrInvalidValue ConfigError = "invalid environment variable"
)

// Environment keys
const (
	KeyDiscordBotToken        = "DISCORD_BOT_TOKEN"
	KeyVoiceChannelID         = "VOICE_CHANNEL_ID"
	KeyJulgarChannelID        = "JULGAR_CHANNEL_ID"
	KeyAdmVoiceChannelID      = "ADM_VOICE_CHANNEL_ID"
	KeyWebhookURL             = "WEBHOOK_URL"
	KeyWebhookSecret          = "WEBHOOK_SECRET"
	KeyWebhookVerifySSL       = "WEBHOOK_VERIFY_SSL"
	KeyWebhookFollowRedirects = "WEBHOOK_FOLLOW_REDIRECTS"
	KeyWebhookTimeout         = "WEBHOOK_TIMEOUT"
	KeyWebhookMaxRetries      = "WEBHOOK_MAX_RETRIES"
	KeyPromptTimeout          = "PROMPT_TIMEOUT"
	KeyRedisAddr              = "REDIS_ADDR"
	KeyRedisPassword          = "REDIS_PASSWORD"
	KeySessionTTL             = "SESSION_TTL"
	KeyOpsAddr                = "OPS_ADDR"
	KeyLogLevel               = "LOG_LEVEL"
)

// Config holds everything the bot needs at startup
type Config struct {
	Discord  DiscordConfig
	Judgment JudgmentConfig
	Webhook  WebhookConfig
	Redis    RedisConfig
	Ops      OpsConfig
	LogLevel string
}

// DiscordConfig holds the gateway credential and the monitored channels
type DiscordConfig struct {
	Token string

	// VoiceChannelID is the voice channel whose joins trigger the webhook
	VoiceChannelID string

	// JulgarChannelID is the text channel where !julgar is accepted
	JulgarChannelID string

	// AdmVoiceChannelID is the only channel the disconnect action may act on
	AdmVoiceChannelID string
}

// JudgmentConfig controls the interactive flow
type JudgmentConfig struct {
	// PromptTimeout is how long each prompt waits for a reply
	PromptTimeout time.Duration
}

// WebhookConfig controls outbound delivery
type WebhookConfig struct {
	URL             string
	Secret          string
	VerifyTLS       bool
	FollowRedirects bool
	Timeout         time.Duration
	MaxRetries      int
}

// RedisConfig selects the Redis backends; an empty Addr keeps everything in memory
type RedisConfig struct {
	Addr       string
	Password   string
	SessionTTL time.Duration
}

// OpsConfig configures the operations HTTP listener; an empty Addr disables it
type OpsConfig struct {
	Addr string
}

// Enabled reports whether a Redis address was configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWebhookVerifySSL, "true")
	v.SetDefault(KeyWebhookFollowRedirects, "true")
	v.SetDefault(KeyWebhookTimeout, "10s")
	v.SetDefault(KeyWebhookMaxRetries, 3)
	v.SetDefault(KeyPromptTimeout, "60s")
	v.SetDefault(KeySessionTTL, "1h")
	v.SetDefault(KeyLogLevel, "info")
}

// LoadEnvFile loads a .env file into the process environment.
// A missing default file is not an error; a missing explicit file is.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// New returns a viper instance reading from the environment with defaults applied
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return v
}

// Load reads and validates the configuration from v
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, errors.New("viper instance cannot be nil")
	}

	token, err := required(v, KeyDiscordBotToken)
	if err != nil {
		return nil, err
	}

	voiceChannelID, err := requiredID(v, KeyVoiceChannelID)
	if err != nil {
		return nil, err
	}

	julgarChannelID, err := requiredID(v, KeyJulgarChannelID)
	if err != nil {
		return nil, err
	}

	admChannelID := strings.TrimSpace(v.GetString(KeyAdmVoiceChannelID))
	if admChannelID == "" {
		admChannelID = voiceChannelID
	} else if !isSnowflake(admChannelID) {
		return nil, fmt.Errorf("%w: %s must be a valid integer", ErrInvalidValue, KeyAdmVoiceChannelID)
	}

	webhookURL, err := required(v, KeyWebhookURL)
	if err != nil {
		return nil, err
	}

	webhookTimeout, err := duration(v, KeyWebhookTimeout)
	if err != nil {
		return nil, err
	}

	maxRetries, err := strconv.Atoi(strings.TrimSpace(v.GetString(KeyWebhookMaxRetries)))
	if err != nil || maxRetries < 1 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidValue, KeyWebhookMaxRetries)
	}

	promptTimeout, err := duration(v, KeyPromptTimeout)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := duration(v, KeySessionTTL)
	if err != nil {
		return nil, err
	}

	return &Config{
		Discord: DiscordConfig{
			Token:             token,
			VoiceChannelID:    voiceChannelID,
			JulgarChannelID:   julgarChannelID,
			AdmVoiceChannelID: admChannelID,
		},
		Judgment: JudgmentConfig{
			PromptTimeout: promptTimeout,
		},
		Webhook: WebhookConfig{
			URL:             webhookURL,
			Secret:          strings.TrimSpace(v.GetString(KeyWebhookSecret)),
			VerifyTLS:       flag(v.GetString(KeyWebhookVerifySSL)),
			FollowRedirects: flag(v.GetString(KeyWebhookFollowRedirects)),
			Timeout:         webhookTimeout,
			MaxRetries:      maxRetries,
		},
		Redis: RedisConfig{
			Addr:       strings.TrimSpace(v.GetString(KeyRedisAddr)),
			Password:   v.GetString(KeyRedisPassword),
			SessionTTL: sessionTTL,
		},
		Ops: OpsConfig{
			Addr: strings.TrimSpace(v.GetString(KeyOpsAddr)),
		},
		LogLevel: v.GetString(KeyLogLevel),
	}, nil
}

func required(v *viper.Viper, key string) (string, error) {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingValue, key)
	}
	return value, nil
}

func requiredID(v *viper.Viper, key string) (string, error) {
	value, err := required(v, key)
	if err != nil {
		return "", err
	}
	if !isSnowflake(value) {
		return "", fmt.Errorf("%w: %s must be a valid integer", ErrInvalidValue, key)
	}
	return value, nil
}

func isSnowflake(value string) bool {
	_, err := strconv.ParseUint(value, 10, 64)
	return err == nil
}

// duration accepts Go durations ("10s") and bare seconds ("10", "2.5")
func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidValue, key)
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive duration", ErrInvalidValue, key)
	}
	return d, nil
}

// flag accepts the same truthy spellings the bot always has
func flag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
