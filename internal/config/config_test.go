package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	v *viper.Viper
}

func (s *ConfigTestSuite) SetupTest() {
	s.v = viper.New()
	SetDefaults(s.v)
	s.v.Set(KeyDiscordBotToken, "test-token")
	s.v.Set(KeyVoiceChannelID, "111")
	s.v.Set(KeyJulgarChannelID, "222")
	s.v.Set(KeyWebhookURL, "https://example.test/hook")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load(s.v)
	s.Require().NoError(err)

	s.Equal("test-token", cfg.Discord.Token)
	s.Equal("111", cfg.Discord.VoiceChannelID)
	s.Equal("222", cfg.Discord.JulgarChannelID)
	s.Equal("111", cfg.Discord.AdmVoiceChannelID)
	s.True(cfg.Webhook.VerifyTLS)
	s.True(cfg.Webhook.FollowRedirects)
	s.Equal(10*time.Second, cfg.Webhook.Timeout)
	s.Equal(3, cfg.Webhook.MaxRetries)
	s.Equal(60*time.Second, cfg.Judgment.PromptTimeout)
	s.Equal(time.Hour, cfg.Redis.SessionTTL)
	s.False(cfg.Redis.Enabled())
	s.Empty(cfg.Ops.Addr)
	s.Equal("info", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestMissingRequiredValue() {
	s.v.Set(KeyWebhookURL, "  ")

	_, err := Load(s.v)
	s.Require().Error(err)
	s.ErrorIs(err, ErrMissingValue)
	s.Contains(err.Error(), KeyWebhookURL)
}

func (s *ConfigTestSuite) TestChannelIDsMustBeIntegers() {
	s.v.Set(KeyJulgarChannelID, "general")

	_, err := Load(s.v)
	s.ErrorIs(err, ErrInvalidValue)

	s.v.Set(KeyJulgarChannelID, "222")
	s.v.Set(KeyAdmVoiceChannelID, "adm")
	_, err = Load(s.v)
	s.ErrorIs(err, ErrInvalidValue)
}

func (s *ConfigTestSuite) TestExplicitAdmChannel() {
	s.v.Set(KeyAdmVoiceChannelID, "333")

	cfg, err := Load(s.v)
	s.Require().NoError(err)
	s.Equal("333", cfg.Discord.AdmVoiceChannelID)
}

func (s *ConfigTestSuite) TestFlagsAndDurations() {
	s.v.Set(KeyWebhookVerifySSL, "no")
	s.v.Set(KeyWebhookFollowRedirects, "Y")
	s.v.Set(KeyWebhookTimeout, "2.5")
	s.v.Set(KeyPromptTimeout, "90s")
	s.v.Set(KeyWebhookMaxRetries, "5")

	cfg, err := Load(s.v)
	s.Require().NoError(err)
	s.False(cfg.Webhook.VerifyTLS)
	s.True(cfg.Webhook.FollowRedirects)
	s.Equal(2500*time.Millisecond, cfg.Webhook.Timeout)
	s.Equal(90*time.Second, cfg.Judgment.PromptTimeout)
	s.Equal(5, cfg.Webhook.MaxRetries)
}

func (s *ConfigTestSuite) TestInvalidRetryCount() {
	s.v.Set(KeyWebhookMaxRetries, "0")

	_, err := Load(s.v)
	s.ErrorIs(err, ErrInvalidValue)
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv(KeyDiscordBotToken, "env-token")
	s.T().Setenv(KeyVoiceChannelID, "444")
	s.T().Setenv(KeyJulgarChannelID, "555")
	s.T().Setenv(KeyWebhookURL, "https://env.test/hook")
	s.T().Setenv(KeyRedisAddr, "localhost:6379")

	cfg, err := Load(New())
	s.Require().NoError(err)
	s.Equal("env-token", cfg.Discord.Token)
	s.Equal("444", cfg.Discord.AdmVoiceChannelID)
	s.True(cfg.Redis.Enabled())
}

func (s *ConfigTestSuite) TestLoadEnvFile() {
	path := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("VOICEWATCHER_TEST_KEY=from-file\n"), 0o600))
	s.T().Cleanup(func() { os.Unsetenv("VOICEWATCHER_TEST_KEY") })

	s.Require().NoError(LoadEnvFile(path))
	s.Equal("from-file", os.Getenv("VOICEWATCHER_TEST_KEY"))

	s.Error(LoadEnvFile(filepath.Join(s.T().TempDir(), "missing.env")))
}
