//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients/acl"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/fuzzy"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
)

// writeConfigs lays out a configs/ directory in a temp dir and makes it the
// working directory.
func writeConfigs(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))

	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", name), []byte(body), 0o600))
	}

	t.Chdir(dir)
}

// TestConfig_ShippedProfiles verifies that the profiles in configs/ load
// and validate.
func TestConfig_ShippedProfiles(t *testing.T) {
	t.Chdir(filepath.Join("..", ".."))

	t.Run("local", func(t *testing.T) {
		cfg, err := config.Load("local")
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, config.DriverMemory, cfg.Database.Driver)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, "pretty", cfg.Log.Format)
	})

	t.Run("prod needs discord secrets", func(t *testing.T) {
		t.Setenv("APP_DATABASE__URL", "postgres://hearsay@db:5432/hearsay")

		cfg, err := config.Load("prod")
		require.NoError(t, err)
		require.Error(t, cfg.Validate())

		t.Setenv("APP_DISCORD__GUILD_ID", "123")
		t.Setenv("APP_DISCORD__BOT_TOKEN", "token")

		cfg, err = config.Load("prod")
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.True(t, cfg.Discord.Enabled)
		assert.Equal(t, fuzzy.EngineBleve, cfg.Search.Engine)
		assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	})
}

// TestConfig_Precedence verifies defaults < base.yaml < profile < env.
func TestConfig_Precedence(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": `
search:
  threshold: 0.3
  weights:
    content: 0.5
database:
  driver: memory
discord:
  cache_ttl: 1m
`,
		"qa.yaml": `
app:
  environment: qa
search:
  weights:
    content: 0.6
`,
	})

	t.Setenv("APP_SEARCH__WEIGHTS__CONTEXT", "0.3")

	cfg, err := config.Load("qa")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "qa", cfg.App.Environment)
	assert.InDelta(t, 0.3, cfg.Search.Threshold, 1e-9)
	assert.InDelta(t, 0.6, cfg.Search.Weights.Content, 1e-9)
	assert.InDelta(t, 0.3, cfg.Search.Weights.Context, 1e-9)
	assert.InDelta(t, config.DefaultSearchWeightSpeakers, cfg.Search.Weights.Speakers, 1e-9)
	assert.Equal(t, time.Minute, cfg.Discord.CacheTTL)
	assert.Equal(t, config.DefaultDiscordBaseURL, cfg.Discord.BaseURL)
}

// TestConfig_DrivesGuildClient verifies that the client settings loaded
// from files reach the Discord client: base url, bot token and retries.
func TestConfig_DrivesGuildClient(t *testing.T) {
	discord := newFakeDiscord(t, "guild-7", "from-env", "alice")

	writeConfigs(t, map[string]string{
		"base.yaml": `
database:
  driver: memory
client:
  timeout: 2s
  retry:
    max_attempts: 1
discord:
  enabled: true
  guild_id: guild-7
`,
	})

	t.Setenv("APP_DISCORD__BASE_URL", discord.server.URL)
	t.Setenv("APP_DISCORD__BOT_TOKEN", "from-env")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	clientCfg := clients.NewConfig(cfg.Discord.Name, cfg.Discord.BaseURL, &cfg.Client)
	clientCfg.AuthFunc = acl.BotAuth(cfg.Discord.BotToken)

	httpClient, err := clients.New(clientCfg)
	require.NoError(t, err)

	guild := acl.NewGuildClient(acl.GuildClientConfig{Client: httpClient, Discord: &cfg.Discord})

	ok, err := guild.IsMember(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guild.IsMember(context.Background(), "mallory")
	require.NoError(t, err)
	assert.False(t, ok)

	discord.down.Store(true)

	_, err = guild.IsMember(context.Background(), "bob")
	require.Error(t, err)
	assert.Equal(t, int32(3), discord.calls.Load(), "max_attempts 1 means no retry")
}

// TestConfig_InvalidProfileFails verifies fail-fast validation of file
// values.
func TestConfig_InvalidProfileFails(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": `
database:
  driver: sqlite
search:
  engine: regex
`,
	})

	cfg, err := config.Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
	assert.Contains(t, err.Error(), "search.engine")
}
