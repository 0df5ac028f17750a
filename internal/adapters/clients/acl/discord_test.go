package acl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/metrics"
)

const (
	testGuild = "guild-1"
	testToken = "secret-token"
)

type guildFixture struct {
	client *GuildClient
	calls  *atomic.Int32
	reg    *prometheus.Registry
}

func setupGuildClient(t *testing.T, handler http.HandlerFunc) *guildFixture {
	t.Helper()

	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	discord := &config.DiscordConfig{
		Enabled:  true,
		Name:     "discord",
		BaseURL:  server.URL,
		GuildID:  testGuild,
		BotToken: testToken,
		CacheTTL: time.Minute,
	}

	cfg := clients.NewConfig(discord.Name, discord.BaseURL, &config.ClientConfig{
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	})
	cfg.AuthFunc = BotAuth(discord.BotToken)

	httpClient, err := clients.New(cfg)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()

	return &guildFixture{
		client: NewGuildClient(GuildClientConfig{
			Client:  httpClient,
			Discord: discord,
			Metrics: metrics.New(reg),
		}),
		calls: calls,
		reg:   reg,
	}
}

func memberJSON(w http.ResponseWriter, id string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"user":{"id":"` + id + `","username":"alice","global_name":"Alice"},"nick":"","roles":["r1"]}`))
}

func discordError(w http.ResponseWriter, status, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"code":` + strconv.Itoa(code) + `,"message":"` + message + `"}`))
}

func TestNewGuildClient_Panics(t *testing.T) {
	assert.Panics(t, func() { NewGuildClient(GuildClientConfig{Discord: &config.DiscordConfig{}}) })
	assert.Panics(t, func() { NewGuildClient(GuildClientConfig{Client: &clients.Client{}}) })
}

func TestGuildClient_IsMember(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantMember bool
		wantErr    error
	}{
		{
			name:       "member",
			handler:    func(w http.ResponseWriter, r *http.Request) { memberJSON(w, "u1") },
			wantMember: true,
		},
		{
			name: "unknown member",
			handler: func(w http.ResponseWriter, r *http.Request) {
				discordError(w, http.StatusNotFound, CodeUnknownMember, "Unknown Member")
			},
		},
		{
			name: "unknown guild",
			handler: func(w http.ResponseWriter, r *http.Request) {
				discordError(w, http.StatusNotFound, CodeUnknownGuild, "Unknown Guild")
			},
			wantErr: domain.ErrUnavailable,
		},
		{
			name: "bad token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				discordError(w, http.StatusUnauthorized, 0, "401: Unauthorized")
			},
			wantErr: domain.ErrUnavailable,
		},
		{
			name: "missing access",
			handler: func(w http.ResponseWriter, r *http.Request) {
				discordError(w, http.StatusForbidden, CodeMissingAccess, "Missing Access")
			},
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "garbled body",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("{not json")) },
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "different user returned",
			handler: func(w http.ResponseWriter, r *http.Request) { memberJSON(w, "someone-else") },
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupGuildClient(t, tt.handler)

			member, err := f.client.IsMember(context.Background(), "u1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, member)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMember, member)
		})
	}
}

func TestGuildClient_RequestShape(t *testing.T) {
	var (
		path string
		auth string
	)

	f := setupGuildClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		memberJSON(w, "u 1")
	})

	ok, err := f.client.IsMember(context.Background(), "u 1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/guilds/"+testGuild+"/members/u 1", path)
	assert.Equal(t, "Bot "+testToken, auth)
}

func TestGuildClient_EmptyUser(t *testing.T) {
	f := setupGuildClient(t, func(w http.ResponseWriter, r *http.Request) { memberJSON(w, "") })

	_, err := f.client.IsMember(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, f.calls.Load())
}

func TestGuildClient_Cache(t *testing.T) {
	f := setupGuildClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/guilds/"+testGuild+"/members/outsider" {
			discordError(w, http.StatusNotFound, CodeUnknownMember, "Unknown Member")

			return
		}

		memberJSON(w, "u1")
	})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.client.now = func() time.Time { return now }

	ctx := context.Background()

	for range 3 {
		ok, err := f.client.IsMember(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, int32(1), f.calls.Load())

	// Negative answers are cached too.
	for range 2 {
		ok, err := f.client.IsMember(ctx, "outsider")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, int32(2), f.calls.Load())

	now = now.Add(time.Minute)

	_, err := f.client.IsMember(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int32(3), f.calls.Load())

	// allowed/denied crossed with cached true/false.
	count, err := testutil.GatherAndCount(f.reg, "hearsay_guild_membership_checks_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestGuildClient_FailuresNotCached(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)

	f := setupGuildClient(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		memberJSON(w, "u1")
	})

	_, err := f.client.IsMember(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrUnavailable)

	fail.Store(false)

	ok, err := f.client.IsMember(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestGuildClient_ConcurrentLookupsShareRequest(t *testing.T) {
	release := make(chan struct{})

	f := setupGuildClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		memberJSON(w, "u1")
	})

	var wg sync.WaitGroup

	results := make(chan bool, 8)
	for range 8 {
		wg.Go(func() {
			ok, err := f.client.IsMember(context.Background(), "u1")
			assert.NoError(t, err)
			results <- ok
		})
	}

	// Let the callers pile up behind the first request.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for ok := range results {
		assert.True(t, ok)
	}

	assert.LessOrEqual(t, f.calls.Load(), int32(8))
	assert.GreaterOrEqual(t, f.calls.Load(), int32(1))
}

func TestGuildClient_HealthCheck(t *testing.T) {
	f := setupGuildClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.Equal(t, "discord", f.client.Name())
	require.NoError(t, f.client.Check(context.Background()))

	for i := range 2 {
		_, err := f.client.IsMember(context.Background(), "u"+strconv.Itoa(i+1))
		require.Error(t, err)
	}

	require.ErrorIs(t, f.client.Check(context.Background()), domain.ErrUnavailable)

	_, err := f.client.IsMember(context.Background(), "u9")
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestTranslateMember(t *testing.T) {
	dto := &guildMemberResponse{Nick: "Ali"}
	_, err := translateMember(dto)
	require.Error(t, err)

	dto.User = &struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		GlobalName string `json:"global_name"`
	}{ID: "u1", Username: "alice", GlobalName: "Alice"}

	user, err := translateMember(dto)
	require.NoError(t, err)
	assert.Equal(t, "Ali", user.Name)

	dto.Nick = ""
	user, err = translateMember(dto)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	dto.User.GlobalName = ""
	user, err = translateMember(dto)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, domain.RoleUser, user.Role)
}
