package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
	"github.com/hearsayhub/hearsay-hub/internal/platform/metrics"
)

const defaultGuildCacheTTL = 5 * time.Minute

// GuildClientConfig contains the dependencies of a GuildClient.
type GuildClientConfig struct {
	// Client must have its BaseURL pointing at the Discord API and an
	// AuthFunc that adds the bot token, see BotAuth.
	Client  *clients.Client
	Discord *config.DiscordConfig
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// GuildClient answers guild membership questions against the Discord API.
// Answers are cached per user for Discord.CacheTTL; concurrent lookups for
// the same user share one request. Failures are never cached.
type GuildClient struct {
	BaseAdapter

	guildID string
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]cachedMembership
}

type cachedMembership struct {
	member  bool
	expires time.Time
}

// guildMemberResponse is the subset of Discord's guild member object the
// adapter reads.
type guildMemberResponse struct {
	User *struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		GlobalName string `json:"global_name"`
	} `json:"user"`
	Nick  string   `json:"nick"`
	Roles []string `json:"roles"`
}

// BotAuth returns an AuthFunc that authenticates requests as a bot.
func BotAuth(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bot "+token)
	}
}

// NewGuildClient creates a membership client. Panics if Client or Discord
// is nil.
func NewGuildClient(cfg GuildClientConfig) *GuildClient {
	if cfg.Client == nil {
		panic("GuildClient: Client is required")
	}

	if cfg.Discord == nil {
		panic("GuildClient: Discord config is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ttl := cfg.Discord.CacheTTL
	if ttl <= 0 {
		ttl = defaultGuildCacheTTL
	}

	name := cfg.Discord.Name
	if name == "" {
		name = "discord"
	}

	return &GuildClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, name),
		guildID:     cfg.Discord.GuildID,
		ttl:         ttl,
		metrics:     cfg.Metrics,
		logger:      logger.With(slog.String("component", "guild_client")),
		now:         time.Now,
		cache:       make(map[string]cachedMembership),
	}
}

// IsMember reports whether userID belongs to the configured guild.
// Implements ports.GuildMembership.
func (g *GuildClient) IsMember(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, domain.NewValidationError("user_id", "is required")
	}

	if member, ok := g.cached(userID); ok {
		g.metrics.GuildChecked(member, true)

		return member, nil
	}

	v, err, _ := g.group.Do(userID, func() (any, error) {
		member, err := g.fetch(ctx, userID)
		if err != nil {
			return false, err
		}

		g.store(userID, member)

		return member, nil
	})
	if err != nil {
		return false, err
	}

	member := v.(bool)
	g.metrics.GuildChecked(member, false)

	return member, nil
}

func (g *GuildClient) fetch(ctx context.Context, userID string) (bool, error) {
	const operation = "get guild member"

	logger := g.logger
	if scoped, ok := logging.Lookup(ctx); ok {
		logger = scoped.With(slog.String("component", "guild_client"))
	}

	path := fmt.Sprintf("/guilds/%s/members/%s", url.PathEscape(g.guildID), url.PathEscape(userID))

	logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := g.Get(ctx, path, operation)
	if err != nil {
		logger.WarnContext(ctx, "guild lookup failed", slog.String("user_id", userID), slog.Any("error", err))

		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		dto, err := DecodeResponse[guildMemberResponse](resp.Body)
		if err != nil {
			return false, domain.NewUnavailableError(g.ServiceName(), err.Error())
		}

		user, err := translateMember(dto)
		if err != nil {
			return false, domain.NewUnavailableError(g.ServiceName(), err.Error())
		}

		if user.ID != userID {
			return false, domain.NewUnavailableError(g.ServiceName(),
				fmt.Sprintf("member lookup for %s returned %s", userID, user.ID))
		}

		logger.DebugContext(ctx, "guild member confirmed",
			slog.String("user_id", userID), slog.String("name", user.Name))

		return true, nil

	case http.StatusNotFound:
		errResp := ParseErrorResponse(resp.Body)
		_ = resp.Body.Close()

		if errResp != nil && errResp.Code == CodeUnknownGuild {
			return false, domain.NewUnavailableError(g.ServiceName(),
				fmt.Sprintf("guild %s is unknown to the bot", g.guildID))
		}

		logger.DebugContext(ctx, "not a guild member", slog.String("user_id", userID))

		return false, nil

	default:
		defer func() { _ = resp.Body.Close() }()

		err := MapHTTPError(resp, nil, g.ServiceName(), operation)
		logger.WarnContext(ctx, "guild lookup rejected",
			slog.String("user_id", userID),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err))

		return false, err
	}
}

// translateMember turns a guild member object into the user it describes.
// Nickname wins over global name, which wins over the account name.
var translateMember Translator[guildMemberResponse, domain.User] = func(ext *guildMemberResponse) (*domain.User, error) {
	if ext.User == nil || ext.User.ID == "" {
		return nil, errors.New("guild member without user id")
	}

	name := ext.Nick
	if name == "" {
		name = ext.User.GlobalName
	}

	if name == "" {
		name = ext.User.Username
	}

	return &domain.User{
		ID:   ext.User.ID,
		Name: name,
		Role: domain.RoleUser,
	}, nil
}

func (g *GuildClient) cached(userID string) (bool, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.cache[userID]
	if !ok {
		return false, false
	}

	if !g.now().Before(entry.expires) {
		delete(g.cache, userID)

		return false, false
	}

	return entry.member, true
}

func (g *GuildClient) store(userID string, member bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cache[userID] = cachedMembership{member: member, expires: g.now().Add(g.ttl)}
}

// Name implements ports.HealthChecker.
func (g *GuildClient) Name() string {
	return g.ServiceName()
}

// Check implements ports.HealthChecker. The client is reported unhealthy
// while its circuit breaker is open.
func (g *GuildClient) Check(_ context.Context) error {
	if state := g.Client().CircuitState(); state == clients.StateOpen {
		return domain.NewUnavailableError(g.ServiceName(), "circuit breaker open")
	}

	return nil
}
