//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/fuzzy"
	apihttp "github.com/hearsayhub/hearsay-hub/internal/adapters/http"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/handlers"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/memory"
	"github.com/hearsayhub/hearsay-hub/internal/app"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/metrics"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stack is the whole service wired on the memory store and served by an
// httptest server, the way cmd/service wires it.
type stack struct {
	server   *httptest.Server
	store    *memory.Store
	registry *prometheus.Registry
}

type stackOptions struct {
	members ports.GuildMembership
	checks  []ports.HealthChecker
	engine  string
}

func newStack(opts stackOptions) (*stack, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	engine := opts.engine
	if engine == "" {
		engine = fuzzy.EngineLevenshtein
	}

	matcher, err := fuzzy.New(&config.SearchConfig{
		Engine:    engine,
		Threshold: config.DefaultSearchThreshold,
		Weights: config.SearchWeights{
			Content:  config.DefaultSearchWeightContent,
			Context:  config.DefaultSearchWeightContext,
			Speakers: config.DefaultSearchWeightSpeakers,
		},
	}, logger)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		return nil, err
	}

	for _, check := range opts.checks {
		if err := health.Register(check); err != nil {
			return nil, err
		}
	}

	engineGin := gin.New()
	apihttp.SetupRouter(engineGin, apihttp.RouterConfig{
		ServiceName: "hearsay-hub-integration",
		Auth: &config.AuthConfig{
			Enabled:       true,
			SubjectHeader: "X-User-ID",
			NameHeader:    "X-User-Name",
			RolesHeader:   "X-User-Roles",
		},
		Users:   store,
		Members: opts.members,
		Timeout: apihttp.DefaultRequestTimeout,
		Health: handlers.NewHealthHandler(handlers.HealthHandlerConfig{
			Registry: health,
			Build:    handlers.NewBuildInfo("hearsay-hub", "integration", "", ""),
			Gatherer: reg,
		}),
		Services: apihttp.Services{
			Quotes: app.NewQuoteService(app.QuoteServiceConfig{
				Quotes: store, Speakers: store, Tx: store, Logger: logger,
			}),
			Search: app.NewSearchService(app.SearchServiceConfig{
				Quotes: store, Speakers: store, Users: store, Matcher: matcher, Metrics: m, Logger: logger,
			}),
			Ranking: app.NewRankingService(app.RankingServiceConfig{
				Quotes: store, Metrics: m, Logger: logger,
			}),
			Votes: app.NewVoteService(app.VoteServiceConfig{
				Votes: store, Tx: store, Metrics: m, Logger: logger,
			}),
			Speakers: app.NewSpeakerService(app.SpeakerServiceConfig{
				Speakers: store, Logger: logger,
			}),
			Users: app.NewUserService(app.UserServiceConfig{
				Users: store, Quotes: store, Votes: store, Logger: logger,
			}),
		},
	})

	return &stack{
		server:   httptest.NewServer(engineGin),
		store:    store,
		registry: reg,
	}, nil
}

func (s *stack) Close() {
	s.server.Close()
}

// user identifies a caller the way the gateway does.
type user struct {
	ID    string
	Name  string
	Roles string
}

func (u user) apply(req *http.Request) {
	if u.ID == "" {
		return
	}

	req.Header.Set("X-User-ID", u.ID)
	req.Header.Set("X-User-Name", u.Name)

	if u.Roles != "" {
		req.Header.Set("X-User-Roles", u.Roles)
	}
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// call sends one request as u and returns the status and body.
func call(baseURL string, u user, method, path, body string) (int, []byte, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	u.apply(req)

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	return resp.StatusCode, data, err
}
