package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/fuzzy"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/middleware"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/memory"
	"github.com/hearsayhub/hearsay-hub/internal/app"
	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
)

var (
	alice = domain.Principal{UserID: "alice", Name: "Alice", Role: domain.RoleUser}
	bob   = domain.Principal{UserID: "bob", Name: "Bob", Role: domain.RoleUser}
	mod   = domain.Principal{UserID: "mod", Name: "Mona", Role: domain.RoleModerator}
	admin = domain.Principal{UserID: "admin", Name: "Ada", Role: domain.RoleAdmin}
)

var testAuth = &config.AuthConfig{
	Enabled:       true,
	SubjectHeader: "X-User-ID",
	NameHeader:    "X-User-Name",
	RolesHeader:   "X-User-Roles",
}

// harness mounts every API handler on a memory store, the way the router
// does, without the outer middleware.
type harness struct {
	t      *testing.T
	store  *memory.Store
	engine *gin.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	matcher, err := fuzzy.New(&config.SearchConfig{
		Engine:    fuzzy.EngineLevenshtein,
		Threshold: config.DefaultSearchThreshold,
		Weights: config.SearchWeights{
			Content:  config.DefaultSearchWeightContent,
			Context:  config.DefaultSearchWeightContext,
			Speakers: config.DefaultSearchWeightSpeakers,
		},
	}, logger)
	require.NoError(t, err)

	quotes := NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
		Quotes: store, Speakers: store, Tx: store, Logger: logger,
	}))
	search := NewSearchHandler(app.NewSearchService(app.SearchServiceConfig{
		Quotes: store, Speakers: store, Users: store, Matcher: matcher, Logger: logger,
	}))
	ranking := NewRankingHandler(app.NewRankingService(app.RankingServiceConfig{
		Quotes: store, Logger: logger,
	}))
	votes := NewVoteHandler(app.NewVoteService(app.VoteServiceConfig{
		Votes: store, Tx: store, Logger: logger,
	}))
	speakers := NewSpeakerHandler(app.NewSpeakerService(app.SpeakerServiceConfig{
		Speakers: store, Logger: logger,
	}))
	users := NewUserHandler(app.NewUserService(app.UserServiceConfig{
		Users: store, Quotes: store, Votes: store, Logger: logger,
	}))

	engine := gin.New()
	api := engine.Group("/api/v1", middleware.RequireAuth(testAuth, store))

	api.GET("/search/quotes", search.Quotes)
	api.GET("/search/speakers", search.Speakers)
	api.GET("/search/users", search.Users)

	api.GET("/ranking/years", ranking.Years)
	api.GET("/ranking/years/:year", ranking.Year)

	api.GET("/quotes", quotes.List)
	api.GET("/quotes/latest", quotes.Latest)
	api.GET("/quotes/mine", quotes.Mine)
	api.GET("/quotes/:id", quotes.Get)
	api.POST("/quotes", quotes.Create)
	api.PUT("/quotes/:id", quotes.Update)
	api.DELETE("/quotes/:id", quotes.Delete)

	api.POST("/quotes/:id/votes", votes.Cast)
	api.GET("/quotes/:id/votes", votes.Stats)
	api.GET("/quotes/:id/voters", votes.Voters)

	api.GET("/speakers", speakers.List)
	api.POST("/speakers", speakers.Create)
	api.PUT("/speakers/:id", speakers.Rename)
	api.DELETE("/speakers/:id", speakers.Delete)

	api.GET("/users/me", users.Me)
	api.GET("/users/:id", users.Profile)
	api.GET("/users/:id/quotes", users.Quotes)

	return &harness{t: t, store: store, engine: engine}
}

func (h *harness) do(p domain.Principal, method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if p.UserID != "" {
		req.Header.Set("X-User-ID", p.UserID)
		req.Header.Set("X-User-Name", p.Name)
		req.Header.Set("X-User-Roles", string(p.Role))
	}

	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)

	return w
}

func (h *harness) speaker(name string) int64 {
	h.t.Helper()

	w := h.do(mod, http.MethodPost, "/api/v1/speakers", dto.SpeakerRequest{Name: name})
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	return decode[dto.SpeakerResponse](h.t, w).ID
}

func (h *harness) quote(p domain.Principal, req dto.QuoteRequest) dto.QuoteResponse {
	h.t.Helper()

	w := h.do(p, http.MethodPost, "/api/v1/quotes", req)
	require.Equal(h.t, http.StatusCreated, w.Code, w.Body.String())

	return decode[dto.QuoteResponse](h.t, w)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())

	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	return decode[dto.ErrorResponse](t, w).Error.Code
}
