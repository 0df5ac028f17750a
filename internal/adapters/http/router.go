package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/dto"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/handlers"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/middleware"
	"github.com/hearsayhub/hearsay-hub/internal/app"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/telemetry"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// Services groups the application services the API exposes.
type Services struct {
	Quotes   *app.QuoteService
	Search   *app.SearchService
	Ranking  *app.RankingService
	Votes    *app.VoteService
	Speakers *app.SpeakerService
	Users    *app.UserService
}

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// ServiceName labels spans and HTTP metrics.
	ServiceName string

	Auth     *config.AuthConfig
	Services Services

	// Users records callers on mutating requests.
	Users ports.UserStore

	// Members gates /api/v1 on community membership. Nil disables the gate.
	Members ports.GuildMembership

	Health *handlers.HealthHandler

	// Timeout is the API request deadline. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Global middleware, first to last:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and HTTP metrics
//  5. Logging (skips /-/)
//
// The /api/v1 group adds the timeout, auth and the optional guild gate.
// Operational endpoints under /-/ are unauthenticated.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	engine.NoRoute(func(c *gin.Context) {
		dto.Abort(c, dto.ErrorCodeNotFound, "route not found")
	})

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	apiV1.Use(middleware.RequireAuth(cfg.Auth, cfg.Users))

	if cfg.Members != nil {
		apiV1.Use(middleware.RequireGuildMember(cfg.Members))
	}

	setupAPIRoutes(apiV1, cfg.Services)
}

func setupAPIRoutes(rg *gin.RouterGroup, svc Services) {
	search := handlers.NewSearchHandler(svc.Search)
	rg.GET("/search/quotes", search.Quotes)
	rg.GET("/search/speakers", search.Speakers)
	rg.GET("/search/users", search.Users)

	ranking := handlers.NewRankingHandler(svc.Ranking)
	rg.GET("/ranking/years", ranking.Years)
	rg.GET("/ranking/years/:year", ranking.Year)

	quotes := handlers.NewQuoteHandler(svc.Quotes)
	rg.GET("/quotes", quotes.List)
	rg.GET("/quotes/latest", quotes.Latest)
	rg.GET("/quotes/mine", quotes.Mine)
	rg.GET("/quotes/:id", quotes.Get)
	rg.POST("/quotes", quotes.Create)
	rg.PUT("/quotes/:id", quotes.Update)
	rg.DELETE("/quotes/:id", quotes.Delete)

	votes := handlers.NewVoteHandler(svc.Votes)
	rg.POST("/quotes/:id/votes", votes.Cast)
	rg.GET("/quotes/:id/votes", votes.Stats)
	rg.GET("/quotes/:id/voters", votes.Voters)

	speakers := handlers.NewSpeakerHandler(svc.Speakers)
	rg.GET("/speakers", speakers.List)
	rg.POST("/speakers", speakers.Create)
	rg.PUT("/speakers/:id", speakers.Rename)
	rg.DELETE("/speakers/:id", speakers.Delete)

	users := handlers.NewUserHandler(svc.Users)
	rg.GET("/users/me", users.Me)
	rg.GET("/users/:id", users.Profile)
	rg.GET("/users/:id/quotes", users.Quotes)
}
