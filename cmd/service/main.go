// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/clients/acl"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/fuzzy"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/http/handlers"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/memory"
	"github.com/hearsayhub/hearsay-hub/internal/adapters/postgres"
	"github.com/hearsayhub/hearsay-hub/internal/app"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/platform/logging"
	"github.com/hearsayhub/hearsay-hub/internal/platform/metrics"
	"github.com/hearsayhub/hearsay-hub/internal/platform/telemetry"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// backend is the store selected by database.driver.
type backend struct {
	quotes   ports.QuoteStore
	votes    ports.VoteStore
	speakers ports.SpeakerStore
	users    ports.UserStore
	tx       ports.TxManager
	health   ports.HealthChecker
	close    func()
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database", cfg.Database.Driver),
		slog.String("search_engine", cfg.Search.Engine),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Open the store
	store, err := openBackend(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer store.close()

	// 6. Create health registry
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store.health); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Matcher and domain metrics
	matcher, err := fuzzy.New(&cfg.Search, logger)
	if err != nil {
		return fmt.Errorf("creating matcher: %w", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// 8. Guild gate (ACL over the Discord API)
	var members ports.GuildMembership

	if cfg.Discord.Enabled {
		guild, err := newGuildClient(cfg, m, logger)
		if err != nil {
			return err
		}

		if err := healthRegistry.Register(guild); err != nil {
			return fmt.Errorf("registering guild client health check: %w", err)
		}

		members = guild
	}

	// 9. Create services (application layer)
	services := http.Services{
		Quotes: app.NewQuoteService(app.QuoteServiceConfig{
			Quotes: store.quotes, Speakers: store.speakers, Tx: store.tx, Logger: logger,
		}),
		Search: app.NewSearchService(app.SearchServiceConfig{
			Quotes: store.quotes, Speakers: store.speakers, Users: store.users,
			Matcher: matcher, Metrics: m, Logger: logger,
		}),
		Ranking: app.NewRankingService(app.RankingServiceConfig{
			Quotes: store.quotes, Metrics: m, Logger: logger,
		}),
		Votes: app.NewVoteService(app.VoteServiceConfig{
			Votes: store.votes, Tx: store.tx, Metrics: m, Logger: logger,
		}),
		Speakers: app.NewSpeakerService(app.SpeakerServiceConfig{
			Speakers: store.speakers, Logger: logger,
		}),
		Users: app.NewUserService(app.UserServiceConfig{
			Users: store.users, Quotes: store.quotes, Votes: store.votes, Logger: logger,
		}),
	}

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName: cfg.App.Name,
		Auth:        &cfg.Auth,
		Services:    services,
		Users:       store.users,
		Members:     members,
		Timeout:     http.DefaultRequestTimeout,
		Health: handlers.NewHealthHandler(handlers.HealthHandlerConfig{
			Registry: healthRegistry,
			Build:    handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime),
			Gatherer: prometheus.DefaultGatherer,
		}),
	})

	// 12. Start server (non-blocking)
	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// openBackend connects the configured store, running migrations first when
// auto_migrate is set.
func openBackend(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*backend, error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("using in-memory store; data is lost on restart")

		store := memory.NewStore()

		return &backend{
			quotes:   store,
			votes:    store,
			speakers: store,
			users:    store,
			tx:       store,
			health:   store,
			close:    func() {},
		}, nil
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.URL, logger); err != nil {
			return nil, fmt.Errorf("migrating database: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	store := postgres.New(pool)

	return &backend{
		quotes:   store,
		votes:    store,
		speakers: store,
		users:    store,
		tx:       postgres.NewTxManager(pool),
		health:   store,
		close:    pool.Close,
	}, nil
}

func newGuildClient(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (*acl.GuildClient, error) {
	clientCfg := clients.NewConfig(cfg.Discord.Name, cfg.Discord.BaseURL, &cfg.Client)
	clientCfg.AuthFunc = acl.BotAuth(cfg.Discord.BotToken)
	clientCfg.Logger = logger

	httpClient, err := clients.New(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating discord client: %w", err)
	}

	return acl.NewGuildClient(acl.GuildClientConfig{
		Client:  httpClient,
		Discord: &cfg.Discord,
		Metrics: m,
		Logger:  logger,
	}), nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
