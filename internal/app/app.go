package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/community-backend/internal/adapter/postgres"
	bookmarkrepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/bookmark"
	commentrepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/comment"
	contentrepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/content"
	reactionrepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/reaction"
	sharerepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/share"
	viewrepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/view"
	voterepo "github.com/heartmarshall/community-backend/internal/adapter/postgres/vote"
	redisadapter "github.com/heartmarshall/community-backend/internal/adapter/redis"
	"github.com/heartmarshall/community-backend/internal/auth"
	"github.com/heartmarshall/community-backend/internal/config"
	"github.com/heartmarshall/community-backend/internal/metrics"
	"github.com/heartmarshall/community-backend/internal/service/bookmark"
	"github.com/heartmarshall/community-backend/internal/service/comment"
	"github.com/heartmarshall/community-backend/internal/service/content"
	"github.com/heartmarshall/community-backend/internal/service/interaction"
	"github.com/heartmarshall/community-backend/internal/service/reaction"
	"github.com/heartmarshall/community-backend/internal/service/share"
	"github.com/heartmarshall/community-backend/internal/service/view"
	"github.com/heartmarshall/community-backend/internal/service/vote"
	"github.com/heartmarshall/community-backend/internal/transport/middleware"
	"github.com/heartmarshall/community-backend/internal/transport/rest"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

// Run is the application entry point. It loads configuration, connects to
// the database (and Redis when views dedup there), wires services and
// transport, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("view_dedup_backend", cfg.Interaction.ViewDedupBackend),
	)

	// --- Infrastructure ---

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	clk := clock.Real{}

	components := []rest.Component{{Name: "database", Pinger: pool}}

	// --- Services ---

	contentSvc := content.NewService(logger, contentrepo.New(pool), clk)
	reactionSvc := reaction.NewService(logger, reactionrepo.New(pool), contentSvc, tx, clk)
	voteSvc := vote.NewService(logger, voterepo.New(pool), contentSvc, tx, clk)
	bookmarkSvc := bookmark.NewService(logger, bookmarkrepo.New(pool), contentSvc, tx, clk)
	commentSvc := comment.NewService(logger, commentrepo.New(pool), contentSvc, tx, clk, cfg.Interaction)
	shareSvc := share.NewService(logger, sharerepo.New(pool), contentSvc, clk, cfg.Interaction.ShareBase())

	var viewSvc *view.Service
	if cfg.Interaction.UsesRedisDedup() {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("close redis client", slog.String("error", err.Error()))
			}
		}()

		components = append(components, rest.Component{
			Name: "redis",
			Pinger: rest.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}),
		})
		viewSvc = view.NewService(logger, viewrepo.New(pool), redisadapter.NewViewGate(client), contentSvc, tx, clk, cfg.Interaction.ViewDedupWindow)
	} else {
		viewSvc = view.NewService(logger, viewrepo.New(pool), nil, contentSvc, tx, clk, cfg.Interaction.ViewDedupWindow)
	}

	summarySvc := interaction.NewService(logger, contentSvc, interaction.Stores{
		Reactions: reactionSvc,
		Comments:  commentSvc,
		Shares:    shareSvc,
		Votes:     voteSvc,
		Bookmarks: bookmarkSvc,
		Views:     viewSvc,
	}, cfg.Interaction)

	// --- Observability ---

	var (
		registry *prometheus.Registry
		m        *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(registry)
	}

	// --- Transport ---

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handlers := Handlers{
		Interaction: rest.NewInteractionHandler(rest.InteractionServices{
			Reactions: reactionSvc,
			Votes:     voteSvc,
			Bookmarks: bookmarkSvc,
			Views:     viewSvc,
			Shares:    shareSvc,
			Summaries: summarySvc,
		}, m, logger),
		Comments:  rest.NewCommentHandler(commentSvc, m, logger),
		Entities:  rest.NewEntityHandler(contentSvc, logger),
		Summaries: rest.NewSummaryBatchHandler(logger),
		Health:    rest.NewHealthHandler(BuildVersion(), components...),
	}

	router := NewRouter(handlers, RouterDeps{
		Config:      cfg,
		Logger:      logger,
		Validator:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Summaries:   summarySvc,
		Metrics:     m,
		Registry:    registry,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
