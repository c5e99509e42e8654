package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/community-backend/internal/auth"
	"github.com/heartmarshall/community-backend/internal/config"
	"github.com/heartmarshall/community-backend/internal/metrics"
	"github.com/heartmarshall/community-backend/internal/service/interaction"
	"github.com/heartmarshall/community-backend/internal/transport/dataloader"
	"github.com/heartmarshall/community-backend/internal/transport/middleware"
	"github.com/heartmarshall/community-backend/internal/transport/rest"
)

const apiPrefix = "/api/v1"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Interaction *rest.InteractionHandler
	Comments    *rest.CommentHandler
	Entities    *rest.EntityHandler
	Summaries   *rest.SummaryBatchHandler
	Health      *rest.HealthHandler
}

// RouterDeps holds the cross-cutting pieces the router wraps handlers with.
type RouterDeps struct {
	Config      *config.Config
	Logger      *slog.Logger
	Validator   *auth.JWTManager
	Summaries   *interaction.Service
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the HTTP handler tree.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	write := func(next http.HandlerFunc) http.Handler {
		if deps.RateLimiter == nil {
			return next
		}
		return deps.RateLimiter.Limit(deps.Config.RateLimit.WritesPerMinute)(next)
	}
	api := func(method, path string) string {
		return method + " " + apiPrefix + path
	}

	// Entities
	mux.Handle(api("GET", "/entities/{kind}/{id}/summary"), http.HandlerFunc(h.Interaction.Summary))
	mux.Handle(api("PUT", "/entities/{kind}/{id}"), write(h.Entities.Register))
	mux.Handle(api("DELETE", "/entities/{kind}/{id}"), write(h.Entities.Retire))

	// Reactions
	mux.Handle(api("PUT", "/entities/{kind}/{id}/reaction"), write(h.Interaction.PutReaction))
	mux.Handle(api("DELETE", "/entities/{kind}/{id}/reaction"), write(h.Interaction.DeleteReaction))
	mux.Handle(api("GET", "/entities/{kind}/{id}/reactions"), http.HandlerFunc(h.Interaction.ListReactions))

	// Votes
	mux.Handle(api("PUT", "/entities/{kind}/{id}/vote"), write(h.Interaction.PutVote))
	mux.Handle(api("DELETE", "/entities/{kind}/{id}/vote"), write(h.Interaction.DeleteVote))

	// Bookmarks
	mux.Handle(api("PUT", "/entities/{kind}/{id}/bookmark"), write(h.Interaction.PutBookmark))
	mux.Handle(api("DELETE", "/entities/{kind}/{id}/bookmark"), write(h.Interaction.DeleteBookmark))
	mux.Handle(api("GET", "/me/bookmarks"), http.HandlerFunc(h.Interaction.MyBookmarks))

	// Views and shares
	mux.Handle(api("POST", "/entities/{kind}/{id}/views"), write(h.Interaction.RecordView))
	mux.Handle(api("POST", "/entities/{kind}/{id}/shares"), write(h.Interaction.RecordShare))

	// Comments
	mux.Handle(api("GET", "/entities/{kind}/{id}/comments"), http.HandlerFunc(h.Comments.List))
	mux.Handle(api("POST", "/entities/{kind}/{id}/comments"), write(h.Comments.Add))
	mux.Handle(api("GET", "/comments/{id}"), http.HandlerFunc(h.Comments.Get))
	mux.Handle(api("PATCH", "/comments/{id}"), write(h.Comments.Edit))
	mux.Handle(api("DELETE", "/comments/{id}"), write(h.Comments.Delete))
	mux.Handle(api("POST", "/comments/{id}/restore"), write(h.Comments.Restore))
	mux.Handle(api("GET", "/comments/{id}/replies"), http.HandlerFunc(h.Comments.Replies))

	// Batch summaries
	mux.Handle(api("POST", "/summaries"), http.HandlerFunc(h.Summaries.Batch))

	// Probes
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	if deps.Config.Metrics.Enabled && deps.Registry != nil {
		mux.Handle("GET "+deps.Config.Metrics.Path, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORS),
		middleware.ClientIP(deps.Config.Server.TrustProxy),
		middleware.Auth(deps.Validator),
		dataloader.Middleware(deps.Summaries),
	}
	if deps.Metrics != nil {
		mws = append(mws, middleware.Metrics(deps.Metrics))
	}

	return middleware.Chain(mws...)(mux)
}
