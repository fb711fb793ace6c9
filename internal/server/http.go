package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Dependencies are the handlers and probes mounted by NewRouter. Only
// Questions is required.
type Dependencies struct {
	Questions *question.HTTPHandlers
	Feed      http.Handler
	Metrics   *metrics.Metrics
	Health    []HealthCheck
}

// NewRouter builds the API handler: routes plus the middleware stack.
func NewRouter(cfg *config.App, logger zerolog.Logger, deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), deps.Health); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondServiceUnavailable(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	deps.Questions.Register(mux)

	if deps.Feed != nil {
		mux.Handle("/ws/questions", deps.Feed)
	} else {
		mux.HandleFunc("/ws/questions", func(w http.ResponseWriter, r *http.Request) {
			httperrors.RespondServiceUnavailable(w)
		})
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	return chain(mux,
		withRecover(logger),
		withRequestLogging(logger),
		withCORS(cfg.CORS),
		withMetrics(deps.Metrics),
	)
}

// NewHTTPServer wraps the router in an http.Server configured from cfg.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Dependencies) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      NewRouter(cfg, logger, deps),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

func pingDependencies(ctx context.Context, checks []HealthCheck) error {
	for _, check := range checks {
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}
