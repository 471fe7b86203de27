package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/apperror"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/assets"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
}

// compressedTypes are the response types worth gzipping.
var compressedTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"image/svg+xml",
}

// NewRouter creates the chi router with the shared middleware stack, the
// metrics endpoint and the static file mount. Feature modules add their own
// routes to it.
func NewRouter(p RouterParams) *chi.Mux {
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		TrustedRealIP(p.Config.TrustedProxies),
		RequestLogger(log),
		Recoverer(log),
		RouteMetrics,
		middleware.Compress(5, compressedTypes...),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, log, apperror.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, log, apperror.ErrMethodNotAllowed)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", assets.Handler(p.Config.IsProduction())))

	return r
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Bind before returning so a taken port fails startup.
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
