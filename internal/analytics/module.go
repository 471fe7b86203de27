package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
)

// Module provides the analytics domain
var Module = fx.Module("analytics",
	fx.Provide(NewService),
	fx.Provide(NewLimiterFromConfig),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterLifecycle),
)

// NewLimiterFromConfig builds the ingestion limiter
func NewLimiterFromConfig(cfg *config.Config) *ClientLimiter {
	return NewClientLimiter(cfg.Analytics.RatePerMinute, cfg.Analytics.Burst, cfg.Analytics.LimiterIdle)
}

// RegisterRoutes registers the analytics routes
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Post("/api/events", h.Ingest)
}

// LifecycleParams are the dependencies for lifecycle hooks
type LifecycleParams struct {
	fx.In

	LC      fx.Lifecycle
	Service *Service
	Limiter *ClientLimiter
	Config  *config.Config
	Log     *slog.Logger
}

// RegisterLifecycle attaches the sinks on start and detaches them on stop.
func RegisterLifecycle(p LifecycleParams) {
	var (
		unsubscribe []func()
		stopSweep   context.CancelFunc
	)

	p.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			unsubscribe = append(unsubscribe,
				p.Service.Subscribe(LogSink(p.Log)),
				p.Service.Subscribe(MetricsSink()),
			)
			if p.Config.Analytics.ForwardingEnabled() {
				fwd := NewForwarder(p.Config.Analytics, p.Log)
				unsubscribe = append(unsubscribe, p.Service.Subscribe(fwd.Subscriber()))
				p.Log.Info("analytics forwarding enabled", slog.String("endpoint", p.Config.Analytics.Endpoint))
			}

			var sweepCtx context.Context
			sweepCtx, stopSweep = context.WithCancel(context.Background())
			go p.Limiter.Run(sweepCtx, time.Minute)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Log.Info("stopping analytics")
			for _, fn := range unsubscribe {
				fn()
			}
			if stopSweep != nil {
				stopSweep()
			}
			return p.Service.Drain(ctx)
		},
	})
}
