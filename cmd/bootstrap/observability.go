package bootstrap

import (
	"context"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		NewMetrics,
	),
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(SetupTracing),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg *prometheus.Registry) (*metrics.Metrics, error) {
	return metrics.New(reg)
}

func SetupTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
