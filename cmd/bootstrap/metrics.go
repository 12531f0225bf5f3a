package bootstrap

import (
	"shopdispatch/internal/infra/metrics"
	"shopdispatch/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() prometheus.Registerer {
			return prometheus.DefaultRegisterer
		},
		fx.Annotate(
			metrics.NewPromSink,
			fx.As(new(shared.MetricsSink)),
		),
	),
)
