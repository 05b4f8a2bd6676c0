package bootstrap

import (
	"vehicle-rental/internal/infra/metrics"
	"vehicle-rental/internal/usecase/catalog"
	"vehicle-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(catalog.Recorder)),
			fx.As(new(commands.Recorder)),
		),
	),
)
