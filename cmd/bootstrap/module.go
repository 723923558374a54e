package bootstrap

import (
	"fullplanes/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	ProviderModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
