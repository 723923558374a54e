package components

import (
	"fullplanes/internal/domain/airline"
	"fullplanes/internal/domain/airport"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSearchModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	airport.NewDefaultCatalog,
	airline.NewDefaultDirectory,
	usecase.NewResultNormalizer,
)

var usecaseSearchModule = fx.Module("usecase/search",
	fx.Provide(
		usecase.NewQuotaTracker,
		usecase.NewSearchUseCase,
		usecase.NewSessionUseCase,
	),
)
