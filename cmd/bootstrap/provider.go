package bootstrap

import (
	"context"
	"log/slog"

	"fullplanes/internal/infra/amadeus"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/usecase"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			NewAmadeusClient,
			fx.As(new(usecase.FlightOfferProvider)),
		),
	),
)

func NewAmadeusClient(cfg config.Config, logger *slog.Logger) *amadeus.Client {
	// the token source outlives any single request, so it gets the background context
	return amadeus.NewClient(context.Background(), cfg.Amadeus, logger)
}
