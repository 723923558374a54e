package components

import (
	"fullplanes/internal/infra/sessionstore"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(usecase.SessionStore)),
		),
	),
)

func NewSessionStore(cfg config.Config, clk clock.Clock) *sessionstore.MemoryStore {
	return sessionstore.NewMemoryStore(cfg.Session.TTL, clk)
}
