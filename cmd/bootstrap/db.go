package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"fullplanes/internal/infra/db"
	"fullplanes/internal/infra/quotastore"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/usecase"

	"go.uber.org/fx"
)

const (
	QuotaStoreFile     = "file"
	QuotaStorePostgres = "postgres"
	QuotaStoreMongo    = "mongo"
	QuotaStoreMemory   = "memory"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewQuotaStore,
	),
)

// NewQuotaStore opens only the backend selected by QUOTA_STORE.
func NewQuotaStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.QuotaStore, error) {
	ctx := context.Background()

	switch cfg.Quota.Store {
	case QuotaStoreFile, "":
		return quotastore.NewFileStore(cfg.Quota.FilePath, logger), nil

	case QuotaStoreMemory:
		logger.Warn("quota is kept in memory only and resets on restart")
		return quotastore.NewMemoryStore(), nil

	case QuotaStorePostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})

		store := quotastore.NewPostgresStore(pool, logger)
		if err := store.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, err
		}
		return store, nil

	case QuotaStoreMongo:
		database, disconnect, err := db.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(stopCtx context.Context) error {
				return disconnect(stopCtx)
			},
		})
		return quotastore.NewMongoStore(database, cfg.Mongo.Collection, logger), nil

	default:
		return nil, fmt.Errorf("unknown quota store %q", cfg.Quota.Store)
	}
}
