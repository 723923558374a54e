package quotastore

import (
	"context"
	"errors"
	"log/slog"

	"fullplanes/internal/domain/quota"
	"fullplanes/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createQuotaTable = `
CREATE TABLE IF NOT EXISTS api_quota (
    id         SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    month      CHAR(7)     NOT NULL,
    used       INTEGER     NOT NULL CHECK (used >= 0),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectQuota = `SELECT month, used FROM api_quota WHERE id = 1`

	selectQuotaForUpdate = selectQuota + ` FOR UPDATE`

	insertQuotaIfMissing = `
INSERT INTO api_quota (id, month, used, updated_at)
VALUES (1, $1, 0, now())
ON CONFLICT (id) DO NOTHING`

	upsertQuota = `
INSERT INTO api_quota (id, month, used, updated_at)
VALUES (1, $1, $2, now())
ON CONFLICT (id) DO UPDATE
SET month = EXCLUDED.month, used = EXCLUDED.used, updated_at = EXCLUDED.updated_at`
)

// PostgresStore shares the counter between processes through a single-row table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createQuotaTable); err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "create api_quota table", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*quota.State, error) {
	var st quota.State
	err := s.pool.QueryRow(ctx, selectQuota).Scan(&st.Month, &st.Used)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.Wrap(s.logger, infra.KindStoreFailure, "load quota row", err)
	}
	return &st, nil
}

func (s *PostgresStore) Save(ctx context.Context, state quota.State) error {
	if _, err := s.pool.Exec(ctx, upsertQuota, state.Month, state.Used); err != nil {
		return infra.Wrap(s.logger, infra.KindStoreFailure, "save quota row", err,
			slog.String("month", state.Month), slog.Int("used", state.Used))
	}
	return nil
}

// ReserveShared grants against the row while holding its lock, so concurrent processes never
// hand out more than limit units in a month between them.
func (s *PostgresStore) ReserveShared(ctx context.Context, month string, n, limit int) (quota.State, int, error) {
	var (
		next    quota.State
		granted int
	)
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertQuotaIfMissing, month); err != nil {
			return err
		}

		var stored quota.State
		if err := tx.QueryRow(ctx, selectQuotaForUpdate).Scan(&stored.Month, &stored.Used); err != nil {
			return err
		}

		next, granted = quota.NewState(stored.Month, stored.Used, limit).ForMonth(month).Grant(n)
		if granted == 0 {
			return nil
		}
		_, err := tx.Exec(ctx, upsertQuota, next.Month, next.Used)
		return err
	})
	if err != nil {
		return quota.State{}, 0, infra.Wrap(s.logger, infra.KindStoreFailure, "reserve quota row", err,
			slog.String("month", month), slog.Int("requested", n))
	}
	return next, granted, nil
}
