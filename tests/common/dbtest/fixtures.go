//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedQuota writes the single quota row as if an earlier process had persisted it.
func SeedQuota(t *testing.T, db DBLike, month string, used int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO api_quota (id, month, used, updated_at) VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE SET month = EXCLUDED.month, used = EXCLUDED.used, updated_at = now()`,
		month, used)
	require.NoError(t, err)
}

// LoadQuota returns the persisted row, or ok=false when nothing was saved yet.
func LoadQuota(t *testing.T, db DBLike) (month string, used int, ok bool) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT month, used FROM api_quota WHERE id = 1").Scan(&month, &used)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, false
	}
	require.NoError(t, err)
	return strings.TrimSpace(month), used, true
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables created by the application
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + ";")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
