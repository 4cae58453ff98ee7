//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"session-booking/internal/infra/db"
	"session-booking/internal/infra/repository"
	"session-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedReferenceData stores the default availability rule every flow needs.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := repository.NewRuleRepository(pool).SaveDefaultRule(context.Background(), builder.NewRuleBuilder().Build())
	return err
}

func CreateTestSessionType(t *testing.T, conn db.DBTX, b *builder.SessionTypeBuilder) int64 {
	t.Helper()

	id, err := repository.NewSessionTypeRepository(conn).CreateSessionType(context.Background(), b.BuildDomain())
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, conn DBLike, table string, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, conn.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func SessionStatus(t *testing.T, conn DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, conn.QueryRow(context.Background(), "SELECT status FROM sessions WHERE id = $1", id).Scan(&status))
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
