package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:dbx_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM kv`)
	require.NoError(t, err)
	return db
}

func rows(t *testing.T, db DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM kv`).Scan(&n))
	return n
}

func insert(ctx context.Context, tx DBTX, k string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO kv(k, v) VALUES (?, 'x')`, k)
	return err
}

func TestWithTx_Commit(t *testing.T) {
	db := openDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := insert(ctx, tx, "a"); err != nil {
			return err
		}
		return insert(ctx, tx, "b")
	})

	require.NoError(t, err)
	require.Equal(t, 2, rows(t, db))
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := openDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insert(ctx, tx, "a"))
		return boom
	})

	require.ErrorIs(t, err, boom)
	require.Zero(t, rows(t, db))
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := openDB(t)

	require.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insert(ctx, tx, "a"))
			panic("kaput")
		})
	})
	require.Zero(t, rows(t, db))
}

func TestWithTx_OnConn(t *testing.T) {
	db := openDB(t)
	conn, err := db.Conn(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	err = WithTx(context.Background(), conn, nil, func(ctx context.Context, tx DBTX) error {
		return insert(ctx, tx, "a")
	})

	require.NoError(t, err)
	require.Equal(t, 1, rows(t, conn))
}

func TestWithTx_BeginError(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})

	require.ErrorContains(t, err, "begin transaction")
	require.False(t, called)
}
