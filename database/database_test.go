package database

import (
	"context"
	"database/sql/driver"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"focus.db?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL",
		dsn("focus.db"))
	assert.Equal(t,
		"file:focus.db?cache=shared&_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL",
		dsn("file:focus.db?cache=shared"))
}

func TestOpen_ReplacedConnectionKeepsSettings(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "focus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// Discard the pooled connection so the next query dials a fresh one.
	conn, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	_ = conn.Raw(func(any) error { return driver.ErrBadConn })
	_ = conn.Close()

	var foreignKeys, busyTimeout int
	var journalMode string
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	require.NoError(t, db.Raw("PRAGMA busy_timeout").Scan(&busyTimeout).Error)
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&journalMode).Error)

	assert.Equal(t, 1, foreignKeys)
	assert.Equal(t, 5000, busyTimeout)
	assert.Equal(t, "wal", journalMode)
}
