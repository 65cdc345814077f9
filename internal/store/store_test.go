package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/internal/store"
)

func TestOpenAndInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tenant.db")

	st, err := store.Open(dbPath, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Init())

	for _, table := range []string{"tenants", "units", "invoices", "payments"} {
		assert.True(t, st.DB().Migrator().HasTable(table), "expected table %s", table)
	}

	// Init is the idempotent "create if absent" bootstrap.
	assert.NoError(t, st.Init())
}

func TestForeignKeysOnEveryConnection(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tenant.db")

	st, err := store.Open(dbPath, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	sqlDB, err := st.DB().DB()
	require.NoError(t, err)

	// Retire the connection used during Open so the next query runs on
	// a fresh one from the pool; enforcement must not depend on which
	// connection a query lands on.
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxIdleConns(2)

	var enabled int
	require.NoError(t, st.DB().Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "tenant.db")

	st, err := store.Open(dbPath, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	path, ok := st.FilePath()
	assert.True(t, ok)
	assert.Equal(t, dbPath, path)
}

func TestFilePathMemory(t *testing.T) {
	st, err := store.Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	_, ok := st.FilePath()
	assert.False(t, ok)
}
