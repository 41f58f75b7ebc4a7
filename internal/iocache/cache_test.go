package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/debtspot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(metricsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	key := "metrics:abc123"
	value := []byte(`{"halstead_volume":120}`)
	now := time.Now().Unix()

	// Missing key reports sql.ErrNoRows
	_, _, _, err = store.Get(key)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, store.Set(key, value, 1, now))

	gotValue, gotVersion, gotTs, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, gotValue)
	assert.Equal(t, 1, gotVersion)
	assert.Equal(t, now, gotTs)

	// Upsert replaces in place
	require.NoError(t, store.Set(key, []byte(`{}`), 2, now+10))
	gotValue, gotVersion, _, err = store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), gotValue)
	assert.Equal(t, 2, gotVersion)
}

func TestCacheStoreSQLiteStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(metricsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEntries)

	require.NoError(t, store.Set("k1", []byte("v1"), 1, 100))
	require.NoError(t, store.Set("k2", []byte("v2"), 1, 200))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, time.Unix(200, 0), status.LastEntryTime)
	assert.Equal(t, time.Unix(100, 0), status.OldestEntryTime)
	assert.Greater(t, status.TableSizeBytes, int64(0))
}

func TestCacheStoreNoneBackend(t *testing.T) {
	store, err := NewCacheStore(metricsTable, schema.NoneBackend, "")
	require.NoError(t, err)

	// Writes are dropped and reads always miss
	require.NoError(t, store.Set("k", []byte("v"), 1, 1))
	_, _, _, err = store.Get("k")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestCacheStoreInvalidBackend(t *testing.T) {
	_, err := NewCacheStore(metricsTable, schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		tableName   string
		expectError bool
	}{
		{"metrics_cache", false},
		{"_private", false},
		{"Cache123", false},
		{"", true},
		{"bad-name", true},
		{"drop table; --", true},
		{"1leading_digit", true},
	}
	for _, tt := range tests {
		t.Run(tt.tableName, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.expectError {
				assert.Error(t, err, "validateTableName should error for %q", tt.tableName)
			} else {
				assert.NoError(t, err, "validateTableName should not error for %q", tt.tableName)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`metrics_cache`", quoteTableName("metrics_cache", schema.MySQLBackend))
	assert.Equal(t, `"metrics_cache"`, quoteTableName("metrics_cache", schema.PostgreSQLBackend))
	assert.Equal(t, `"metrics_cache"`, quoteTableName("metrics_cache", schema.SQLiteBackend))
}

func TestInitCaching(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitCaching(schema.SQLiteBackend, dbPath)
		assert.NoError(t, err, "Failed to initialize persistence")
		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetMetricsStore(), "Metrics store should not be nil")

		CloseCaching()

		// Verify database file was created
		_, err = os.Stat(dbPath)
		assert.False(t, os.IsNotExist(err), "Database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		assert.NoError(t, InitCaching(schema.SQLiteBackend, dbPath))
		assert.NoError(t, InitCaching(schema.SQLiteBackend, dbPath))

		// Multiple closes should be safe (sync.Once)
		CloseCaching()
		CloseCaching()
	})
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(metricsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("v"), 1, 1))
	require.NoError(t, store.Close())

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "Database file should be removed")

	// Clearing twice is fine: the missing file is ignored
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// But an empty path is rejected
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
}

func TestClearCacheNoneBackend(t *testing.T) {
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}
