package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/storage"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func setupAdapter(t *testing.T) (*storage.GormAdapter, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	adapter := storage.NewGormAdapter(db)
	require.NoError(t, adapter.Migrate())
	return adapter, db
}

func TestGormAdapter_RoundTrip(t *testing.T) {
	adapter, _ := setupAdapter(t)
	snap := sampleSnapshot()

	require.NoError(t, adapter.Save(snap))
	loaded, err := adapter.Load()

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assertSnapshotEqual(t, snap, *loaded)
}

func TestGormAdapter_EmptyTableIsAbsent(t *testing.T) {
	adapter, _ := setupAdapter(t)

	loaded, err := adapter.Load()

	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestGormAdapter_SaveUpsertsSingleRow(t *testing.T) {
	adapter, db := setupAdapter(t)

	first := sampleSnapshot()
	require.NoError(t, adapter.Save(first))
	second := sampleSnapshot()
	second.Boards[0].Title = "Renamed"
	require.NoError(t, adapter.Save(second))

	var count int64
	require.NoError(t, db.Model(&storage.BoardState{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "state lives in exactly one row")

	loaded, err := adapter.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Renamed", loaded.Boards[0].Title)
}

func TestGormAdapter_CorruptPayloadIsAbsent(t *testing.T) {
	adapter, db := setupAdapter(t)
	require.NoError(t, db.Create(&storage.BoardState{Key: "board-state", Payload: "{not json"}).Error)

	loaded, err := adapter.Load()

	assert.NoError(t, err, "corrupt state is discarded, never fatal")
	assert.Nil(t, loaded)
}
