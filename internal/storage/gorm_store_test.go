package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testStore(t *testing.T) Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StorageEntry{}))
	return NewGormStore(db)
}

func TestGormStoreSetGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "game:1:alpha", `{"points":120}`, true))

	value, err := store.Get(ctx, "game:1:alpha", true)
	require.NoError(t, err)
	assert.Equal(t, `{"points":120}`, value)

	// 同键覆盖写入
	require.NoError(t, store.Set(ctx, "game:1:alpha", `{"points":150}`, true))
	value, err = store.Get(ctx, "game:1:alpha", true)
	require.NoError(t, err)
	assert.Equal(t, `{"points":150}`, value)
}

func TestGormStoreGetMissing(t *testing.T) {
	store := testStore(t)

	_, err := store.Get(context.Background(), "game:nope", true)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestGormStoreListByPrefix(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "game:1:alpha", "a", true))
	require.NoError(t, store.Set(ctx, "game:2:beta", "b", true))
	require.NoError(t, store.Set(ctx, "other:3:gamma", "c", true))

	keys, err := store.List(ctx, "game:", true)
	require.NoError(t, err)

	// 按写入顺序返回，只包含指定前缀
	assert.Equal(t, []string{"game:1:alpha", "game:2:beta"}, keys)

	keys, err = store.List(ctx, "missing:", true)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryStoreMatchesGormSemantics(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"gorm":   testStore(t),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "game:1:x", "one", true))
			require.NoError(t, store.Set(ctx, "game:2:y", "two", true))
			require.NoError(t, store.Set(ctx, "game:1:x", "uno", true))

			keys, err := store.List(ctx, "game:", true)
			require.NoError(t, err)
			assert.Equal(t, []string{"game:1:x", "game:2:y"}, keys)

			value, err := store.Get(ctx, "game:1:x", true)
			require.NoError(t, err)
			assert.Equal(t, "uno", value)

			_, err = store.Get(ctx, "game:ghost", true)
			assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		})
	}
}
