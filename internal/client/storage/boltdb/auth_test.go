package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/lilfaithontrack/abigail-admin/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с auth bucket
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "session_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestStorage_SaveGetDeleteSession(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	session := &storage.Session{
		Token:   "bearer-token-value",
		Email:   "admin@example.com",
		SavedAt: time.Now().Unix(),
	}

	// Проверяем что GetSession до сохранения выдаст ErrSessionNotFound
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Сохраняем сессию
	err = store.SaveSession(ctx, session)
	require.NoError(t, err)

	// Получаем и сравниваем
	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.SavedAt, got.SavedAt)

	// Удаляем сессию
	err = store.DeleteSession(ctx)
	require.NoError(t, err)

	// После удаления GetSession должен вернуть ErrSessionNotFound
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление тоже ErrSessionNotFound
	err = store.DeleteSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SaveSession_Overwrites(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	first := &storage.Session{Token: "first", Email: "a@example.com", SavedAt: 1}
	second := &storage.Session{Token: "second", Email: "b@example.com", SavedAt: 2}

	require.NoError(t, store.SaveSession(ctx, first))
	require.NoError(t, store.SaveSession(ctx, second))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
	assert.Equal(t, "b@example.com", got.Email)
}

func TestStorage_SessionStoredUnderAdminTokenKey(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	session := &storage.Session{Token: "tok", SavedAt: 1}
	require.NoError(t, store.SaveSession(ctx, session))

	// Проверяем фиксированный ключ в bucket напрямую
	err := store.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		require.NotNil(t, bucket)
		data := bucket.Get([]byte("adminToken"))
		require.NotNil(t, data)
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	_, err := New(ctx, filepath.Join("/nonexistent-dir-abigail", "db"))
	assert.Error(t, err)
}
