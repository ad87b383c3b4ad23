package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/lilfaithontrack/abigail-admin/internal/client/storage"
)

// Единственный постоянный ключ клиента. Имя унаследовано от старой
// админки, которая держала токен в localStorage под "adminToken".
var sessionKey = []byte("adminToken")

// SaveSession stores the session record
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session record
func (s *Storage) GetSession(ctx context.Context) (*storage.Session, error) {
	var session *storage.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		session = &storage.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes the stored session record (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(sessionKey) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		return nil
	})
}
