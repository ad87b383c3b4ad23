package storage

import (
	"context"
)

// SessionStorage defines the durable client-side session store.
// The client persists exactly one record: the admin bearer token under
// the fixed adminToken key. Presence of the record means "authenticated";
// the token is validated only by the server on the next privileged call.
type SessionStorage interface {
	// SaveSession stores the session record, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session record
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session record (logout)
	DeleteSession(ctx context.Context) error
}

// Session represents the persisted admin session
type Session struct {
	Token   string `json:"token"`           // bearer token, как его вернул /auth/login
	Email   string `json:"email,omitempty"` // email, под которым выполнен вход
	SavedAt int64  `json:"saved_at"`        // unix time сохранения
}
