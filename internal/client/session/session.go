package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lilfaithontrack/abigail-admin/internal/client/storage"
)

//go:generate go tool moq -out session_mock.go . Session

// Session — узкий интерфейс сессии администратора поверх durable
// хранилища. Наличие сохранённого токена трактуется как "вошёл в
// систему"; срок действия токена клиент не проверяет, истечение
// обнаруживается по 401 от сервера.
type Session interface {
	// Token возвращает сохранённый bearer token.
	// Пустая строка без ошибки означает отсутствие сессии.
	Token(ctx context.Context) (string, error)

	// SetToken сохраняет токен после успешного входа
	SetToken(ctx context.Context, token, email string) error

	// ClearToken удаляет сохранённую сессию (logout)
	ClearToken(ctx context.Context) error

	// IsAuthenticated проверяет наличие сохранённой сессии
	IsAuthenticated(ctx context.Context) (bool, error)

	// Info возвращает сведения о сохранённой сессии для отображения
	Info(ctx context.Context) (*Info, error)
}

// Info — сведения о текущей сессии
type Info struct {
	Email     string    // email, под которым выполнен вход
	SavedAt   time.Time // когда сессия была сохранена
	ExpiresAt time.Time // из JWT claims; нулевое время если токен непрозрачный
	IsJWT     bool      // удалось ли разобрать токен как JWT
}

// Service реализует Session поверх storage.SessionStorage
type Service struct {
	storage storage.SessionStorage
}

// Compile-time check that Service implements Session
var _ Session = (*Service)(nil)

// NewService создает сервис сессии
func NewService(sessionStorage storage.SessionStorage) *Service {
	return &Service{storage: sessionStorage}
}

// Token возвращает сохранённый токен или пустую строку
func (s *Service) Token(ctx context.Context) (string, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return session.Token, nil
}

// SetToken сохраняет токен, полученный от /auth/login
func (s *Service) SetToken(ctx context.Context, token, email string) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	session := &storage.Session{
		Token:   token,
		Email:   email,
		SavedAt: time.Now().Unix(),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearToken удаляет сохранённую сессию
func (s *Service) ClearToken(ctx context.Context) error {
	err := s.storage.DeleteSession(ctx)
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated проверяет наличие сохранённой сессии
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get session: %w", err)
	}
	return true, nil
}

// Info возвращает сведения о сессии. Если токен оказался JWT, из его
// payload без проверки подписи извлекается срок действия.
func (s *Service) Info(ctx context.Context) (*Info, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	info := &Info{
		Email:   session.Email,
		SavedAt: time.Unix(session.SavedAt, 0),
	}

	if expiresAt, ok := peekExpiry(session.Token); ok {
		info.IsJWT = true
		info.ExpiresAt = expiresAt
	}

	return info, nil
}
