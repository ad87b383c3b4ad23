package resource

import (
	"context"
	"fmt"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
)

// Entity — запись коллекции с серверным идентификатором
type Entity interface {
	EntityID() string
}

// Client — операции коллекции, которые нужны store.
// Реализуется api.ResourceClient.
type Client[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload api.Payload) (*T, error)
	Update(ctx context.Context, id string, payload api.Payload) (*T, error)
	Remove(ctx context.Context, id string) error
}

// State — верхнеуровневое состояние store
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Store держит in-memory коллекцию одного вида ресурса.
// Жизненный цикл: idle -> loading -> ready | error. Мутации
// (create/update/remove) верхнеуровневое состояние не меняют: при
// успехе они правят коллекцию на месте либо перечитывают список.
//
// Каждая загрузка помечается поколением; ответ устаревшего поколения
// отбрасывается, чтобы поздно пришедший список не затёр более свежий.
type Store[T Entity] struct {
	client     Client[T]
	lastErr    error
	items      []T
	generation uint64
	state      State
}

// NewStore создает store с пустой, но не nil, коллекцией
func NewStore[T Entity](client Client[T]) *Store[T] {
	return &Store[T]{
		client: client,
		items:  []T{},
		state:  StateIdle,
	}
}

// State возвращает текущее состояние
func (s *Store[T]) State() State { return s.state }

// Err возвращает ошибку последней неудачной загрузки
func (s *Store[T]) Err() error { return s.lastErr }

// Items возвращает текущую коллекцию. Никогда не nil.
func (s *Store[T]) Items() []T { return s.items }

// Find ищет запись по id в загруженной коллекции
func (s *Store[T]) Find(id string) (*T, bool) {
	for i := range s.items {
		if s.items[i].EntityID() == id {
			return &s.items[i], true
		}
	}
	return nil, false
}

// Load загружает коллекцию с сервера. При ошибке коллекция принудительно
// пустая, состояние error; сам error возвращается для показа пользователю.
func (s *Store[T]) Load(ctx context.Context) error {
	s.generation++
	gen := s.generation
	s.state = StateLoading

	items, err := s.client.List(ctx)

	// Ответ устаревшего поколения молча отбрасываем
	if gen != s.generation {
		return nil
	}

	if err != nil {
		s.items = []T{}
		s.state = StateError
		s.lastErr = err
		return err
	}

	if items == nil {
		items = []T{}
	}
	s.items = items
	s.state = StateReady
	s.lastErr = nil
	return nil
}

// Create создает запись. Если сервер вернул созданную запись с id, она
// добавляется в коллекцию; иначе список перечитывается целиком.
func (s *Store[T]) Create(ctx context.Context, payload api.Payload) (*T, error) {
	created, err := s.client.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	if created == nil || (*created).EntityID() == "" {
		return nil, s.refresh(ctx)
	}

	s.items = append(s.items, *created)
	return created, nil
}

// Update обновляет запись по id. Если сервер вернул обновлённую запись,
// она заменяет старую по id; иначе список перечитывается целиком.
func (s *Store[T]) Update(ctx context.Context, id string, payload api.Payload) (*T, error) {
	updated, err := s.client.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if updated == nil || (*updated).EntityID() == "" {
		return nil, s.refresh(ctx)
	}

	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = *updated
			return updated, nil
		}
	}
	// Записи нет локально (например, коллекция ещё не загружалась)
	s.items = append(s.items, *updated)
	return updated, nil
}

// Remove удаляет запись по id. Успешное удаление убирает запись из
// коллекции; повторное удаление того же id вернёт ошибку сервера,
// не трогая коллекцию.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	if err := s.client.Remove(ctx, id); err != nil {
		return err
	}

	kept := s.items[:0]
	for _, item := range s.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

// refresh перечитывает коллекцию, не меняя верхнеуровневое состояние
func (s *Store[T]) refresh(ctx context.Context) error {
	s.generation++
	gen := s.generation

	items, err := s.client.List(ctx)
	if gen != s.generation {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to refresh list: %w", err)
	}

	if items == nil {
		items = []T{}
	}
	s.items = items
	return nil
}
