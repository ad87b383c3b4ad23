package view

import "strings"

// FilterAll — sentinel значение фильтра "показать все"
const FilterAll = "all"

// Predicate решает, попадает ли запись в отображаемый список
type Predicate[T any] func(T) bool

// Search строит предикат поиска: без учета регистра, по вхождению
// подстроки хотя бы в одно из текстовых полей записи. Пустой запрос
// пропускает все.
func Search[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(item T) bool {
		if term == "" {
			return true
		}
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

// Equals строит предикат точного совпадения по одному полю.
// Пустое значение и sentinel "all" пропускают все.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if want == "" || want == FilterAll {
			return true
		}
		return field(item) == want
	}
}

// And объединяет предикаты пересечением
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, pred := range preds {
			if !pred(item) {
				return false
			}
		}
		return true
	}
}

// Apply фильтрует коллекцию. Результат никогда не nil.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
