package client

import (
	"errors"
	"sync"
)

// Store is the per-resource in-memory state container. It holds the
// authoritative collection, the current-item slot for detail/edit
// screens, pagination metadata, a loading flag, and the last error.
//
// Every async operation moves through pending and then exactly one of
// fulfilled or rejected. Transitions apply in response-arrival order,
// not request-issue order: there is no request fencing, so a stale
// response that resolves last wins. That is the documented behavior,
// not an accident.
type Store[T any] struct {
	mu         sync.Mutex
	id         func(T) string
	items      []T
	current    *T
	pagination *Pagination
	isLoading  bool
	err        string
}

func NewStore[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// Snapshot accessors. Items returns a copy so callers can't mutate the
// collection behind the store's back.

func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Current() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Store[T]) Pagination() *Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

func (s *Store[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Lifecycle transitions.

// Pending marks an operation in flight. List and create operations clear
// the previous error; per-item fetches leave it in place.
func (s *Store[T]) Pending(clearError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = true
	if clearError {
		s.err = ""
	}
}

// FulfilledList replaces items and pagination wholesale; never a merge.
func (s *Store[T]) FulfilledList(items []T, pagination *Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.pagination = pagination
	s.isLoading = false
	s.err = ""
}

// FulfilledCurrent replaces the current-item slot wholesale.
func (s *Store[T]) FulfilledCurrent(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = item
	s.isLoading = false
	s.err = ""
}

// FulfilledCreate prepends: new items sort first, independent of server
// ordering.
func (s *Store[T]) FulfilledCreate(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{item}, s.items...)
	s.isLoading = false
	s.err = ""
}

// FulfilledUpdate patches the matching item in place, preserving order.
// If the updated item is also current, current is replaced too. Unknown
// ids are silently ignored; a later refetch reconciles.
func (s *Store[T]) FulfilledUpdate(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			break
		}
	}
	if s.current != nil && s.id(*s.current) == id {
		s.current = &item
	}
	s.isLoading = false
	s.err = ""
}

// FulfilledDelete removes the matching item; no-op if absent.
func (s *Store[T]) FulfilledDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.isLoading = false
	s.err = ""
}

// Fulfilled ends an operation without touching items or current; used
// by fetches that commit to a resource-specific side collection.
func (s *Store[T]) Fulfilled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.err = ""
}

// Rejected records the failure message and nothing else: the prior
// items and current survive, stale-but-consistent over empty.
func (s *Store[T]) Rejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.err = message
}

// settle routes an operation error to the right terminal transition.
// Session expiry is handled globally by the transport, so it never
// lands in the store's error field; validation failures are reported
// inline at the dispatch site, not stored.
func (s *Store[T]) settle(err error) {
	var verr *ValidationError
	if errors.Is(err, ErrSessionExpired) || errors.As(err, &verr) {
		s.mu.Lock()
		s.isLoading = false
		s.mu.Unlock()
		return
	}
	s.Rejected(err.Error())
}
