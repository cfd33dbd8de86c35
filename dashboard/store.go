// Package dashboard holds the admin view-state: optimistic list stores with
// rollback, the delete-confirmation flow, and the session expiry keeper.
package dashboard

import (
	"context"
	"errors"
	"log"
	"sync"
)

var ErrMutationInFlight = errors.New("another change to this item is still in progress")

// Store is an in-memory list with optimistic mutations. Every mutating call
// snapshots the list, applies the change locally for instant feedback, runs
// the server action, and on failure restores the snapshot and reloads the
// whole list so the view matches the remote store again.
type Store[T any] struct {
	mu       sync.Mutex
	items    []T
	id       func(T) string
	inflight map[string]struct{}
	reload   func(context.Context) ([]T, error)
}

func NewStore[T any](id func(T) string, reload func(context.Context) ([]T, error)) *Store[T] {
	return &Store[T]{id: id, inflight: make(map[string]struct{}), reload: reload}
}

func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Load(ctx context.Context) error {
	items, err := s.reload(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Create inserts optimistically at the head, then runs the action. The
// canonical row returned by the server replaces the optimistic entry so any
// server-side normalization (generated id, upper-cased name) is reconciled.
func (s *Store[T]) Create(ctx context.Context, optimistic T, action func(context.Context) (*T, error)) error {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	tempID := s.id(optimistic)
	s.items = append([]T{optimistic}, s.items...)
	s.mu.Unlock()

	canonical, err := action(ctx)
	if err != nil {
		s.rollback(ctx, snapshot)
		return err
	}

	if canonical != nil {
		s.mu.Lock()
		for i := range s.items {
			if s.id(s.items[i]) == tempID {
				s.items[i] = *canonical
				break
			}
		}
		s.mu.Unlock()
	}
	return nil
}

// Update replaces the row locally, then runs the action. A second update on
// a row whose first is still outstanding is rejected rather than raced.
func (s *Store[T]) Update(ctx context.Context, id string, updated T, action func(context.Context) (*T, error)) error {
	s.mu.Lock()
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return ErrMutationInFlight
	}
	s.inflight[id] = struct{}{}
	snapshot := s.snapshotLocked()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()

	canonical, err := action(ctx)

	s.mu.Lock()
	delete(s.inflight, id)
	s.mu.Unlock()

	if err != nil {
		s.rollback(ctx, snapshot)
		return err
	}
	if canonical != nil {
		s.ApplyUpdated(*canonical)
	}
	return nil
}

// Delete filters the row out locally, then runs the action.
func (s *Store[T]) Delete(ctx context.Context, id string, action func(context.Context) error) error {
	s.mu.Lock()
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		return ErrMutationInFlight
	}
	s.inflight[id] = struct{}{}
	snapshot := s.snapshotLocked()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if s.id(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	err := action(ctx)

	s.mu.Lock()
	delete(s.inflight, id)
	s.mu.Unlock()

	if err != nil {
		s.rollback(ctx, snapshot)
		return err
	}
	return nil
}

// ApplyCreated splices in a row announced by another component. Rows already
// present (for example our own optimistic entry) are left alone.
func (s *Store[T]) ApplyCreated(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
	s.items = append([]T{item}, s.items...)
}

func (s *Store[T]) ApplyUpdated(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
}

func (s *Store[T]) snapshotLocked() []T {
	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// rollback restores the pre-mutation snapshot, then refetches the list as a
// consistency fallback. The reload is best-effort: the snapshot already put
// the view back in a sane state.
func (s *Store[T]) rollback(ctx context.Context, snapshot []T) {
	s.mu.Lock()
	s.items = snapshot
	s.mu.Unlock()

	if err := s.Load(ctx); err != nil {
		log.Printf("list reload after rollback failed: %v", err)
	}
}
