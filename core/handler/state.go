package handler

import (
	"context"
	"sync"
)

// State guards the single shared application value that all concurrent
// request chains see. Access goes through View and Update so lock acquisition
// and release are bracketed inside one call: a handler can never return while
// still holding the lock, so a later step in the same chain is never
// deadlocked by an earlier one.
type State[S any] struct {
	mu    sync.RWMutex
	value S
}

// NewState creates a State holding value.
func NewState[S any](value S) *State[S] {
	return &State[S]{value: value}
}

// View runs fn with shared (read) access to the state. It returns ctx.Err()
// if the context is already done, otherwise whatever fn returns. fn must not
// retain the value past its return.
func (s *State[S]) View(ctx context.Context, fn func(S) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.value)
}

// Update runs fn with exclusive (write) access to the state. It returns
// ctx.Err() if the context is already done, otherwise whatever fn returns.
// fn must not retain the pointer past its return.
func (s *State[S]) Update(ctx context.Context, fn func(*S) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.value)
}

// Snapshot returns a copy of the current state value.
func (s *State[S]) Snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}
