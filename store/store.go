// Package store keeps the live quote aggregates in memory. Quotes are
// never persisted; they exist for the lifetime of the process, owned by
// the editing surface, and are handed to exporters only as deep copies.
package store

import (
	"errors"
	"fmt"
	"sync"

	"quotebuilder/quote"
)

// ErrNotFound is returned when no quote exists under the given id.
var ErrNotFound = errors.New("quote not found")

// Store is a mutex-guarded registry of quotes keyed by generated id.
// It also tracks the per-quote sending flag so a second send cannot
// start while one is in flight.
type Store struct {
	mu      sync.Mutex
	quotes  map[string]*quote.Quote
	sending map[string]bool
	seq     int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		quotes:  make(map[string]*quote.Quote),
		sending: make(map[string]bool),
	}
}

// Create registers a quote and returns its id.
func (s *Store) Create(q *quote.Quote) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("q%06d", s.seq)
	s.quotes[id] = q
	return id
}

// Get returns a deep copy of the quote, safe to read and render without
// holding any lock.
func (s *Store) Get(id string) (*quote.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return nil, false
	}
	return q.Clone(), true
}

// Update runs fn against the live aggregate while holding the store
// lock. If fn returns an error the aggregate is left as fn left it;
// the quote operations themselves are all-or-nothing, so a failed
// indexed operation never partially applies.
func (s *Store) Update(id string, fn func(q *quote.Quote) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return fmt.Errorf("quote %s: %w", id, ErrNotFound)
	}
	return fn(q)
}

// Delete removes a quote. It reports whether the quote existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.quotes[id]
	delete(s.quotes, id)
	delete(s.sending, id)
	return ok
}

// BeginSend marks the quote as having a send in flight. It returns
// false if a send is already running for that quote.
func (s *Store) BeginSend(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sending[id] {
		return false
	}
	s.sending[id] = true
	return true
}

// EndSend clears the sending flag, regardless of send outcome.
func (s *Store) EndSend(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sending, id)
}
