package revocation

import (
	"context"
	"sync"
	"time"

	"pixelforge/internal/domain/repository"
)

// MemoryStore is an in-process revocation list for single-instance deployments and tests.
// Entries are dropped lazily on lookup and by a janitor goroutine.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
}

var _ repository.TokenRevocationRepository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. Call Start to run the janitor.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke adds tokenID until expiresAt. It returns false if already present or expired.
func (s *MemoryStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	now := s.now()
	if !expiresAt.After(now) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.entries[tokenID]; ok && exp.After(now) {
		return false, nil
	}
	s.entries[tokenID] = expiresAt

	return true, nil
}

// IsRevoked reports whether tokenID is on the list.
func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	now := s.now()

	s.mu.RLock()
	exp, ok := s.entries[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if !exp.After(now) {
		s.mu.Lock()
		delete(s.entries, tokenID)
		s.mu.Unlock()

		return false, nil
	}

	return true, nil
}

// Len returns the number of entries, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Sweep removes expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	for id, exp := range s.entries {
		if !exp.After(now) {
			delete(s.entries, id)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

// Start runs the janitor every interval until Stop is called.
func (s *MemoryStore) Start(interval time.Duration) {
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Stop halts the janitor and waits for it to exit.
func (s *MemoryStore) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}
