// internal/otp/store.go

// Package otp holds short-lived login codes. The store is an interface so a
// Redis-backed implementation can replace the in-memory one without touching
// the login flow.
package otp

import (
	"sync"
	"time"
)

type Store interface {
	// Put stores code under key, replacing any previous code, expiring after
	// ttl.
	Put(key, code string, ttl time.Duration)
	// Get returns the live code for key, or "" and false when absent or
	// expired.
	Get(key string) (string, bool)
	// Delete removes the code; consuming a code on successful verification
	// goes through here.
	Delete(key string)
}

type entry struct {
	code      string
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	done    chan struct{}
}

func NewMemoryStore() *memoryStore {
	s := &memoryStore{
		entries: make(map[string]entry),
		done:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *memoryStore) Put(key, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{code: code, expiresAt: time.Now().Add(ttl)}
}

func (s *memoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return "", false
	}
	return e.code, true
}

func (s *memoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *memoryStore) Close() {
	close(s.done)
}

func (s *memoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
