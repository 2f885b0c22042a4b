// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bytes"
	"sync"
	"time"
)

type entry struct {
	key       []byte
	expiresAt time.Time
}

// MemoryDataKeyStore is an in-memory [DataKeyStore] with per-entry TTL.
// Keys are copied on the way in and on the way out, so neither the binder
// nor a reader can mutate the stored key.
type MemoryDataKeyStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   Clock
}

// Option configures a MemoryDataKeyStore.
type Option func(*MemoryDataKeyStore)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *MemoryDataKeyStore) {
		s.clock = c
	}
}

// NewMemoryDataKeyStore creates an empty store. A ttl of zero means keys
// never expire on their own.
func NewMemoryDataKeyStore(ttl time.Duration, opts ...Option) *MemoryDataKeyStore {
	s := &MemoryDataKeyStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   systemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind associates key with sessionID, replacing any previous binding and
// restarting the TTL.
func (s *MemoryDataKeyStore) Bind(sessionID string, key []byte) {
	e := entry{key: bytes.Clone(key)}
	if s.ttl > 0 {
		e.expiresAt = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[sessionID]; ok {
		wipe(old.key)
	}
	s.entries[sessionID] = e
}

// GetDataKey implements [DataKeyStore].
func (s *MemoryDataKeyStore) GetDataKey(sessionID string) ([]byte, bool) {
	if sessionID == "" {
		return nil, false
	}

	now := s.clock.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[sessionID]
	if !ok || e.expired(now) {
		return nil, false
	}
	return bytes.Clone(e.key), true
}

// Evict removes the key bound to sessionID, if any.
func (s *MemoryDataKeyStore) Evict(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[sessionID]; ok {
		wipe(e.key)
		delete(s.entries, sessionID)
	}
}

// EvictExpired removes every entry expired at now and returns how many were
// removed.
func (s *MemoryDataKeyStore) EvictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		if e.expired(now) {
			wipe(e.key)
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of bound sessions, expired or not.
func (s *MemoryDataKeyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func wipe(b []byte) {
	clear(b)
}
