// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMemoryDataKeyStore_BindAndGet(t *testing.T) {
	s := NewMemoryDataKeyStore(time.Hour)

	_, ok := s.GetDataKey("s-1")
	assert.False(t, ok, "unbound session has no key")

	s.Bind("s-1", []byte("0123456789abcdef"))

	key, ok := s.GetDataKey("s-1")
	require.True(t, ok)
	assert.Equal(t, []byte("0123456789abcdef"), key)

	_, ok = s.GetDataKey("s-2")
	assert.False(t, ok)

	_, ok = s.GetDataKey("")
	assert.False(t, ok)
}

func TestMemoryDataKeyStore_KeysAreCopied(t *testing.T) {
	s := NewMemoryDataKeyStore(0)

	original := []byte("0123456789abcdef")
	s.Bind("s-1", original)
	original[0] = 'X'

	got, ok := s.GetDataKey("s-1")
	require.True(t, ok)
	assert.Equal(t, byte('0'), got[0], "binder mutation must not leak into the store")

	got[1] = 'Y'
	again, _ := s.GetDataKey("s-1")
	assert.Equal(t, byte('1'), again[1], "reader mutation must not leak into the store")
}

func TestMemoryDataKeyStore_Expiry(t *testing.T) {
	clock := NewFakeClock(epoch)
	s := NewMemoryDataKeyStore(10*time.Minute, WithClock(clock))

	s.Bind("s-1", []byte("0123456789abcdef"))

	clock.Advance(9 * time.Minute)
	_, ok := s.GetDataKey("s-1")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = s.GetDataKey("s-1")
	assert.False(t, ok, "key is absent once the TTL has passed")
	assert.Equal(t, 1, s.Len(), "expired entry stays until swept")

	assert.Equal(t, 1, s.EvictExpired(clock.Now()))
	assert.Equal(t, 0, s.Len())
}

func TestMemoryDataKeyStore_RebindRestartsTTL(t *testing.T) {
	clock := NewFakeClock(epoch)
	s := NewMemoryDataKeyStore(10*time.Minute, WithClock(clock))

	s.Bind("s-1", []byte("aaaaaaaaaaaaaaaa"))
	clock.Advance(8 * time.Minute)
	s.Bind("s-1", []byte("bbbbbbbbbbbbbbbb"))
	clock.Advance(8 * time.Minute)

	key, ok := s.GetDataKey("s-1")
	require.True(t, ok)
	assert.Equal(t, []byte("bbbbbbbbbbbbbbbb"), key)
}

func TestMemoryDataKeyStore_EvictExpiredKeepsLive(t *testing.T) {
	clock := NewFakeClock(epoch)
	s := NewMemoryDataKeyStore(time.Minute, WithClock(clock))

	s.Bind("old", []byte("0123456789abcdef"))
	clock.Advance(2 * time.Minute)
	s.Bind("new", []byte("0123456789abcdef"))

	assert.Equal(t, 1, s.EvictExpired(clock.Now()))

	_, ok := s.GetDataKey("new")
	assert.True(t, ok)
	_, ok = s.GetDataKey("old")
	assert.False(t, ok)
}

func TestMemoryDataKeyStore_ZeroTTLNeverExpires(t *testing.T) {
	clock := NewFakeClock(epoch)
	s := NewMemoryDataKeyStore(0, WithClock(clock))

	s.Bind("s-1", []byte("0123456789abcdef"))
	clock.Advance(24 * 365 * time.Hour)

	_, ok := s.GetDataKey("s-1")
	assert.True(t, ok)
	assert.Equal(t, 0, s.EvictExpired(clock.Now()))
}

func TestMemoryDataKeyStore_Evict(t *testing.T) {
	s := NewMemoryDataKeyStore(time.Hour)

	s.Bind("s-1", []byte("0123456789abcdef"))
	s.Evict("s-1")
	s.Evict("missing")

	_, ok := s.GetDataKey("s-1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryDataKeyStore_IsolatedInstances(t *testing.T) {
	a := NewMemoryDataKeyStore(time.Hour)
	b := NewMemoryDataKeyStore(time.Hour)

	a.Bind("s-1", []byte("0123456789abcdef"))

	_, ok := b.GetDataKey("s-1")
	assert.False(t, ok)
}

func TestMemoryDataKeyStore_Concurrent(t *testing.T) {
	s := NewMemoryDataKeyStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s-%d", i%4)
			s.Bind(id, []byte("0123456789abcdef"))
			s.GetDataKey(id)
			s.EvictExpired(time.Now())
			if i%8 == 0 {
				s.Evict(id)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 4)
}
