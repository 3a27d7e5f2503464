package cache

import (
	"context"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	memoryCapacity   = 10000
	memoryNumShards  = 64
	memoryEvictionPc = 10
)

// memoryEntry carries its own deadline: sturdyc's TTL is client-wide, so the
// per-call TTL is enforced here and the client TTL acts as an eviction
// backstop.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is an in-process cache used when no Redis address is
// configured, and by tests.
type MemoryStore struct {
	client *sturdyc.Client[memoryEntry]
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		client: sturdyc.New[memoryEntry](memoryCapacity, memoryNumShards, ttl, memoryEvictionPc),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	entry, ok := s.client.Get(key)
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.client.Delete(key)
		return nil, false
	}
	return entry.value, true
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.client.Set(key, entry)
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

func (s *MemoryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}
