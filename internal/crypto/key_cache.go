package crypto

import (
	"context"
	"sync"
)

// KeyCache keeps derived field keys for the lifetime its owner chooses, for
// example one HTTP request or one CLI session. It is safe for concurrent use.
//
// The cipher consults a cache only when one is attached to the context with
// [WithKeyCache]; there is no process-wide cache.
type KeyCache struct {
	mu   sync.Mutex
	keys map[string]*FieldKey
}

// NewKeyCache returns an empty cache.
func NewKeyCache() *KeyCache {
	return &KeyCache{keys: make(map[string]*FieldKey)}
}

// Len returns the number of cached keys.
func (c *KeyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// Reset drops every cached key.
func (c *KeyCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.keys)
}

func (c *KeyCache) get(userID string) (*FieldKey, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, ok := c.keys[userID]
	return key, ok
}

func (c *KeyCache) put(userID string, key *FieldKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys[userID] = key
}

type keyCacheCtxKey struct{}

// WithKeyCache returns a copy of ctx that carries cache.
func WithKeyCache(ctx context.Context, cache *KeyCache) context.Context {
	return context.WithValue(ctx, keyCacheCtxKey{}, cache)
}

func keyCacheFrom(ctx context.Context) *KeyCache {
	cache, _ := ctx.Value(keyCacheCtxKey{}).(*KeyCache)
	return cache
}
