package querycache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/wealthnest/client-go/utils/logger"
)

// ErrNotAuthenticated is returned by Read when the gate rejects a non-public
// key, i.e. there is no authenticated session behind the cache.
var ErrNotAuthenticated = errors.New("querycache: read requires an authenticated session")

// Freshness is the state of one cache entry.
type Freshness int

const (
	Absent Freshness = iota
	Stale
	Fresh
)

func (f Freshness) String() string {
	switch f {
	case Fresh:
		return "fresh"
	case Stale:
		return "stale"
	default:
		return "absent"
	}
}

// FetchFunc loads a resource from the server.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value any
	fresh bool
}

// Cache is the process-wide keyed cache of server-fetched resources. Reads of
// a fresh key are served from memory; absent or stale keys are fetched, with
// concurrent reads of the same key sharing a single outstanding request.
// Mutations declare the keys they make stale, and a stale key always refetches
// on its next read.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	gens    map[string]uint64
	group   singleflight.Group
	gate    func() bool
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
	}
}

// SetGate installs the session check applied to reads of non-public keys.
func (c *Cache) SetGate(gate func() bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gate = gate
}

// Read returns the cached value when key is fresh, otherwise fetches, stores
// the result as fresh and returns it. Concurrent reads for the same key while
// a fetch is in flight share that one request.
func (c *Cache) Read(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	gate := c.gate
	c.mu.Unlock()
	// The gate runs unlocked; it may take the session's own lock.
	if gate != nil && !key.public && !gate() {
		return nil, ErrNotAuthenticated
	}

	c.mu.Lock()
	if e, ok := c.entries[key.String()]; ok && e.fresh {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	id := key.String()
	value, err, _ := c.group.Do(id, func() (any, error) {
		c.mu.Lock()
		gen := c.gens[id]
		c.mu.Unlock()

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		// An invalidation that raced the fetch wins: the result is still
		// returned to the caller but not stored as fresh.
		if c.gens[id] == gen {
			c.entries[id] = &entry{value: value, fresh: true}
		}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate marks each key stale and detaches any in-flight fetch for it, so
// a read issued immediately afterwards observes the staleness.
func (c *Cache) Invalidate(keys ...Key) {
	for _, key := range keys {
		id := key.String()
		c.mu.Lock()
		if e, ok := c.entries[id]; ok {
			e.fresh = false
		}
		c.gens[id]++
		c.mu.Unlock()
		c.group.Forget(id)

		logger.LogDebug("cache key invalidated", zap.String("key", id))
	}
}

// Mutate runs op and, only on success, invalidates the declared keys before
// returning. A failed mutation leaves every entry untouched.
func (c *Cache) Mutate(ctx context.Context, op func(ctx context.Context) (any, error), stale ...Key) (any, error) {
	value, err := op(ctx)
	if err != nil {
		return nil, err
	}
	c.Invalidate(stale...)
	return value, nil
}

// State reports the freshness of key.
func (c *Cache) State(key Key) Freshness {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	switch {
	case !ok:
		return Absent
	case e.fresh:
		return Fresh
	default:
		return Stale
	}
}

// Clear evicts every entry. Called on logout so no pre-logout data survives
// into the next session.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.entries {
		c.gens[id]++
		c.group.Forget(id)
	}
	c.entries = make(map[string]*entry)
}

// Fetch is the typed wrapper around Cache.Read.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	value, err := c.Read(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("querycache: key %s holds %T", key, value)
	}
	return typed, nil
}
