package services

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/pkg/eventbus"
)

// DescendantCache memoizes descendant closures by activity name. Any change
// to the tree drops every entry, since a new node can extend the closure of
// all its ancestors. Each invalidation starts a new generation; a closure read
// under an older generation is not stored.
type DescendantCache struct {
	mu         sync.RWMutex
	entries    map[string][]uuid.UUID
	generation uint64
}

func NewDescendantCache() *DescendantCache {
	return &DescendantCache{entries: make(map[string][]uuid.UUID)}
}

func (c *DescendantCache) Get(name string) ([]uuid.UUID, bool) {
	c.mu.RLock()
	sids, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		cacheLookups.WithLabelValues("hit").Inc()
		return slices.Clone(sids), true
	}
	cacheLookups.WithLabelValues("miss").Inc()
	return nil, false
}

// Generation must be read before loading the closure that is later passed to Set.
func (c *DescendantCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Set stores sids unless the tree changed since generation was read.
func (c *DescendantCache) Set(name string, sids []uuid.UUID, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.entries[name] = slices.Clone(sids)
	return true
}

func (c *DescendantCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	clear(c.entries)
}

func (c *DescendantCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Subscribe wires invalidation to the activity lifecycle events.
func (c *DescendantCache) Subscribe(bus eventbus.EventBus) {
	bus.Subscribe(func(*activity.CreatedEvent) { c.Invalidate() })
	bus.Subscribe(func(*activity.UpdatedEvent) { c.Invalidate() })
	bus.Subscribe(func(*activity.DeletedEvent) { c.Invalidate() })
}
