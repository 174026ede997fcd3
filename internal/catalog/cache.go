// Package catalog keeps an in-memory snapshot of the places table so the
// resolution hot path never waits on store I/O. Writes go to the store
// first, then the snapshot is refreshed; readers always see a consistent
// generation.
package catalog

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/myhalal/directory/internal/model"
	"github.com/myhalal/directory/internal/store"
)

// Cache is an id-indexed snapshot of the catalog. All methods are safe for
// concurrent use; reads take a shared lock and never touch the store.
type Cache struct {
	st store.Store

	mu         sync.RWMutex
	byID       map[int64]*model.Place
	order      []int64
	generation uint64
}

// New creates an empty cache over st. Call Reload before serving reads.
func New(st store.Store) *Cache {
	return &Cache{
		st:   st,
		byID: make(map[int64]*model.Place),
	}
}

// Reload replaces the whole snapshot from the store and bumps the
// generation.
func (c *Cache) Reload(ctx context.Context) error {
	places, err := c.st.ListPlaces(ctx)
	if err != nil {
		return eris.Wrap(err, "catalog: reload")
	}

	byID := make(map[int64]*model.Place, len(places))
	order := make([]int64, 0, len(places))
	for i := range places {
		p := places[i]
		byID[p.ID] = &p
		order = append(order, p.ID)
	}

	c.mu.Lock()
	c.byID = byID
	c.order = order
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	zap.L().Debug("catalog: reloaded",
		zap.Int("places", len(places)),
		zap.Uint64("generation", gen),
	)
	return nil
}

// RefreshOne re-reads a single place. A store.ErrNotFound drops the entry
// from the snapshot, which covers deletion.
func (c *Cache) RefreshOne(ctx context.Context, id int64) error {
	p, err := c.st.GetPlace(ctx, id)
	if eris.Is(err, store.ErrNotFound) {
		c.mu.Lock()
		c.dropLocked(id)
		c.generation++
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		return eris.Wrapf(err, "catalog: refresh %d", id)
	}

	c.mu.Lock()
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = p
	c.generation++
	c.mu.Unlock()
	return nil
}

// Snapshot returns the places in id order. The returned slice is a copy;
// the pointed-to places must be treated as read-only.
func (c *Cache) Snapshot() []*model.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*model.Place, 0, len(c.order))
	for _, id := range c.order {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Get returns one place, or nil when it is not in the snapshot.
func (c *Cache) Get(id int64) *model.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byID[id]
}

// Generation returns the snapshot version. It increments on every
// successful Reload or RefreshOne.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Len returns the number of cached places.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

func (c *Cache) dropLocked(id int64) {
	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
