package mapproj

import "sync"

// cacheULP is the comparison tolerance for cache keys, in floating
// point units in the last place.
const cacheULP = 3

type cacheEntry struct {
	key *Params
	t   *Transform
}

// A TransformCache caches constructed Transforms keyed by the full
// parameter set, avoiding redundant setup cost across repeated calls
// with identical parameters. Reads of already-cached entries never
// block behind construction; duplicate insertion of the same key is
// guarded.
type TransformCache struct {
	mu      sync.RWMutex
	entries []cacheEntry
}

// Get returns a ready Transform for p, constructing and caching one if
// no equal parameter set has been seen before.
func (c *TransformCache) Get(p *Params) (*Transform, error) {
	c.mu.RLock()
	for _, e := range c.entries {
		if e.key.Equal(p, cacheULP) {
			c.mu.RUnlock()
			return e.t, nil
		}
	}
	c.mu.RUnlock()

	// Construct outside the lock so cached readers are never blocked
	// behind setup work.
	t, err := NewTransform(p)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.key.Equal(p, cacheULP) {
			// Another goroutine inserted the same key first.
			return e.t, nil
		}
	}
	c.entries = append(c.entries, cacheEntry{key: p.Copy(), t: t})
	logger.WithField("projection", p.Name).Debug("mapproj: cached transform")
	return t, nil
}

// Len returns the number of cached transforms.
func (c *TransformCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
