package engine

import "gobang/internal/gobang"

// evalCache maps a position fingerprint to its static value, split by the
// colour being evaluated. Entries live for the whole game; a table that
// outgrows its cap is dropped and started again.
type evalCache struct {
	cap int
	m   [2]map[uint64]int
}

func newEvalCache(capacity int) *evalCache {
	if capacity <= 0 {
		capacity = defaultEvalCacheCap
	}
	c := &evalCache{cap: capacity}
	for i := range c.m {
		c.m[i] = make(map[uint64]int, 1<<12)
	}
	return c
}

func (c *evalCache) get(color gobang.Color, key uint64) (int, bool) {
	v, ok := c.m[color][key]
	return v, ok
}

func (c *evalCache) store(color gobang.Color, key uint64, score int) {
	if len(c.m[color]) >= c.cap {
		c.m[color] = make(map[uint64]int, 1<<12)
	}
	c.m[color][key] = score
}

func (c *evalCache) len() int { return len(c.m[0]) + len(c.m[1]) }
