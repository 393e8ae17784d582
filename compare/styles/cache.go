package styles

import (
	"container/list"
	"fmt"
	"sync"
)

// cacheEntry is the payload stored in each LRU slot. Entries are immutable
// once set — the map value is replaced, never mutated in place.
type cacheEntry struct {
	key   string
	value string
}

// lru is a fixed-capacity, move-to-end-on-access cache. Two independent
// instances back the normalization cache: one for context-free
// ("absolute") values, one for context-dependent ("relative") ones.
type lru struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used
	hits     int64
	misses   int64
}

func newLRU(capacity int) *lru {
	return &lru{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *lru) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *lru) set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if el, ok := c.items[key]; ok {
		el.Value = &cacheEntry{key: key, value: value}
		c.order.MoveToFront(el)
		return
	}

	entry := &cacheEntry{key: key, value: value}
	el := c.order.PushFront(entry)
	c.items[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

func (c *lru) stats() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Cache is the two-tier normalization cache:
// an absolute tier for context-free values and a relative tier, half the
// capacity, for values whose canonical form depends on element context.
type Cache struct {
	absolute *lru
	relative *lru
	enabled  bool
}

// NewCache builds a Cache with the given absolute-tier capacity; the
// relative tier is always half that.
func NewCache(enabled bool, absoluteCapacity int) *Cache {
	relativeCapacity := absoluteCapacity / 2
	if relativeCapacity < 1 {
		relativeCapacity = 1
	}
	return &Cache{
		absolute: newLRU(absoluteCapacity),
		relative: newLRU(relativeCapacity),
		enabled:  enabled,
	}
}

func absoluteKey(property, rawValue string) string {
	return property + ":" + rawValue
}

func relativeKey(property, rawValue, contextFingerprint string) string {
	return property + ":" + rawValue + ":" + contextFingerprint
}

// GetAbsolute looks up a context-free normalization result.
func (c *Cache) GetAbsolute(property, rawValue string) (string, bool) {
	if c == nil || !c.enabled {
		return "", false
	}
	return c.absolute.get(absoluteKey(property, rawValue))
}

// SetAbsolute stores a context-free normalization result.
func (c *Cache) SetAbsolute(property, rawValue, normalized string) {
	if c == nil || !c.enabled {
		return
	}
	c.absolute.set(absoluteKey(property, rawValue), normalized)
}

// GetRelative looks up a context-dependent normalization result.
func (c *Cache) GetRelative(property, rawValue string, context map[string]float64) (string, bool) {
	if c == nil || !c.enabled {
		return "", false
	}
	return c.relative.get(relativeKey(property, rawValue, stableJSON(context)))
}

// SetRelative stores a context-dependent normalization result.
func (c *Cache) SetRelative(property, rawValue string, context map[string]float64, normalized string) {
	if c == nil || !c.enabled {
		return
	}
	c.relative.set(relativeKey(property, rawValue, stableJSON(context)), normalized)
}

// Stats reports hit/miss counts for both tiers, exposed for telemetry.
type Stats struct {
	AbsoluteHits, AbsoluteMisses int64
	RelativeHits, RelativeMisses int64
}

// HitRate returns the combined hit rate across both tiers, for logging.
func (s Stats) HitRate() float64 {
	total := s.AbsoluteHits + s.AbsoluteMisses + s.RelativeHits + s.RelativeMisses
	if total == 0 {
		return 0
	}
	return float64(s.AbsoluteHits+s.RelativeHits) / float64(total)
}

func (s Stats) String() string {
	return fmt.Sprintf("hit_rate=%.2f%% absolute=%d/%d relative=%d/%d",
		s.HitRate()*100, s.AbsoluteHits, s.AbsoluteHits+s.AbsoluteMisses,
		s.RelativeHits, s.RelativeHits+s.RelativeMisses)
}

// Stats returns a snapshot of both tiers' hit/miss counters.
func (c *Cache) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	ah, am := c.absolute.stats()
	rh, rm := c.relative.stats()
	return Stats{AbsoluteHits: ah, AbsoluteMisses: am, RelativeHits: rh, RelativeMisses: rm}
}
