package styles

import "testing"

func TestCacheAbsoluteRoundTrip(t *testing.T) {
	c := NewCache(true, 10)
	c.SetAbsolute("color", "red", "rgba(255, 0, 0, 1)")

	got, ok := c.GetAbsolute("color", "red")
	if !ok || got != "rgba(255, 0, 0, 1)" {
		t.Errorf("GetAbsolute = (%q, %v), want (rgba(255, 0, 0, 1), true)", got, ok)
	}

	if _, ok := c.GetAbsolute("color", "blue"); ok {
		t.Error("expected miss for unset key")
	}
}

func TestCacheRelativeCapacityIsHalfAbsolute(t *testing.T) {
	c := NewCache(true, 10)
	if c.absolute.capacity != 10 {
		t.Errorf("absolute capacity = %d, want 10", c.absolute.capacity)
	}
	if c.relative.capacity != 5 {
		t.Errorf("relative capacity = %d, want 5", c.relative.capacity)
	}
}

func TestCacheRelativeCapacityMinimumOne(t *testing.T) {
	c := NewCache(true, 1)
	if c.relative.capacity != 1 {
		t.Errorf("relative capacity = %d, want 1 (floor)", c.relative.capacity)
	}
}

func TestCacheDisabledNeverStores(t *testing.T) {
	c := NewCache(false, 10)
	c.SetAbsolute("color", "red", "rgba(255, 0, 0, 1)")
	if _, ok := c.GetAbsolute("color", "red"); ok {
		t.Error("expected disabled cache to never return a hit")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(true, 2)
	c.SetAbsolute("color", "a", "1")
	c.SetAbsolute("color", "b", "2")
	c.SetAbsolute("color", "c", "3") // evicts "a"

	if _, ok := c.GetAbsolute("color", "a"); ok {
		t.Error("expected \"a\" to be evicted")
	}
	if v, ok := c.GetAbsolute("color", "b"); !ok || v != "2" {
		t.Error("expected \"b\" to survive")
	}
	if v, ok := c.GetAbsolute("color", "c"); !ok || v != "3" {
		t.Error("expected \"c\" to survive")
	}
}

func TestCacheRelativeKeyIncludesContext(t *testing.T) {
	c := NewCache(true, 10)
	ctxA := map[string]float64{"fontSize": 16}
	ctxB := map[string]float64{"fontSize": 20}

	c.SetRelative("width", "1em", ctxA, "16px")
	c.SetRelative("width", "1em", ctxB, "20px")

	gotA, okA := c.GetRelative("width", "1em", ctxA)
	gotB, okB := c.GetRelative("width", "1em", ctxB)

	if !okA || gotA != "16px" {
		t.Errorf("GetRelative(ctxA) = (%q, %v), want (16px, true)", gotA, okA)
	}
	if !okB || gotB != "20px" {
		t.Errorf("GetRelative(ctxB) = (%q, %v), want (20px, true)", gotB, okB)
	}
}

func TestCacheStatsHitRate(t *testing.T) {
	c := NewCache(true, 10)
	c.SetAbsolute("color", "red", "rgba(255, 0, 0, 1)")
	c.GetAbsolute("color", "red")
	c.GetAbsolute("color", "missing")

	stats := c.Stats()
	if stats.AbsoluteHits != 1 || stats.AbsoluteMisses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
	}
	if rate := stats.HitRate(); rate != 0.5 {
		t.Errorf("HitRate() = %f, want 0.5", rate)
	}
}

func TestCacheNilSafe(t *testing.T) {
	var c *Cache
	if _, ok := c.GetAbsolute("color", "red"); ok {
		t.Error("nil cache should always miss")
	}
	c.SetAbsolute("color", "red", "x") // must not panic
	if stats := c.Stats(); stats.HitRate() != 0 {
		t.Error("nil cache stats should be zero-valued")
	}
}
