package market

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock lets tests advance cache time without sleeping.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCache(ttl time.Duration, maxSize int) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewCache(ttl, maxSize)
	c.nowFunc = clock.Now
	return c, clock
}

func TestCachePutGet(t *testing.T) {
	c, _ := newTestCache(time.Hour, 10)

	data := CityMarketData{City: "Pune", CompetitorCount: 8}
	c.Put("Pune", data)

	got, ok := c.Get("Pune")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.CompetitorCount != 8 {
		t.Errorf("expected 8 competitors, got %d", got.CompetitorCount)
	}

	if _, ok := c.Get("Mumbai"); ok {
		t.Error("expected miss for uncached city")
	}
}

func TestCacheExpiry(t *testing.T) {
	c, clock := newTestCache(time.Hour, 10)
	c.Put("Pune", CityMarketData{City: "Pune"})

	clock.Advance(59 * time.Minute)
	if _, ok := c.Get("Pune"); !ok {
		t.Error("entry should still be fresh at 59 minutes")
	}

	clock.Advance(2 * time.Minute)
	if _, ok := c.Get("Pune"); ok {
		t.Error("entry should have expired after the TTL")
	}
}

func TestCacheEvictsExpiredFirst(t *testing.T) {
	c, clock := newTestCache(time.Hour, 4)

	// Two entries that will be expired by insertion time of the overflow.
	c.Put("a", CityMarketData{City: "a"})
	c.Put("b", CityMarketData{City: "b"})
	clock.Advance(2 * time.Hour)
	c.Put("c", CityMarketData{City: "c"})
	c.Put("d", CityMarketData{City: "d"})

	// Cap hit: the sweep removes the expired a and b, keeping fresh entries.
	c.Put("e", CityMarketData{City: "e"})

	if _, ok := c.Get("c"); !ok {
		t.Error("fresh entry c should survive eviction")
	}
	if _, ok := c.Get("e"); !ok {
		t.Error("new entry e should be present")
	}
	if c.Len() > 4 {
		t.Errorf("cache over capacity: %d", c.Len())
	}
}

func TestCacheEvictsOldestExpiryWhenAllFresh(t *testing.T) {
	c, clock := newTestCache(time.Hour, 4)

	// Four fresh entries with staggered expiries.
	for _, city := range []string{"a", "b", "c", "d"} {
		c.Put(city, CityMarketData{City: city})
		clock.Advance(time.Minute)
	}

	// Fifth insert: sweep retains 75% of cap (3 entries), dropping the
	// earliest-expiring "a" before the insert lands.
	c.Put("e", CityMarketData{City: "e"})

	if _, ok := c.Get("a"); ok {
		t.Error("oldest-expiry entry a should have been evicted")
	}
	if _, ok := c.Get("d"); !ok {
		t.Error("newest entry d should survive")
	}
	if _, ok := c.Get("e"); !ok {
		t.Error("inserted entry e should be present")
	}
}

func TestCacheDefaultsOnBadArgs(t *testing.T) {
	c := NewCache(0, -1)
	if c.ttl != DefaultTTL {
		t.Errorf("expected default TTL, got %v", c.ttl)
	}
	if c.maxSize != DefaultMaxSize {
		t.Errorf("expected default max size, got %d", c.maxSize)
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c, _ := newTestCache(time.Hour, 2)
	c.Put("a", CityMarketData{City: "a", CompetitorCount: 1})
	c.Put("b", CityMarketData{City: "b"})

	// Overwriting an existing key at capacity must not trigger a sweep.
	c.Put("a", CityMarketData{City: "a", CompetitorCount: 9})

	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
	got, ok := c.Get("a")
	if !ok || got.CompetitorCount != 9 {
		t.Errorf("expected updated entry, got %+v ok=%v", got, ok)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(time.Hour, 64)
	done := make(chan struct{})

	for w := 0; w < 4; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				city := fmt.Sprintf("city-%d-%d", w, i%16)
				c.Put(city, CityMarketData{City: city})
				c.Get(city)
			}
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}
}
