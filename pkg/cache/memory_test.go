package cache

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopauth/shopauth/core"
)

func testSession(id string) *core.Session {
	now := time.Now()
	return &core.Session{
		ID:        id,
		UserID:    "user-1",
		TokenHash: "hash-" + id,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInMemoryCache_SetGet(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{TTL: time.Minute, MaxSize: 10})
	session := testSession("s1")

	if err := c.Set(session.TokenHash, session); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := c.Get(session.TokenHash)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "s1" {
		t.Errorf("Get() session = %s, want s1", got.ID)
	}

	if _, err := c.Get("missing"); !errors.Is(err, core.ErrCacheNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrCacheNotFound", err)
	}
}

func TestInMemoryCache_TTLExpiry(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{TTL: 10 * time.Millisecond, MaxSize: 10})
	session := testSession("s1")
	c.Set(session.TokenHash, session)

	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(session.TokenHash); !errors.Is(err, core.ErrCacheNotFound) {
		t.Fatalf("Get() after TTL error = %v, want ErrCacheNotFound", err)
	}
	if c.Len() != 0 {
		t.Error("expired entry should be removed on read")
	}
}

func TestInMemoryCache_Delete(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{TTL: time.Minute, MaxSize: 10})
	session := testSession("s1")
	c.Set(session.TokenHash, session)

	if err := c.Delete(session.TokenHash); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := c.Get(session.TokenHash); !errors.Is(err, core.ErrCacheNotFound) {
		t.Error("deleted entry should be gone")
	}

	// Deleting again is a no-op.
	if err := c.Delete(session.TokenHash); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestInMemoryCache_Clear(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{TTL: time.Minute, MaxSize: 10})
	for i := 0; i < 5; i++ {
		s := testSession(fmt.Sprintf("s%d", i))
		c.Set(s.TokenHash, s)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestInMemoryCache_EvictsWhenFull(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{TTL: time.Minute, MaxSize: 3})
	for i := 0; i < 5; i++ {
		s := testSession(fmt.Sprintf("s%d", i))
		c.Set(s.TokenHash, s)
	}

	if c.Len() > 3 {
		t.Errorf("Len() = %d, want at most 3", c.Len())
	}
	if c.Stats().Evictions == 0 {
		t.Error("filling past capacity should record evictions")
	}
}

func TestInMemoryCache_Stats(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{TTL: time.Minute, MaxSize: 10})
	session := testSession("s1")
	c.Set(session.TokenHash, session)

	c.Get(session.TokenHash) // hit
	c.Get("missing")         // miss
	c.Delete(session.TokenHash)

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Sets = %d, want 1", stats.Sets)
	}
	if stats.Deletes != 1 {
		t.Errorf("Deletes = %d, want 1", stats.Deletes)
	}
	if stats.TTL != time.Minute {
		t.Errorf("TTL = %v, want 1m", stats.TTL)
	}
}

func TestInMemoryCache_Defaults(t *testing.T) {
	c := NewInMemoryCache(core.CacheConfig{})
	stats := c.Stats()
	if stats.TTL != 5*time.Minute {
		t.Errorf("default TTL = %v, want 5m", stats.TTL)
	}
}

// InMemoryCache must satisfy the extended cache port.
var _ core.CacheWithStats = (*InMemoryCache)(nil)
