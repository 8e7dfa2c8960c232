package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before set.
	_, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "layout:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "payload" {
		t.Errorf("Get = (%q, %v), want (payload, true)", data, hit)
	}

	// Expired entries are treated as misses.
	if err := c.Set(ctx, "layout:old", []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	_, hit, _ = c.Get(ctx, "layout:old")
	if hit {
		t.Error("expired entry should be a miss")
	}

	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "layout:abc")
	if hit {
		t.Error("deleted entry should be a miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "layout:never"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h3 := Hash([]byte("world")); h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.TreeKey("user:42", "cab-1"); got != "tree:user:42:cab-1" {
		t.Errorf("TreeKey unexpected: %s", got)
	}

	// LayoutKey must fold options into the hash.
	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{CabinetWidthMM: 600, CabinetHeightMM: 2000})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{CabinetWidthMM: 800, CabinetHeightMM: 2000})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	lk3 := k.LayoutKey("hash456", LayoutKeyOpts{CabinetWidthMM: 600, CabinetHeightMM: 2000})
	if lk1 == lk3 {
		t.Error("Different tree hashes should produce different keys")
	}

	// Same inputs must be stable across calls.
	if lk1 != k.LayoutKey("hash123", LayoutKeyOpts{CabinetWidthMM: 600, CabinetHeightMM: 2000}) {
		t.Error("LayoutKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "user:abc:")

	if got := scoped.TreeKey("ns", "id"); got != "user:abc:"+base.TreeKey("ns", "id") {
		t.Errorf("scoped TreeKey unexpected: %s", got)
	}
	if scoped.LayoutKey("h", LayoutKeyOpts{}) == base.LayoutKey("h", LayoutKeyOpts{}) {
		t.Error("scoped key should differ from unscoped")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Non-retryable errors fail immediately.
	calls := 0
	hard := errors.New("boom")
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return hard
	})
	if !errors.Is(err, hard) || calls != 1 {
		t.Errorf("hard error: calls=%d err=%v", calls, err)
	}

	// Retryable errors are attempted up to three times.
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 3 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("retryable: calls=%d err=%v", calls, err)
	}
}
