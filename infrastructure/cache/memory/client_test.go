package memory

import (
	"context"
	"errors"
	"testing"
	"time"
)

const searchKey = "search:serpapi:ja-jp:jp:Tokyo Tower"

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := []byte(`{"results":[{"title":"東京タワー"}]}`)
	if err := cache.Set(ctx, searchKey, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, searchKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", got, value)
	}
}

func TestMemoryCache_Get_ReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := []byte("original")
	cache.Set(ctx, searchKey, value, time.Hour)
	value[0] = 'X'

	got, _ := cache.Get(ctx, searchKey)
	got[1] = 'Y'

	again, _ := cache.Get(ctx, searchKey)
	if string(again) != "original" {
		t.Errorf("cached value was mutated: %s", again)
	}
}

func TestMemoryCache_Get_Missing(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "non-existent")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, searchKey, []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, searchKey); err == nil {
		t.Error("Get should return error for expired key")
	}
}

func TestMemoryCache_ZeroTTLDoesNotExpire(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, searchKey, []byte("value"), 0)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, searchKey); err != nil {
		t.Errorf("zero TTL value expired: %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, searchKey, []byte("value"), time.Hour)
	if err := cache.Delete(ctx, searchKey); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, searchKey); err == nil {
		t.Error("key still present after Delete")
	}
	if err := cache.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, searchKey, []byte("v"), time.Hour); err == nil {
		t.Error("Set should fail with cancelled context")
	}
	if _, err := cache.Get(ctx, searchKey); err == nil {
		t.Error("Get should fail with cancelled context")
	}
	if err := cache.Delete(ctx, searchKey); err == nil {
		t.Error("Delete should fail with cancelled context")
	}
}
