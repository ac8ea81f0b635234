package cache

import (
	"fmt"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		"profile": {Capacity: 3, TTL: 50 * time.Millisecond},
		"match":   {Capacity: 2, TTL: time.Hour},
	}
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("profile", "k1", "value-1")

	v, ok := store.Get("profile", "k1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if v != "value-1" {
		t.Errorf("value = %v, want value-1", v)
	}
}

func TestStore_Get_Miss(t *testing.T) {
	store := NewStore(testConfig())

	if _, ok := store.Get("profile", "missing"); ok {
		t.Error("expected cache miss for unknown key")
	}
	if _, ok := store.Get("unknown-namespace", "k1"); ok {
		t.Error("expected cache miss for unknown namespace")
	}
}

func TestStore_Get_Expired(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("profile", "k1", "value-1")
	time.Sleep(60 * time.Millisecond)

	if _, ok := store.Get("profile", "k1"); ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestStore_SetTTL_Override(t *testing.T) {
	store := NewStore(testConfig())

	// Namespace default is one hour; override to something tiny.
	store.SetTTL("match", "m1", "detail", 20*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Get("match", "m1"); ok {
		t.Error("expected miss after override TTL elapsed")
	}
}

func TestStore_LRUEviction(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("match", "m1", 1)
	store.Set("match", "m2", 2)

	// Touch m1 so m2 becomes least recently used.
	if _, ok := store.Get("match", "m1"); !ok {
		t.Fatal("expected hit for m1")
	}

	store.Set("match", "m3", 3)

	if _, ok := store.Get("match", "m2"); ok {
		t.Error("m2 should have been evicted as least recently used")
	}
	if _, ok := store.Get("match", "m1"); !ok {
		t.Error("m1 should have survived eviction")
	}
	if _, ok := store.Get("match", "m3"); !ok {
		t.Error("m3 should be present")
	}
}

func TestStore_EvictsExactlyOne(t *testing.T) {
	store := NewStore(Config{"ns": {Capacity: 5, TTL: time.Hour}})

	for i := 0; i < 6; i++ {
		store.Set("ns", fmt.Sprintf("k%d", i), i)
	}

	stats := store.Stats()["ns"]
	if stats.Size != 5 {
		t.Errorf("size = %d, want 5", stats.Size)
	}
	if _, ok := store.Get("ns", "k0"); ok {
		t.Error("k0 should have been evicted")
	}
	for i := 1; i < 6; i++ {
		if _, ok := store.Get("ns", fmt.Sprintf("k%d", i)); !ok {
			t.Errorf("k%d should still be cached", i)
		}
	}
}

func TestStore_Replace_DoesNotEvict(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("match", "m1", 1)
	store.Set("match", "m2", 2)
	store.Set("match", "m1", 10)

	if _, ok := store.Get("match", "m2"); !ok {
		t.Error("replacing an existing key must not evict")
	}
	v, _ := store.Get("match", "m1")
	if v != 10 {
		t.Errorf("m1 = %v, want 10", v)
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("profile", "k1", "v")
	store.Delete("profile", "k1")

	if _, ok := store.Get("profile", "k1"); ok {
		t.Error("expected miss after delete")
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("profile", "k1", "v")
	store.Set("match", "m1", "v")

	store.Clear("profile")
	if _, ok := store.Get("profile", "k1"); ok {
		t.Error("profile should be cleared")
	}
	if _, ok := store.Get("match", "m1"); !ok {
		t.Error("match should be untouched")
	}

	store.Clear()
	if _, ok := store.Get("match", "m1"); ok {
		t.Error("clearing with no arguments should clear all namespaces")
	}
}

func TestStore_Disabled(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("match", "m1", "kept")
	store.SetEnabled(false)

	if _, ok := store.Get("match", "m1"); ok {
		t.Error("disabled store must always miss")
	}
	store.Set("match", "m2", "dropped")

	store.SetEnabled(true)

	if _, ok := store.Get("match", "m1"); !ok {
		t.Error("entry cached before disabling should survive re-enable")
	}
	if _, ok := store.Get("match", "m2"); ok {
		t.Error("writes during disabled period must not be replayed")
	}
}

func TestStore_Stats(t *testing.T) {
	store := NewStore(testConfig())

	store.Set("profile", "k1", "v")
	store.Set("profile", "k2", "v")

	stats := store.Stats()
	if got := stats["profile"]; got.Size != 2 || got.Capacity != 3 {
		t.Errorf("profile stats = %+v, want size 2 capacity 3", got)
	}
	if got := stats["match"]; got.Size != 0 || got.Capacity != 2 {
		t.Errorf("match stats = %+v, want size 0 capacity 2", got)
	}
}

func TestLookup_Typed(t *testing.T) {
	store := NewStore(testConfig())

	type matchDTO struct{ ID string }
	store.Set("match", "m1", &matchDTO{ID: "EUW1_1"})

	got, ok := Lookup[*matchDTO](store, "match", "m1")
	if !ok {
		t.Fatal("expected typed hit")
	}
	if got.ID != "EUW1_1" {
		t.Errorf("ID = %s, want EUW1_1", got.ID)
	}

	if _, ok := Lookup[string](store, "match", "m1"); ok {
		t.Error("mismatched type must miss")
	}
}
