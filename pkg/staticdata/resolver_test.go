package staticdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/riftwatch/riot-client/pkg/cache"
)

const (
	championJSON = `{"type":"champion","version":"14.1.1","data":{
		"MonkeyKing":{"id":"MonkeyKing","key":"62","name":"Wukong","title":"the Monkey King"},
		"Ahri":{"id":"Ahri","key":"103","name":"Ahri","title":"the Nine-Tailed Fox"}}}`
	itemJSON = `{"data":{
		"1001":{"name":"Boots","plaintext":"Slightly increases Move Speed","gold":{"total":300}},
		"3006":{"name":"Berserker's Greaves","gold":{"total":1100}}}}`
	summonerJSON = `{"data":{
		"SummonerFlash":{"id":"SummonerFlash","key":"4","name":"Flash"},
		"SummonerDot":{"id":"SummonerDot","key":"14","name":"Ignite"}}}`
	runesJSON = `[{"id":8000,"key":"Precision","name":"Precision","slots":[
		{"runes":[{"id":8005,"key":"PressTheAttack","name":"Press the Attack"}]}]}]`
)

type mockCDN struct {
	server *httptest.Server
	mu     sync.Mutex
	counts map[string]int
}

func newMockCDN(t *testing.T) *mockCDN {
	t.Helper()

	m := &mockCDN{counts: make(map[string]int)}
	mux := http.NewServeMux()
	serve := func(path, body string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			m.mu.Lock()
			m.counts[path]++
			m.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		})
	}
	serve("/api/versions.json", `["14.1.1","14.1.0","13.24.1"]`)
	serve("/cdn/14.1.1/data/en_US/champion.json", championJSON)
	serve("/cdn/14.1.1/data/en_US/item.json", itemJSON)
	serve("/cdn/14.1.1/data/en_US/summoner.json", summonerJSON)
	serve("/cdn/14.1.1/data/en_US/runesReforged.json", runesJSON)

	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

func (m *mockCDN) count(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[path]
}

func testResolver(t *testing.T) (*Resolver, *mockCDN) {
	t.Helper()
	cdn := newMockCDN(t)
	store := cache.NewStore(cache.DefaultConfig())
	return NewResolver(store, cdn.server.URL), cdn
}

func TestResolver_Version(t *testing.T) {
	r, cdn := testResolver(t)
	ctx := context.Background()

	v, err := r.Version(ctx)
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != "14.1.1" {
		t.Errorf("version = %s, want 14.1.1", v)
	}

	// Served from cache on repeat.
	if _, err := r.Version(ctx); err != nil {
		t.Fatalf("cached Version failed: %v", err)
	}
	if cdn.count("/api/versions.json") != 1 {
		t.Errorf("version fetches = %d, want 1", cdn.count("/api/versions.json"))
	}
}

func TestResolver_LoadAllAndResolve(t *testing.T) {
	r, _ := testResolver(t)

	if err := r.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if r.LoadedVersion() != "14.1.1" {
		t.Errorf("loaded version = %s, want 14.1.1", r.LoadedVersion())
	}

	ch, ok := r.ChampionByID(62)
	if !ok {
		t.Fatal("champion 62 should resolve")
	}
	if ch.Key != "MonkeyKing" || ch.Name != "Wukong" {
		t.Errorf("champion 62 = %+v, want MonkeyKing/Wukong", ch)
	}

	item, ok := r.Item(1001)
	if !ok || item.Name != "Boots" {
		t.Errorf("item 1001 = %+v, want Boots", item)
	}

	sp, ok := r.SummonerSpell(4)
	if !ok || sp.Name != "Flash" {
		t.Errorf("spell 4 = %+v, want Flash", sp)
	}

	style, ok := r.Rune(8000)
	if !ok || !style.Style {
		t.Errorf("rune 8000 = %+v, want a style record", style)
	}
	ru, ok := r.Rune(8005)
	if !ok || ru.Name != "Press the Attack" {
		t.Errorf("rune 8005 = %+v, want Press the Attack", ru)
	}
}

func TestResolver_ChampionByName_CaseInsensitive(t *testing.T) {
	r, _ := testResolver(t)
	if err := r.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// Indexed under both internal identifier and display name.
	for _, name := range []string{"wukong", "WUKONG", "MonkeyKing", "monkeyking", "Ahri", "ahri"} {
		if _, ok := r.ChampionByName(name); !ok {
			t.Errorf("ChampionByName(%q) should resolve", name)
		}
	}
	if _, ok := r.ChampionByName("Teemo"); ok {
		t.Error("unknown champion should not resolve")
	}
}

func TestResolver_ItemZeroSentinel(t *testing.T) {
	r, _ := testResolver(t)

	// Id 0 is the empty-slot sentinel, absent regardless of index state.
	if _, ok := r.Item(0); ok {
		t.Error("item 0 must resolve to absent before load")
	}
	if err := r.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if _, ok := r.Item(0); ok {
		t.Error("item 0 must resolve to absent after load")
	}
}

func TestResolver_LookupsBeforeLoad(t *testing.T) {
	store := cache.NewStore(cache.DefaultConfig())
	r := NewResolver(store, "http://unreachable.invalid")

	if _, ok := r.ChampionByID(62); ok {
		t.Error("lookups before load must miss, not fetch")
	}
	if _, ok := r.SummonerSpellByName("flash"); ok {
		t.Error("lookups before load must miss")
	}
	if r.LoadedVersion() != "" {
		t.Errorf("loaded version = %q before load, want empty", r.LoadedVersion())
	}
}

func TestResolver_Counts(t *testing.T) {
	r, _ := testResolver(t)
	if err := r.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	counts := r.Counts()
	want := map[string]int{
		"champion":       2,
		"item":           2,
		"summoner-spell": 2,
		"rune":           2, // one style + one rune
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("counts[%s] = %d, want %d", kind, counts[kind], n)
		}
	}
}

func TestResolver_ReloadUsesCachedPayloads(t *testing.T) {
	r, cdn := testResolver(t)
	ctx := context.Background()

	if err := r.LoadAll(ctx); err != nil {
		t.Fatalf("first LoadAll failed: %v", err)
	}
	if err := r.LoadAll(ctx); err != nil {
		t.Fatalf("second LoadAll failed: %v", err)
	}

	// Payloads are cached; the rebuild must not refetch within TTL.
	if got := cdn.count("/cdn/14.1.1/data/en_US/champion.json"); got != 1 {
		t.Errorf("champion fetches = %d, want 1", got)
	}
}

func TestResolver_ConcurrentResolveDuringReload(t *testing.T) {
	r, _ := testResolver(t)
	ctx := context.Background()
	if err := r.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		deadline := time.Now().Add(100 * time.Millisecond)
		for time.Now().Before(deadline) {
			// Either the old or the new complete index: the lookup must
			// never fail mid-swap.
			if _, ok := r.ChampionByID(62); !ok {
				t.Error("champion 62 disappeared during reload")
				return
			}
		}
	}()

	for i := 0; i < 5; i++ {
		if err := r.LoadAll(ctx); err != nil {
			t.Fatalf("reload failed: %v", err)
		}
	}
	<-done
}
