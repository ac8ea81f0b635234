package staticdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/riftwatch/riot-client/pkg/cache"
)

var staticLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "riot_static_data_loads_total",
	Help: "Total reference collection loads by kind",
}, []string{"kind"})

// DefaultBaseURL is the Data Dragon CDN.
const DefaultBaseURL = "https://ddragon.leagueoflegends.com"

// Collection kind names, used for load counts and metrics.
const (
	kindChampion = "champion"
	kindItem     = "item"
	kindSpell    = "summoner-spell"
	kindRune     = "rune"
)

// championIndex holds the immutable champion lookups.
type championIndex struct {
	byID   map[int]*Champion
	byName map[string]*Champion // lowercase key and display name
}

type spellIndex struct {
	byID   map[int]*SummonerSpell
	byName map[string]*SummonerSpell
}

// Resolver loads the versioned reference dataset and serves id and name
// lookups from in-memory indexes.
type Resolver struct {
	httpClient *http.Client
	cache      *cache.Store
	baseURL    string
	logger     zerolog.Logger

	version   atomic.Pointer[string]
	champions atomic.Pointer[championIndex]
	items     atomic.Pointer[map[int]*Item]
	spells    atomic.Pointer[spellIndex]
	runes     atomic.Pointer[map[int]*Rune]
}

// NewResolver creates a resolver sharing the client's cache store. baseURL
// overrides the Data Dragon CDN (for testing); empty uses DefaultBaseURL.
func NewResolver(store *cache.Store, baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resolver{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      store,
		baseURL:    baseURL,
		logger:     log.With().Str("component", "static-data").Logger(),
	}
}

func (r *Resolver) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Version returns the current dataset version, fetching it from the CDN at
// most once per cache TTL. Every reference URL embeds this version.
func (r *Resolver) Version(ctx context.Context) (string, error) {
	key := cache.Key{Endpoint: "/api/versions.json"}.String()
	if v, ok := cache.Lookup[string](r.cache, cache.NamespaceVersions, key); ok {
		return v, nil
	}

	var versions []string
	if err := r.fetch(ctx, "/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("versions.json is empty")
	}

	r.cache.Set(cache.NamespaceVersions, key, versions[0])
	return versions[0], nil
}

// LoadAll fetches the four reference collections for the current version
// concurrently and rebuilds their indexes. Each index is published with an
// atomic swap only once fully built.
func (r *Resolver) LoadAll(ctx context.Context) error {
	version, err := r.Version(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.loadChampions(gctx, version) })
	g.Go(func() error { return r.loadItems(gctx, version) })
	g.Go(func() error { return r.loadSpells(gctx, version) })
	g.Go(func() error { return r.loadRunes(gctx, version) })
	if err := g.Wait(); err != nil {
		return err
	}

	r.version.Store(&version)
	r.logger.Info().
		Str("version", version).
		Int("champions", len(r.champions.Load().byID)).
		Int("items", len(*r.items.Load())).
		Msg("Reference dataset loaded")
	return nil
}

func (r *Resolver) dataPath(version, file string) string {
	return fmt.Sprintf("/cdn/%s/data/en_US/%s", version, file)
}

func (r *Resolver) loadChampions(ctx context.Context, version string) error {
	path := r.dataPath(version, "champion.json")
	key := cache.Key{Endpoint: path}.String()

	file, ok := cache.Lookup[*championFile](r.cache, cache.NamespaceStaticData, key)
	if !ok {
		file = &championFile{}
		if err := r.fetch(ctx, path, file); err != nil {
			return err
		}
		r.cache.Set(cache.NamespaceStaticData, key, file)
	}

	idx := &championIndex{
		byID:   make(map[int]*Champion, len(file.Data)),
		byName: make(map[string]*Champion, 2*len(file.Data)),
	}
	for _, rec := range file.Data {
		id, err := strconv.Atoi(rec.Key)
		if err != nil {
			r.logger.Warn().Str("champion", rec.ID).Msg("Skipping champion with non-numeric key")
			continue
		}
		ch := &Champion{ID: id, Key: rec.ID, Name: rec.Name, Title: rec.Title}
		idx.byID[id] = ch
		// Indexed under both its internal identifier ("monkeyking") and its
		// display name ("wukong").
		idx.byName[strings.ToLower(rec.ID)] = ch
		idx.byName[strings.ToLower(rec.Name)] = ch
	}

	r.champions.Store(idx)
	staticLoadsTotal.WithLabelValues(kindChampion).Inc()
	return nil
}

func (r *Resolver) loadItems(ctx context.Context, version string) error {
	path := r.dataPath(version, "item.json")
	key := cache.Key{Endpoint: path}.String()

	file, ok := cache.Lookup[*itemFile](r.cache, cache.NamespaceStaticData, key)
	if !ok {
		file = &itemFile{}
		if err := r.fetch(ctx, path, file); err != nil {
			return err
		}
		r.cache.Set(cache.NamespaceStaticData, key, file)
	}

	idx := make(map[int]*Item, len(file.Data))
	for idStr, rec := range file.Data {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		idx[id] = &Item{
			ID:        id,
			Name:      rec.Name,
			Plaintext: rec.Plaintext,
			GoldTotal: rec.Gold.Total,
		}
	}

	r.items.Store(&idx)
	staticLoadsTotal.WithLabelValues(kindItem).Inc()
	return nil
}

func (r *Resolver) loadSpells(ctx context.Context, version string) error {
	path := r.dataPath(version, "summoner.json")
	key := cache.Key{Endpoint: path}.String()

	file, ok := cache.Lookup[*spellFile](r.cache, cache.NamespaceStaticData, key)
	if !ok {
		file = &spellFile{}
		if err := r.fetch(ctx, path, file); err != nil {
			return err
		}
		r.cache.Set(cache.NamespaceStaticData, key, file)
	}

	idx := &spellIndex{
		byID:   make(map[int]*SummonerSpell, len(file.Data)),
		byName: make(map[string]*SummonerSpell, 2*len(file.Data)),
	}
	for _, rec := range file.Data {
		id, err := strconv.Atoi(rec.Key)
		if err != nil {
			continue
		}
		sp := &SummonerSpell{ID: id, Key: rec.ID, Name: rec.Name}
		idx.byID[id] = sp
		idx.byName[strings.ToLower(rec.ID)] = sp
		idx.byName[strings.ToLower(rec.Name)] = sp
	}

	r.spells.Store(idx)
	staticLoadsTotal.WithLabelValues(kindSpell).Inc()
	return nil
}

func (r *Resolver) loadRunes(ctx context.Context, version string) error {
	path := r.dataPath(version, "runesReforged.json")
	key := cache.Key{Endpoint: path}.String()

	styles, ok := cache.Lookup[[]runeStyle](r.cache, cache.NamespaceStaticData, key)
	if !ok {
		if err := r.fetch(ctx, path, &styles); err != nil {
			return err
		}
		r.cache.Set(cache.NamespaceStaticData, key, styles)
	}

	idx := make(map[int]*Rune)
	for _, style := range styles {
		idx[style.ID] = &Rune{ID: style.ID, Key: style.Key, Name: style.Name, Style: true}
		for _, slot := range style.Slots {
			for _, rec := range slot.Runes {
				idx[rec.ID] = &Rune{ID: rec.ID, Key: rec.Key, Name: rec.Name}
			}
		}
	}

	r.runes.Store(&idx)
	staticLoadsTotal.WithLabelValues(kindRune).Inc()
	return nil
}

// ChampionByID resolves a numeric champion id.
func (r *Resolver) ChampionByID(id int) (*Champion, bool) {
	idx := r.champions.Load()
	if idx == nil {
		return nil, false
	}
	ch, ok := idx.byID[id]
	return ch, ok
}

// ChampionByName resolves a champion by internal identifier or display name,
// case-insensitively.
func (r *Resolver) ChampionByName(name string) (*Champion, bool) {
	idx := r.champions.Load()
	if idx == nil {
		return nil, false
	}
	ch, ok := idx.byName[strings.ToLower(name)]
	return ch, ok
}

// Item resolves a numeric item id. Id 0 is the reserved "empty slot"
// sentinel and always resolves to absent.
func (r *Resolver) Item(id int) (*Item, bool) {
	if id == 0 {
		return nil, false
	}
	idx := r.items.Load()
	if idx == nil {
		return nil, false
	}
	item, ok := (*idx)[id]
	return item, ok
}

// SummonerSpell resolves a numeric summoner spell id.
func (r *Resolver) SummonerSpell(id int) (*SummonerSpell, bool) {
	idx := r.spells.Load()
	if idx == nil {
		return nil, false
	}
	sp, ok := idx.byID[id]
	return sp, ok
}

// SummonerSpellByName resolves a summoner spell by identifier or display
// name, case-insensitively.
func (r *Resolver) SummonerSpellByName(name string) (*SummonerSpell, bool) {
	idx := r.spells.Load()
	if idx == nil {
		return nil, false
	}
	sp, ok := idx.byName[strings.ToLower(name)]
	return sp, ok
}

// Rune resolves a numeric rune or rune style id.
func (r *Resolver) Rune(id int) (*Rune, bool) {
	idx := r.runes.Load()
	if idx == nil {
		return nil, false
	}
	ru, ok := (*idx)[id]
	return ru, ok
}

// LoadedVersion returns the version of the dataset currently indexed, or ""
// before the first successful LoadAll.
func (r *Resolver) LoadedVersion() string {
	if v := r.version.Load(); v != nil {
		return *v
	}
	return ""
}

// Counts returns the number of indexed entities per kind.
func (r *Resolver) Counts() map[string]int {
	counts := map[string]int{
		kindChampion: 0,
		kindItem:     0,
		kindSpell:    0,
		kindRune:     0,
	}
	if idx := r.champions.Load(); idx != nil {
		counts[kindChampion] = len(idx.byID)
	}
	if idx := r.items.Load(); idx != nil {
		counts[kindItem] = len(*idx)
	}
	if idx := r.spells.Load(); idx != nil {
		counts[kindSpell] = len(idx.byID)
	}
	if idx := r.runes.Load(); idx != nil {
		counts[kindRune] = len(*idx)
	}
	return counts
}
