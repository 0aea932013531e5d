package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

const charizardJSON = `{
	"name": "charizard",
	"stats": [
		{"base_stat": 78, "stat": {"name": "hp"}},
		{"base_stat": 84, "stat": {"name": "attack"}},
		{"base_stat": 78, "stat": {"name": "defense"}},
		{"base_stat": 109, "stat": {"name": "special-attack"}},
		{"base_stat": 85, "stat": {"name": "special-defense"}},
		{"base_stat": 100, "stat": {"name": "speed"}}
	],
	"types": [
		{"slot": 1, "type": {"name": "fire"}},
		{"slot": 2, "type": {"name": "flying"}}
	]
}`

const flamethrowerJSON = `{
	"name": "flamethrower",
	"power": 90,
	"accuracy": 100,
	"pp": 15,
	"priority": 0,
	"damage_class": {"name": "special"},
	"type": {"name": "fire"},
	"effect_entries": [{"short_effect": "Has a 10% chance to burn the target."}]
}`

type memCache struct {
	entries map[string][]byte
}

func (c *memCache) GetLookup(kind, key string) ([]byte, bool, error) {
	b, ok := c.entries[kind+":"+key]
	return b, ok, nil
}

func (c *memCache) SaveLookup(kind, key string, response []byte) error {
	c.entries[kind+":"+key] = response
	return nil
}

func testServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/charizard", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(charizardJSON))
	})
	mux.HandleFunc("/move/flamethrower", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(flamethrowerJSON))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSpecies(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	c := NewClient(srv.URL, 2*time.Second, nil)

	info, err := c.Species(context.Background(), "Charizard")
	if err != nil {
		t.Fatalf("Species: %v", err)
	}
	if info.Name != "Charizard" {
		t.Errorf("name = %q, want Charizard", info.Name)
	}
	if len(info.Types) != 2 || info.Types[0] != game.TypeFire || info.Types[1] != game.TypeFlying {
		t.Errorf("types = %v, want [Fire Flying]", info.Types)
	}
	want := game.Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100}
	if info.BaseStats != want {
		t.Errorf("base stats = %+v, want %+v", info.BaseStats, want)
	}
}

func TestMove(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	c := NewClient(srv.URL, 2*time.Second, nil)

	m, err := c.Move(context.Background(), "Flamethrower")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if m.Name != "Flamethrower" || m.Type != game.TypeFire || m.Category != game.CategorySpecial {
		t.Errorf("move = %+v, want special Fire Flamethrower", m)
	}
	if m.Power == nil || *m.Power != 90 {
		t.Errorf("power = %v, want 90", m.Power)
	}
	if m.PP != 15 || m.RemainingPP != 15 {
		t.Errorf("PP = %d/%d, want 15/15", m.RemainingPP, m.PP)
	}
	if m.Effect == "" {
		t.Error("expected short effect text")
	}
}

func TestFetch_NotFound(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	c := NewClient(srv.URL, 2*time.Second, nil)

	_, err := c.Species(context.Background(), "Missingno")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFetch_CacheSkipsNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	cache := &memCache{entries: map[string][]byte{}}
	c := NewClient(srv.URL, 2*time.Second, cache)

	for i := 0; i < 3; i++ {
		if _, err := c.Species(context.Background(), "Charizard"); err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("network hits = %d, want 1 (cache must serve repeats)", n)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Thunder Wave": "thunder-wave",
		"  Tackle ":    "tackle",
		"Mr. Mime":     "mr-mime",
		"Farfetch'd":   "farfetchd",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
