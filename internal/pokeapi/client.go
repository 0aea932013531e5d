package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/logging"
)

// ErrNotFound is returned when PokeAPI has no entry for the requested
// species or move name.
var ErrNotFound = errors.New("pokeapi: not found")

// Cache persists raw PokeAPI responses so repeated lookups never hit the
// network. The storage repository implements it.
type Cache interface {
	GetLookup(kind, key string) ([]byte, bool, error)
	SaveLookup(kind, key string, response []byte) error
}

// Client is a small PokeAPI consumer covering the two lookups the battle
// helper needs: species (typing and base stats) and moves. Concurrent
// lookups for the same resource are collapsed into one request.
type Client struct {
	baseURL string
	hc      *http.Client
	cache   Cache
	sf      singleflight.Group
	title   cases.Caser
}

// NewClient builds a client against baseURL. cache may be nil, in which
// case every lookup goes to the network.
func NewClient(baseURL string, timeout time.Duration, cache Cache) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		cache:   cache,
		title:   cases.Title(language.English),
	}
}

// Slug converts a display name to the PokeAPI resource form:
// "Thunder Wave" -> "thunder-wave".
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// DisplayName converts a PokeAPI slug back to a readable name:
// "thunder-wave" -> "Thunder Wave".
func (c *Client) DisplayName(slug string) string {
	return c.title.String(strings.ReplaceAll(slug, "-", " "))
}

type rawStat struct {
	BaseStat int `json:"base_stat"`
	Stat     struct {
		Name string `json:"name"`
	} `json:"stat"`
}

type rawType struct {
	Slot int `json:"slot"`
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

type rawSpecies struct {
	Name  string    `json:"name"`
	Stats []rawStat `json:"stats"`
	Types []rawType `json:"types"`
}

type rawMove struct {
	Name        string `json:"name"`
	Power       *int   `json:"power"`
	Accuracy    *int   `json:"accuracy"`
	PP          int    `json:"pp"`
	Priority    int    `json:"priority"`
	DamageClass struct {
		Name string `json:"name"`
	} `json:"damage_class"`
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
	EffectEntries []struct {
		ShortEffect string `json:"short_effect"`
	} `json:"effect_entries"`
}

// Species looks up a Pokémon's typing and base stats by name.
func (c *Client) Species(ctx context.Context, name string) (game.SpeciesInfo, error) {
	slug := Slug(name)
	body, err := c.fetch(ctx, constants.LookupKindSpecies, constants.PokeAPISpeciesPath, slug)
	if err != nil {
		return game.SpeciesInfo{}, err
	}

	var raw rawSpecies
	if err := json.Unmarshal(body, &raw); err != nil {
		return game.SpeciesInfo{}, fmt.Errorf("pokeapi: decode species %s: %w", slug, err)
	}

	info := game.SpeciesInfo{Name: c.DisplayName(raw.Name)}
	for _, t := range raw.Types {
		et := game.ElementType(c.title.String(t.Type.Name))
		if !game.KnownType(et) {
			return game.SpeciesInfo{}, fmt.Errorf("pokeapi: species %s has unknown type %q", slug, t.Type.Name)
		}
		info.Types = append(info.Types, et)
	}
	for _, s := range raw.Stats {
		switch s.Stat.Name {
		case "hp":
			info.BaseStats.HP = s.BaseStat
		case "attack":
			info.BaseStats.Attack = s.BaseStat
		case "defense":
			info.BaseStats.Defense = s.BaseStat
		case "special-attack":
			info.BaseStats.SpAttack = s.BaseStat
		case "special-defense":
			info.BaseStats.SpDefense = s.BaseStat
		case "speed":
			info.BaseStats.Speed = s.BaseStat
		}
	}
	return info, nil
}

// Move looks up a move's battle data by name. RemainingPP is returned
// equal to PP.
func (c *Client) Move(ctx context.Context, name string) (game.Move, error) {
	slug := Slug(name)
	body, err := c.fetch(ctx, constants.LookupKindMove, constants.PokeAPIMovePath, slug)
	if err != nil {
		return game.Move{}, err
	}

	var raw rawMove
	if err := json.Unmarshal(body, &raw); err != nil {
		return game.Move{}, fmt.Errorf("pokeapi: decode move %s: %w", slug, err)
	}

	et := game.ElementType(c.title.String(raw.Type.Name))
	if !game.KnownType(et) {
		return game.Move{}, fmt.Errorf("pokeapi: move %s has unknown type %q", slug, raw.Type.Name)
	}

	var cat game.MoveCategory
	switch raw.DamageClass.Name {
	case "physical":
		cat = game.CategoryPhysical
	case "special":
		cat = game.CategorySpecial
	case "status":
		cat = game.CategoryStatus
	default:
		return game.Move{}, fmt.Errorf("pokeapi: move %s has unknown damage class %q", slug, raw.DamageClass.Name)
	}

	m := game.Move{
		Name:        c.DisplayName(raw.Name),
		Type:        et,
		Category:    cat,
		Power:       raw.Power,
		Accuracy:    raw.Accuracy,
		PP:          raw.PP,
		RemainingPP: raw.PP,
		Priority:    raw.Priority,
	}
	if len(raw.EffectEntries) > 0 {
		m.Effect = raw.EffectEntries[0].ShortEffect
	}
	return m, nil
}

// fetch returns the raw JSON body for one resource, preferring the cache.
// Concurrent fetches of the same resource share one network request.
func (c *Client) fetch(ctx context.Context, kind, path, slug string) ([]byte, error) {
	if c.cache != nil {
		if body, ok, err := c.cache.GetLookup(kind, slug); err == nil && ok {
			return body, nil
		}
	}

	v, err, _ := c.sf.Do(kind+":"+slug, func() (interface{}, error) {
		url := c.baseURL + path + slug
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.hc.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, slug)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("pokeapi: %s %s: unexpected status %d", kind, slug, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if c.cache != nil {
			if err := c.cache.SaveLookup(kind, slug, body); err != nil {
				logging.Error("failed to cache lookup", err, logging.Fields{
					constants.LogFieldKind: kind,
					constants.LogFieldName: slug,
				})
			}
		}
		logging.Debug("pokeapi lookup", logging.Fields{
			constants.LogFieldKind: kind,
			constants.LogFieldName: slug,
			constants.LogFieldURL:  url,
		})
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
