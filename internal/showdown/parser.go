package showdown

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

// Pokedex is the external species/move database the parser resolves names
// against. A lookup miss is a fatal input error for the whole parse.
type Pokedex interface {
	Species(ctx context.Context, name string) (game.SpeciesInfo, error)
	Move(ctx context.Context, name string) (game.Move, error)
}

// ErrEmptyExport is returned when the export text contains nothing to
// parse.
var ErrEmptyExport = errors.New("showdown: empty export")

// ivs holds per-stat individual values keyed by Showdown abbreviation.
type ivs struct {
	HP, Atk, Def, SpA, SpD, Spe int
}

func defaultIVs() ivs { return ivs{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31} }

// ParseExport converts one Pokémon Showdown export block into a battle
// combatant with fully computed stats. Species and move names are resolved
// through dex; defaults are level 100, max IVs and a neutral nature.
func ParseExport(ctx context.Context, dex Pokedex, export string) (game.Combatant, error) {
	lines := splitLines(export)
	if len(lines) == 0 {
		return game.Combatant{}, ErrEmptyExport
	}

	name, item := parseNameLine(lines[0])
	if name == "" {
		return game.Combatant{}, fmt.Errorf("showdown: missing species name in %q", lines[0])
	}

	info, err := dex.Species(ctx, name)
	if err != nil {
		return game.Combatant{}, fmt.Errorf("showdown: species %q: %w", name, err)
	}

	sp := game.Species{
		Name:  info.Name,
		Types: info.Types,
		Level: 100,
		Item:  item,
	}
	iv := defaultIVs()
	nature := ""
	var moves []game.Move

	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "Ability: "):
			sp.Ability = strings.TrimSpace(strings.TrimPrefix(line, "Ability: "))

		case strings.HasPrefix(line, "Level: "):
			lvl, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Level: ")))
			if err != nil {
				return game.Combatant{}, fmt.Errorf("showdown: bad level line %q: %w", line, err)
			}
			sp.Level = lvl

		case strings.HasSuffix(line, "Nature"):
			nature = strings.TrimSpace(strings.TrimSuffix(line, "Nature"))

		case strings.HasPrefix(line, "IVs: "):
			if err := parseIVs(strings.TrimPrefix(line, "IVs: "), &iv); err != nil {
				return game.Combatant{}, err
			}

		case strings.HasPrefix(line, "EVs: "),
			strings.HasPrefix(line, "Shiny: "),
			strings.HasPrefix(line, "Tera Type: "),
			strings.HasPrefix(line, "Gigantamax: "):
			// Recognized but irrelevant to the battle model.

		case strings.HasPrefix(line, "-"):
			moveName := strings.TrimSpace(strings.TrimLeft(line, "- "))
			if moveName == "" {
				continue
			}
			m, err := dex.Move(ctx, moveName)
			if err != nil {
				return game.Combatant{}, fmt.Errorf("showdown: move %q: %w", moveName, err)
			}
			m.Name = moveName
			moves = append(moves, m)
		}
	}

	sp.Stats = computeStats(info.BaseStats, iv, sp.Level, nature)

	c := game.NewCombatant(sp, moves)
	if err := c.Validate(); err != nil {
		return game.Combatant{}, fmt.Errorf("showdown: parsed combatant invalid: %w", err)
	}
	return c, nil
}

func splitLines(export string) []string {
	var out []string
	for _, line := range strings.Split(export, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseNameLine splits the header line into species name and held item:
// "Garchomp @ Choice Scarf" -> ("Garchomp", "Choice Scarf"). Gender
// markers are dropped.
func parseNameLine(line string) (name, item string) {
	name = line
	if i := strings.Index(line, "@"); i >= 0 {
		name = strings.TrimSpace(line[:i])
		item = strings.TrimSpace(line[i+1:])
	}
	name = strings.TrimSuffix(name, " (M)")
	name = strings.TrimSuffix(name, " (F)")
	return strings.TrimSpace(name), item
}

// parseIVs applies entries like "0 Atk / 30 Spe" on top of the defaults.
// A malformed entry fails the whole parse.
func parseIVs(s string, iv *ivs) error {
	for _, part := range strings.Split(s, " / ") {
		part = strings.TrimSpace(part)
		fields := strings.SplitN(part, " ", 2)
		if len(fields) != 2 {
			return fmt.Errorf("showdown: bad IV entry %q", part)
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("showdown: bad IV value in %q: %w", part, err)
		}
		switch fields[1] {
		case "HP":
			iv.HP = v
		case "Atk":
			iv.Atk = v
		case "Def":
			iv.Def = v
		case "SpA":
			iv.SpA = v
		case "SpD":
			iv.SpD = v
		case "Spe":
			iv.Spe = v
		default:
			return fmt.Errorf("showdown: unknown IV stat %q", fields[1])
		}
	}
	return nil
}

// computeStats turns base stats, IVs, level and nature into final battle
// stats using the standard formulas.
func computeStats(base game.Stats, iv ivs, level int, nature string) game.Stats {
	return game.Stats{
		HP:        hpStat(base.HP, iv.HP, level),
		Attack:    otherStat(base.Attack, iv.Atk, level, nature, "Atk"),
		Defense:   otherStat(base.Defense, iv.Def, level, nature, "Def"),
		SpAttack:  otherStat(base.SpAttack, iv.SpA, level, nature, "SpA"),
		SpDefense: otherStat(base.SpDefense, iv.SpD, level, nature, "SpD"),
		Speed:     otherStat(base.Speed, iv.Spe, level, nature, "Spe"),
	}
}

func hpStat(base, iv, level int) int {
	return (2*base+iv)*level/100 + level + 10
}

func otherStat(base, iv, level int, nature, abbr string) int {
	stat := (2*base+iv)*level/100 + 5
	return int(float64(stat) * natureMultiplier(nature, abbr))
}
