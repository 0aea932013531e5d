package game

import "fmt"

// Validation happens once, at the request boundary. Everything past it can
// index teams and divide by defense stats without re-checking.

const (
	MinTeamSize = 1
	MaxTeamSize = 6
	MinStage    = -6
	MaxStage    = 6
)

// Validate checks a move's type and category.
func (m *Move) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("move has no name")
	}
	if !KnownType(m.Type) {
		return fmt.Errorf("move %s: unknown type %q", m.Name, m.Type)
	}
	switch m.Category {
	case CategoryPhysical, CategorySpecial, CategoryStatus:
	default:
		return fmt.Errorf("move %s: unknown category %q", m.Name, m.Category)
	}
	if m.Power != nil && *m.Power < 0 {
		return fmt.Errorf("move %s: negative power", m.Name)
	}
	return nil
}

// Validate checks the species snapshot: typing, level and stats. Non-HP
// stats must be strictly positive; the damage formula divides by defense.
func (sp *Species) Validate() error {
	if sp.Name == "" {
		return fmt.Errorf("species has no name")
	}
	if len(sp.Types) < 1 || len(sp.Types) > 2 {
		return fmt.Errorf("species %s: must have 1 or 2 types, has %d", sp.Name, len(sp.Types))
	}
	for _, t := range sp.Types {
		if !KnownType(t) {
			return fmt.Errorf("species %s: unknown type %q", sp.Name, t)
		}
	}
	if sp.Level < 1 || sp.Level > 100 {
		return fmt.Errorf("species %s: level %d out of range [1,100]", sp.Name, sp.Level)
	}
	st := sp.Stats
	if st.HP < 1 {
		return fmt.Errorf("species %s: HP stat must be positive", sp.Name)
	}
	for _, v := range []struct {
		name  string
		value int
	}{
		{"attack", st.Attack}, {"defense", st.Defense},
		{"sp_attack", st.SpAttack}, {"sp_defense", st.SpDefense},
		{"speed", st.Speed},
	} {
		if v.value < 1 {
			return fmt.Errorf("species %s: %s stat must be positive", sp.Name, v.name)
		}
	}
	return nil
}

func validateStage(name string, v int) error {
	if v < MinStage || v > MaxStage {
		return fmt.Errorf("%s stage %d out of range [%d,%d]", name, v, MinStage, MaxStage)
	}
	return nil
}

// Validate checks the combatant: species, HP bounds, stage bounds, moves.
func (c *Combatant) Validate() error {
	if err := c.Species.Validate(); err != nil {
		return err
	}
	if c.CurrentHP < 0 || c.CurrentHP > c.Species.Stats.HP {
		return fmt.Errorf("combatant %s: current HP %d out of range [0,%d]", c.Species.Name, c.CurrentHP, c.Species.Stats.HP)
	}
	for _, s := range []struct {
		name  string
		value int
	}{
		{"attack", c.Stages.Attack}, {"defense", c.Stages.Defense},
		{"sp_attack", c.Stages.SpAttack}, {"sp_defense", c.Stages.SpDefense},
		{"speed", c.Stages.Speed},
	} {
		if err := validateStage(s.name, s.value); err != nil {
			return fmt.Errorf("combatant %s: %w", c.Species.Name, err)
		}
	}
	if len(c.Moves) == 0 {
		return fmt.Errorf("combatant %s: has no moves", c.Species.Name)
	}
	if len(c.Moves) > 4 {
		return fmt.Errorf("combatant %s: has %d moves, at most 4 allowed", c.Species.Name, len(c.Moves))
	}
	for i := range c.Moves {
		if err := c.Moves[i].Validate(); err != nil {
			return fmt.Errorf("combatant %s: %w", c.Species.Name, err)
		}
	}
	return nil
}

// Validate checks team size and the active index.
func (t *Team) Validate() error {
	if len(t.Members) < MinTeamSize || len(t.Members) > MaxTeamSize {
		return fmt.Errorf("team size %d out of range [%d,%d]", len(t.Members), MinTeamSize, MaxTeamSize)
	}
	if t.ActiveIndex < 0 || t.ActiveIndex >= len(t.Members) {
		return fmt.Errorf("active index %d out of range for team of %d", t.ActiveIndex, len(t.Members))
	}
	for i := range t.Members {
		if err := t.Members[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the whole battle state.
func (s *BattleState) Validate() error {
	if err := s.Player.Validate(); err != nil {
		return fmt.Errorf("player team: %w", err)
	}
	if err := s.Opponent.Validate(); err != nil {
		return fmt.Errorf("opponent team: %w", err)
	}
	if !KnownWeather(s.Weather) {
		return fmt.Errorf("unknown weather %q", s.Weather)
	}
	return nil
}

// Normalize fills derivable zero-valued fields on an incoming state:
// a move whose remaining PP was omitted is treated as unused. Current HP
// is never touched; zero is meaningful there (fainted).
func (s *BattleState) Normalize() {
	for _, t := range []*Team{&s.Player, &s.Opponent} {
		for i := range t.Members {
			for j := range t.Members[i].Moves {
				m := &t.Members[i].Moves[j]
				if m.RemainingPP == 0 {
					m.RemainingPP = m.PP
				}
			}
		}
	}
}

// ValidateAction checks an action against the state it will be applied to.
func (s *BattleState) ValidateAction(a *Action) error {
	if a == nil {
		return fmt.Errorf("missing action")
	}
	switch a.Side {
	case SidePlayer, SideOpponent:
	default:
		return fmt.Errorf("unknown side %q", a.Side)
	}
	team := s.TeamFor(a.Side)
	switch a.Type {
	case ActionAttack:
		active := team.Active()
		if active == nil {
			return fmt.Errorf("%s: no active combatant", a.Side)
		}
		if a.Index < 0 || a.Index >= len(active.Moves) {
			return fmt.Errorf("%s: move index %d out of range", a.Side, a.Index)
		}
	case ActionSwitch:
		if a.Index < 0 || a.Index >= len(team.Members) {
			return fmt.Errorf("%s: switch index %d out of range", a.Side, a.Index)
		}
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}
