package game

// Stats holds the six final stat values of a species at its battle level.
// For SpeciesInfo lookups the same shape carries base stats instead.
type Stats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// StatStages are the temporary in-battle stat modifiers, each in [-6, +6].
type StatStages struct {
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Move is one known move of a combatant. Power and Accuracy are nil for
// moves that have none (status moves, never-miss moves).
type Move struct {
	Name        string       `json:"name"`
	Type        ElementType  `json:"type"`
	Category    MoveCategory `json:"category"`
	Power       *int         `json:"power"`
	Accuracy    *int         `json:"accuracy"`
	PP          int          `json:"pp"`
	RemainingPP int          `json:"remaining_pp"`
	Priority    int          `json:"priority"`
	Effect      string       `json:"effect,omitempty"`
}

// Species is the immutable per-battle snapshot of a combatant: identity,
// typing and final stats. It is built once when a roster is assembled and
// never mutated afterwards.
type Species struct {
	Name    string        `json:"name"`
	Types   []ElementType `json:"types"`
	Level   int           `json:"level"`
	Stats   Stats         `json:"stats"`
	Ability string        `json:"ability,omitempty"`
	Item    string        `json:"item,omitempty"`
}

// HasType reports whether t is one of the species' types.
func (sp *Species) HasType(t ElementType) bool {
	for _, st := range sp.Types {
		if st == t {
			return true
		}
	}
	return false
}

// SpeciesInfo is the raw result of a species database lookup: typing and
// base stats, before IV/nature/level scaling.
type SpeciesInfo struct {
	Name      string        `json:"name"`
	Types     []ElementType `json:"types"`
	BaseStats Stats         `json:"base_stats"`
}

// Combatant is the mutable battle state of one roster member.
type Combatant struct {
	Species   Species         `json:"species"`
	CurrentHP int             `json:"current_hp"`
	Status    StatusCondition `json:"status,omitempty"`
	Stages    StatStages      `json:"stages"`
	Moves     []Move          `json:"moves"`
}

// NewCombatant builds the initial battle state for a species: full HP,
// neutral stages, full PP on every move.
func NewCombatant(sp Species, moves []Move) Combatant {
	ms := make([]Move, len(moves))
	copy(ms, moves)
	for i := range ms {
		ms[i].RemainingPP = ms[i].PP
	}
	return Combatant{Species: sp, CurrentHP: sp.Stats.HP, Moves: ms}
}

// Fainted reports whether the combatant is out of the battle.
func (c *Combatant) Fainted() bool { return c.CurrentHP <= 0 }

// MaxHP returns the combatant's full hit points.
func (c *Combatant) MaxHP() int { return c.Species.Stats.HP }

// HPFraction returns current HP as a fraction of max HP in [0, 1].
func (c *Combatant) HPFraction() float64 {
	if c.Species.Stats.HP <= 0 {
		return 0
	}
	f := float64(c.CurrentHP) / float64(c.Species.Stats.HP)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Team is an ordered roster of one to six combatants with one active slot.
type Team struct {
	Members     []Combatant `json:"members"`
	ActiveIndex int         `json:"active_index"`
}

// Active returns the currently active combatant, or nil when the index is
// out of range.
func (t *Team) Active() *Combatant {
	if t.ActiveIndex < 0 || t.ActiveIndex >= len(t.Members) {
		return nil
	}
	return &t.Members[t.ActiveIndex]
}

// HasUsable reports whether any roster member can still battle.
func (t *Team) HasUsable() bool {
	for i := range t.Members {
		if !t.Members[i].Fainted() {
			return true
		}
	}
	return false
}

// MeanHPFraction averages HP fractions over the whole roster.
func (t *Team) MeanHPFraction() float64 {
	if len(t.Members) == 0 {
		return 0
	}
	total := 0.0
	for i := range t.Members {
		total += t.Members[i].HPFraction()
	}
	return total / float64(len(t.Members))
}

// BattleState is the full state of one battle: both teams plus the shared
// field conditions. Hazards are tracked per defending side.
type BattleState struct {
	Player          Team     `json:"player_team"`
	Opponent        Team     `json:"opponent_team"`
	Weather         Weather  `json:"weather,omitempty"`
	Terrain         string   `json:"terrain,omitempty"`
	Screens         []string `json:"screens,omitempty"`
	PlayerHazards   []string `json:"player_hazards,omitempty"`
	OpponentHazards []string `json:"opponent_hazards,omitempty"`
}

// TeamFor returns the team belonging to side.
func (s *BattleState) TeamFor(side Side) *Team {
	if side == SidePlayer {
		return &s.Player
	}
	return &s.Opponent
}

// Action is a single instruction for one turn: use a move by index, or
// switch to a roster member by index.
type Action struct {
	Type        ActionType `json:"action_type"`
	Side        Side       `json:"side"`
	Index       int        `json:"index"`
	TargetIndex *int       `json:"target_index,omitempty"`
}

// TurnRecord is the outcome of resolving one turn: the actions that were
// executed in order, the narration log, the post-turn state and, when one
// side ran out of usable combatants, the winner.
type TurnRecord struct {
	Turn    int         `json:"turn"`
	Actions []Action    `json:"actions"`
	Log     []string    `json:"log"`
	Winner  *Side       `json:"winner,omitempty"`
	State   BattleState `json:"state"`
}

// BattleResult is a complete battle transcript with its terminal outcome.
type BattleResult struct {
	Turns   []TurnRecord `json:"turns"`
	Outcome Outcome      `json:"outcome"`
	Log     []string     `json:"battle_log"`
}
