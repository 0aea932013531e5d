package game

// The battle engine and the search tree both advance state by mutating
// independent copies. These Clone methods are the only sanctioned way to
// duplicate state; they copy every slice so no two states ever alias.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of the species snapshot.
func (sp Species) Clone() Species {
	out := sp
	out.Types = make([]ElementType, len(sp.Types))
	copy(out.Types, sp.Types)
	return out
}

// Clone returns a deep copy of the combatant, including its move list.
func (c Combatant) Clone() Combatant {
	out := c
	out.Species = c.Species.Clone()
	out.Moves = make([]Move, len(c.Moves))
	copy(out.Moves, c.Moves)
	return out
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	out := t
	out.Members = make([]Combatant, len(t.Members))
	for i := range t.Members {
		out.Members[i] = t.Members[i].Clone()
	}
	return out
}

// Clone returns a deep copy of the whole battle state.
func (s BattleState) Clone() BattleState {
	out := s
	out.Player = s.Player.Clone()
	out.Opponent = s.Opponent.Clone()
	out.Screens = cloneStrings(s.Screens)
	out.PlayerHazards = cloneStrings(s.PlayerHazards)
	out.OpponentHazards = cloneStrings(s.OpponentHazards)
	return out
}
