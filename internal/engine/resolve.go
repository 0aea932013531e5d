package engine

import (
	"fmt"
	"sort"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"
)

// turnContext carries the state being mutated and the narration log while
// one turn resolves.
type turnContext struct {
	st  *game.BattleState
	log []string
}

func (tc *turnContext) add(msg string) { tc.log = append(tc.log, msg) }

// rankedAction pairs an action with its ordering keys: switches resolve
// before any attack, then higher move priority, then higher effective
// speed.
type rankedAction struct {
	action   game.Action
	priority int
	speed    float64
	isSwitch bool
}

func rankAction(st *game.BattleState, a game.Action) rankedAction {
	r := rankedAction{action: a, isSwitch: a.Type == game.ActionSwitch}
	active := st.TeamFor(a.Side).Active()
	if active != nil {
		r.speed = float64(active.Species.Stats.Speed) * StageMultiplier(active.Stages.Speed)
		if a.Type == game.ActionAttack && a.Index >= 0 && a.Index < len(active.Moves) {
			r.priority = active.Moves[a.Index].Priority
		}
	}
	return r
}

// orderActions sorts this turn's actions. The sort is stable and the
// player's action is inserted first, so a full tie resolves in original
// side order, deterministically.
func orderActions(st *game.BattleState, playerAction, opponentAction *game.Action) []game.Action {
	ranked := make([]rankedAction, 0, 2)
	if playerAction != nil {
		ranked = append(ranked, rankAction(st, *playerAction))
	}
	if opponentAction != nil {
		ranked = append(ranked, rankAction(st, *opponentAction))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].isSwitch != ranked[j].isSwitch {
			return ranked[i].isSwitch
		}
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority > ranked[j].priority
		}
		return ranked[i].speed > ranked[j].speed
	})
	out := make([]game.Action, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].action
	}
	return out
}

// execSwitch validates and performs a switch. An illegal switch (fainted
// or already-active target, bad index) is a logged no-op, never an error:
// the battle continues.
func (tc *turnContext) execSwitch(a game.Action) {
	team := tc.st.TeamFor(a.Side)
	if a.Index < 0 || a.Index >= len(team.Members) {
		tc.add(fmt.Sprintf("Invalid switch: no team member at slot %d", a.Index+1))
		return
	}
	incoming := &team.Members[a.Index]
	if incoming.Fainted() {
		tc.add(fmt.Sprintf("Cannot switch to fainted %s", incoming.Species.Name))
		return
	}
	if a.Index == team.ActiveIndex {
		tc.add(fmt.Sprintf("Cannot switch to already active %s", incoming.Species.Name))
		return
	}
	outgoing := team.Active()
	team.ActiveIndex = a.Index
	if outgoing != nil {
		tc.add(fmt.Sprintf("%s was withdrawn!", outgoing.Species.Name))
	}
	tc.add(fmt.Sprintf("Go! %s!", incoming.Species.Name))
}

// execAttack validates and performs an attack. The applied damage is the
// midpoint of the move's damage range, so resolution is deterministic.
func (tc *turnContext) execAttack(a game.Action) {
	attacker := tc.st.TeamFor(a.Side).Active()
	defender := tc.st.TeamFor(a.Side.Opponent()).Active()
	if attacker == nil || defender == nil {
		tc.add("No valid attack target")
		return
	}
	// The attacker may have fainted earlier in this same turn.
	if attacker.Fainted() {
		tc.add(fmt.Sprintf("%s cannot move because it is fainted", attacker.Species.Name))
		return
	}
	if defender.Fainted() {
		tc.add(fmt.Sprintf("%s is already fainted", defender.Species.Name))
		return
	}
	if a.Index < 0 || a.Index >= len(attacker.Moves) {
		tc.add(fmt.Sprintf("%s has no move in slot %d", attacker.Species.Name, a.Index+1))
		return
	}

	move := &attacker.Moves[a.Index]
	if move.RemainingPP > 0 {
		move.RemainingPP--
	}
	tc.add(fmt.Sprintf("%s used %s!", attacker.Species.Name, move.Name))

	eff := Effectiveness(move.Type, defender.Species.Types)
	switch {
	case eff == 0:
		tc.add(fmt.Sprintf("It doesn't affect %s...", defender.Species.Name))
	case eff > 1:
		tc.add("It's super effective!")
	case eff < 1:
		tc.add("It's not very effective...")
	}

	dmg := midpointDamage(*move, attacker, defender, tc.st.Weather)
	if dmg > defender.CurrentHP {
		dmg = defender.CurrentHP
	}
	if dmg > 0 {
		defender.CurrentHP -= dmg
		tc.add(fmt.Sprintf("Dealt %d damage!", dmg))
	}
	if defender.Fainted() {
		tc.add(fmt.Sprintf("%s fainted!", defender.Species.Name))
	}
}

// winnerOf reports the side that still has usable combatants when the
// other does not. Opponent defeat is checked first, so a simultaneous
// wipe counts as a player win.
func winnerOf(st *game.BattleState) *game.Side {
	if !st.Opponent.HasUsable() {
		w := game.SidePlayer
		return &w
	}
	if !st.Player.HasUsable() {
		w := game.SideOpponent
		return &w
	}
	return nil
}

// ResolveTurn executes both sides' actions for one turn against a copy of
// st and returns the record. The input state is never mutated; the
// resolver is a pure transformation (state, actions) -> (state', log,
// winner or none).
func ResolveTurn(st game.BattleState, playerAction, opponentAction *game.Action) game.TurnRecord {
	next := st.Clone()
	tc := &turnContext{st: &next}

	ordered := orderActions(&next, playerAction, opponentAction)
	for _, a := range ordered {
		switch a.Type {
		case game.ActionSwitch:
			tc.execSwitch(a)
		case game.ActionAttack:
			tc.execAttack(a)
		}
	}

	return game.TurnRecord{
		Actions: ordered,
		Log:     tc.log,
		Winner:  winnerOf(&next),
		State:   next,
	}
}
