package game

// ElementType is one of the eighteen elemental types a species or move
// can have.
type ElementType string

const (
	TypeNormal   ElementType = "Normal"
	TypeFire     ElementType = "Fire"
	TypeWater    ElementType = "Water"
	TypeElectric ElementType = "Electric"
	TypeGrass    ElementType = "Grass"
	TypeIce      ElementType = "Ice"
	TypeFighting ElementType = "Fighting"
	TypePoison   ElementType = "Poison"
	TypeGround   ElementType = "Ground"
	TypeFlying   ElementType = "Flying"
	TypePsychic  ElementType = "Psychic"
	TypeBug      ElementType = "Bug"
	TypeRock     ElementType = "Rock"
	TypeGhost    ElementType = "Ghost"
	TypeDragon   ElementType = "Dragon"
	TypeDark     ElementType = "Dark"
	TypeSteel    ElementType = "Steel"
	TypeFairy    ElementType = "Fairy"
)

// AllTypes lists every valid elemental type. Kept in chart order so
// iteration is deterministic.
var AllTypes = []ElementType{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

var knownTypes = func() map[ElementType]struct{} {
	m := make(map[ElementType]struct{}, len(AllTypes))
	for _, t := range AllTypes {
		m[t] = struct{}{}
	}
	return m
}()

// KnownType reports whether t is one of the eighteen valid types.
func KnownType(t ElementType) bool {
	_, ok := knownTypes[t]
	return ok
}

// MoveCategory distinguishes how a move deals (or doesn't deal) damage.
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "Physical"
	CategorySpecial  MoveCategory = "Special"
	CategoryStatus   MoveCategory = "Status"
)

// Weather is the shared field weather condition.
type Weather string

const (
	WeatherNone      Weather = ""
	WeatherSun       Weather = "Sun"
	WeatherRain      Weather = "Rain"
	WeatherSandstorm Weather = "Sandstorm"
	WeatherHail      Weather = "Hail"
)

var knownWeather = map[Weather]struct{}{
	WeatherNone: {}, WeatherSun: {}, WeatherRain: {}, WeatherSandstorm: {}, WeatherHail: {},
}

// KnownWeather reports whether w is a recognized weather condition.
func KnownWeather(w Weather) bool {
	_, ok := knownWeather[w]
	return ok
}

// StatusCondition is an active non-volatile status on a combatant. Status
// conditions are carried through battle state but their per-turn effects
// are not resolved by the engine.
type StatusCondition string

const (
	StatusNone      StatusCondition = ""
	StatusPoison    StatusCondition = "Poison"
	StatusBurn      StatusCondition = "Burn"
	StatusParalysis StatusCondition = "Paralysis"
	StatusSleep     StatusCondition = "Sleep"
	StatusFrozen    StatusCondition = "Frozen"
)

// Side identifies one of the two battling sides.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// ActionType is the kind of instruction a side issues for a turn.
type ActionType string

const (
	ActionAttack ActionType = "move"
	ActionSwitch ActionType = "switch"
)

// Outcome is the terminal result of a full battle.
type Outcome string

const (
	OutcomePlayerWins   Outcome = "player"
	OutcomeOpponentWins Outcome = "opponent"
	OutcomeDraw         Outcome = "draw"
)
