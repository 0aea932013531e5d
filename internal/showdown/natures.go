package showdown

// natureEffect describes a nature's boosted and lowered stats by their
// Showdown abbreviations. Neutral natures have empty entries.
type natureEffect struct {
	up   string
	down string
}

// natures covers all 25 named natures, 5 of them neutral. The boosted
// stat gains 10%, the lowered stat loses 10%.
var natures = map[string]natureEffect{
	"Hardy":   {},
	"Lonely":  {up: "Atk", down: "Def"},
	"Brave":   {up: "Atk", down: "Spe"},
	"Adamant": {up: "Atk", down: "SpA"},
	"Naughty": {up: "Atk", down: "SpD"},
	"Bold":    {up: "Def", down: "Atk"},
	"Docile":  {},
	"Relaxed": {up: "Def", down: "Spe"},
	"Impish":  {up: "Def", down: "SpA"},
	"Lax":     {up: "Def", down: "SpD"},
	"Timid":   {up: "Spe", down: "Atk"},
	"Hasty":   {up: "Spe", down: "Def"},
	"Serious": {},
	"Jolly":   {up: "Spe", down: "SpA"},
	"Naive":   {up: "Spe", down: "SpD"},
	"Modest":  {up: "SpA", down: "Atk"},
	"Mild":    {up: "SpA", down: "Def"},
	"Quiet":   {up: "SpA", down: "Spe"},
	"Bashful": {},
	"Rash":    {up: "SpA", down: "SpD"},
	"Calm":    {up: "SpD", down: "Atk"},
	"Gentle":  {up: "SpD", down: "Def"},
	"Sassy":   {up: "SpD", down: "Spe"},
	"Careful": {up: "SpD", down: "SpA"},
	"Quirky":  {},
}

// natureMultiplier returns the multiplier a nature applies to the stat
// with the given Showdown abbreviation. Unknown natures are neutral.
func natureMultiplier(nature, statAbbr string) float64 {
	eff, ok := natures[nature]
	if !ok {
		return 1.0
	}
	switch statAbbr {
	case eff.up:
		return 1.1
	case eff.down:
		return 0.9
	}
	return 1.0
}
