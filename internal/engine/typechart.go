package engine

import "github.com/pranavmenonx/PokemonRunAndBunHelper/internal/game"

// typeChart maps attack type -> defender type -> multiplier. Pairs not
// listed here are neutral (factor 1).
var typeChart = map[game.ElementType]map[game.ElementType]float64{
	game.TypeNormal:   {game.TypeGhost: 0, game.TypeRock: 0.5, game.TypeSteel: 0.5},
	game.TypeFire:     {game.TypeFire: 0.5, game.TypeWater: 0.5, game.TypeGrass: 2, game.TypeIce: 2, game.TypeBug: 2, game.TypeRock: 0.5, game.TypeDragon: 0.5, game.TypeSteel: 2},
	game.TypeWater:    {game.TypeFire: 2, game.TypeWater: 0.5, game.TypeGrass: 0.5, game.TypeGround: 2, game.TypeRock: 2, game.TypeDragon: 0.5},
	game.TypeElectric: {game.TypeWater: 2, game.TypeElectric: 0.5, game.TypeGrass: 0.5, game.TypeGround: 0, game.TypeFlying: 2, game.TypeDragon: 0.5},
	game.TypeGrass:    {game.TypeFire: 0.5, game.TypeWater: 2, game.TypeGrass: 0.5, game.TypePoison: 0.5, game.TypeGround: 2, game.TypeFlying: 0.5, game.TypeBug: 0.5, game.TypeRock: 2, game.TypeDragon: 0.5, game.TypeSteel: 0.5},
	game.TypeIce:      {game.TypeFire: 0.5, game.TypeWater: 0.5, game.TypeGrass: 2, game.TypeIce: 0.5, game.TypeGround: 2, game.TypeFlying: 2, game.TypeDragon: 2, game.TypeSteel: 0.5},
	game.TypeFighting: {game.TypeNormal: 2, game.TypeIce: 2, game.TypePoison: 0.5, game.TypeFlying: 0.5, game.TypePsychic: 0.5, game.TypeBug: 0.5, game.TypeRock: 2, game.TypeGhost: 0, game.TypeDark: 2, game.TypeSteel: 2, game.TypeFairy: 0.5},
	game.TypePoison:   {game.TypeGrass: 2, game.TypePoison: 0.5, game.TypeGround: 0.5, game.TypeRock: 0.5, game.TypeGhost: 0.5, game.TypeSteel: 0, game.TypeFairy: 2},
	game.TypeGround:   {game.TypeFire: 2, game.TypeElectric: 2, game.TypeGrass: 0.5, game.TypePoison: 2, game.TypeFlying: 0, game.TypeBug: 0.5, game.TypeRock: 2, game.TypeSteel: 2},
	game.TypeFlying:   {game.TypeElectric: 0.5, game.TypeGrass: 2, game.TypeFighting: 2, game.TypeBug: 2, game.TypeRock: 0.5, game.TypeSteel: 0.5},
	game.TypePsychic:  {game.TypeFighting: 2, game.TypePoison: 2, game.TypePsychic: 0.5, game.TypeDark: 0, game.TypeSteel: 0.5},
	game.TypeBug:      {game.TypeFire: 0.5, game.TypeGrass: 2, game.TypeFighting: 0.5, game.TypePoison: 0.5, game.TypeFlying: 0.5, game.TypePsychic: 2, game.TypeGhost: 0.5, game.TypeDark: 2, game.TypeSteel: 0.5, game.TypeFairy: 0.5},
	game.TypeRock:     {game.TypeFire: 2, game.TypeIce: 2, game.TypeFighting: 0.5, game.TypeGround: 0.5, game.TypeFlying: 2, game.TypeBug: 2, game.TypeSteel: 0.5},
	game.TypeGhost:    {game.TypeNormal: 0, game.TypePsychic: 2, game.TypeGhost: 2, game.TypeDark: 0.5},
	game.TypeDragon:   {game.TypeDragon: 2, game.TypeSteel: 0.5, game.TypeFairy: 0},
	game.TypeDark:     {game.TypeFighting: 0.5, game.TypePsychic: 2, game.TypeGhost: 2, game.TypeDark: 0.5, game.TypeFairy: 0.5},
	game.TypeSteel:    {game.TypeFire: 0.5, game.TypeWater: 0.5, game.TypeElectric: 0.5, game.TypeIce: 2, game.TypeRock: 2, game.TypeSteel: 0.5, game.TypeFairy: 2},
	game.TypeFairy:    {game.TypeFire: 0.5, game.TypeFighting: 2, game.TypePoison: 0.5, game.TypeDragon: 2, game.TypeDark: 2, game.TypeSteel: 0.5},
}

// Effectiveness returns the combined multiplier for a move of the given
// type against a defender with one or two types. The result is the product
// of the per-type factors, so it is always one of 0, 0.25, 0.5, 1, 2 or 4.
func Effectiveness(moveType game.ElementType, defenderTypes []game.ElementType) float64 {
	mult := 1.0
	row := typeChart[moveType]
	for _, dt := range defenderTypes {
		if f, ok := row[dt]; ok {
			mult *= f
		}
	}
	return mult
}
