package riichi

import "fmt"

// Suit identifies the family a tile belongs to.
type Suit int

const (
	SuitMan    Suit = iota // Characters (萬)
	SuitPin                // Circles (筒)
	SuitSou                // Bamboo (索)
	SuitWind               // E, S, W, N
	SuitDragon             // White, Green, Red
)

// Tile represents one of the 34 tile kinds. Tiles are value types: two tiles
// of the same kind compare equal regardless of which physical tile they came
// from. Value is 1-9 for the numbered suits, 1-4 for winds (E=1, S=2, W=3,
// N=4) and 1-3 for dragons (White=1, Green=2, Red=3).
type Tile struct {
	Suit  Suit
	Value int
}

// NumTileKinds is the size of the canonical tile ordinal space.
const NumTileKinds = 34

// Index maps a tile to its canonical ordinal:
// Man 1-9 -> 0-8, Pin 1-9 -> 9-17, Sou 1-9 -> 18-26,
// Winds E,S,W,N -> 27-30, Dragons White,Green,Red -> 31-33.
// An invalid tile is a programming error, not bad input: Index panics.
func (t Tile) Index() int {
	switch t.Suit {
	case SuitMan:
		if t.Value >= 1 && t.Value <= 9 {
			return t.Value - 1
		}
	case SuitPin:
		if t.Value >= 1 && t.Value <= 9 {
			return 9 + t.Value - 1
		}
	case SuitSou:
		if t.Value >= 1 && t.Value <= 9 {
			return 18 + t.Value - 1
		}
	case SuitWind:
		if t.Value >= 1 && t.Value <= 4 {
			return 27 + t.Value - 1
		}
	case SuitDragon:
		if t.Value >= 1 && t.Value <= 3 {
			return 31 + t.Value - 1
		}
	}
	panic(fmt.Sprintf("riichi: invalid tile {suit=%d value=%d}", t.Suit, t.Value))
}

// TileFromIndex is the inverse of Tile.Index. Panics on an out-of-range
// index for the same reason Index does.
func TileFromIndex(i int) Tile {
	switch {
	case i >= 0 && i < 9:
		return Tile{SuitMan, i + 1}
	case i < 18:
		return Tile{SuitPin, i - 9 + 1}
	case i < 27:
		return Tile{SuitSou, i - 18 + 1}
	case i < 31:
		return Tile{SuitWind, i - 27 + 1}
	case i < 34:
		return Tile{SuitDragon, i - 31 + 1}
	}
	panic(fmt.Sprintf("riichi: tile index %d out of range", i))
}

// IsHonor reports whether the tile is a wind or dragon.
func (t Tile) IsHonor() bool {
	return t.Suit == SuitWind || t.Suit == SuitDragon
}

// IsTerminal reports whether the tile is a 1 or 9 of a numbered suit.
func (t Tile) IsTerminal() bool {
	return !t.IsHonor() && (t.Value == 1 || t.Value == 9)
}

// IsTerminalOrHonor reports whether the tile is a terminal or an honor
// (yaochuu). Both the fu table and several yaku hang off this predicate.
func (t Tile) IsTerminalOrHonor() bool {
	return t.IsHonor() || t.Value == 1 || t.Value == 9
}

// IsSimple reports whether the tile is a 2-8 of a numbered suit.
func (t Tile) IsSimple() bool {
	return !t.IsTerminalOrHonor()
}

var windNames = []string{"", "East", "South", "West", "North"}
var dragonNames = []string{"", "White", "Green", "Red"}

// Name returns a user-friendly name, e.g. "Man 5", "East", "Red".
func (t Tile) Name() string {
	switch t.Suit {
	case SuitMan:
		return fmt.Sprintf("Man %d", t.Value)
	case SuitPin:
		return fmt.Sprintf("Pin %d", t.Value)
	case SuitSou:
		return fmt.Sprintf("Sou %d", t.Value)
	case SuitWind:
		return windNames[t.Value]
	case SuitDragon:
		return dragonNames[t.Value]
	}
	return "?"
}

// String returns the compact notation form, e.g. "5m", "E", "w".
func (t Tile) String() string {
	switch t.Suit {
	case SuitMan:
		return fmt.Sprintf("%dm", t.Value)
	case SuitPin:
		return fmt.Sprintf("%dp", t.Value)
	case SuitSou:
		return fmt.Sprintf("%ds", t.Value)
	case SuitWind:
		return []string{"", "E", "S", "W", "N"}[t.Value]
	case SuitDragon:
		return []string{"", "w", "g", "r"}[t.Value]
	}
	return "?"
}

// Wind is a wind direction used for seat and prevalent winds. Its values
// line up with the Value field of wind tiles.
type Wind int

const (
	WindEast Wind = 1 + iota
	WindSouth
	WindWest
	WindNorth
)

// Tile returns the wind tile corresponding to the direction.
func (w Wind) Tile() Tile {
	return Tile{SuitWind, int(w)}
}

func (w Wind) String() string {
	if w >= WindEast && w <= WindNorth {
		return windNames[int(w)]
	}
	return "?"
}

// TileCounts is the 34-slot count vector used as the working representation
// for the decomposition search. It is mutated and restored in place during
// backtracking; pair hypotheses each start from a fresh copy.
type TileCounts [NumTileKinds]int

// CountTiles builds a count vector from a tile slice.
func CountTiles(tiles []Tile) TileCounts {
	var counts TileCounts
	for _, t := range tiles {
		counts[t.Index()]++
	}
	return counts
}

// Total returns the number of tiles in the vector.
func (c *TileCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Tiles expands the vector back into a sorted tile slice.
func (c *TileCounts) Tiles() []Tile {
	tiles := make([]Tile, 0, c.Total())
	for i, v := range c {
		for k := 0; k < v; k++ {
			tiles = append(tiles, TileFromIndex(i))
		}
	}
	return tiles
}
