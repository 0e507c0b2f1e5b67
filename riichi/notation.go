package riichi

import (
	"fmt"
	"strings"
)

// Tile notation, matching the display form: runs of digits followed by a
// suit letter for the numbered suits ("234m567p"), uppercase E S W N for
// winds, lowercase w g r for the white, green and red dragons. Spaces are
// ignored, so "234m 567m 345p 678p 44s" and "234m567m345p678p44s" parse the
// same.

// ParseTiles parses a hand string into tiles.
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	var digits []int

	flush := func(suit Suit) {
		for _, d := range digits {
			tiles = append(tiles, Tile{suit, d})
		}
		digits = digits[:0]
	}

	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			digits = append(digits, int(r-'0'))
			continue
		case r == 'm':
			flush(SuitMan)
		case r == 'p':
			flush(SuitPin)
		case r == 's':
			flush(SuitSou)
		case r == ' ':
		default:
			if len(digits) > 0 {
				return nil, fmt.Errorf("dangling digits before %q in %q", r, s)
			}
			switch r {
			case 'E':
				tiles = append(tiles, Tile{SuitWind, 1})
			case 'S':
				tiles = append(tiles, Tile{SuitWind, 2})
			case 'W':
				tiles = append(tiles, Tile{SuitWind, 3})
			case 'N':
				tiles = append(tiles, Tile{SuitWind, 4})
			case 'w':
				tiles = append(tiles, Tile{SuitDragon, 1})
			case 'g':
				tiles = append(tiles, Tile{SuitDragon, 2})
			case 'r':
				tiles = append(tiles, Tile{SuitDragon, 3})
			default:
				return nil, fmt.Errorf("unrecognized tile character %q in %q", r, s)
			}
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("digits without a suit letter at end of %q", s)
	}
	return tiles, nil
}

// ParseTile parses exactly one tile.
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, fmt.Errorf("expected a single tile, got %d in %q", len(tiles), s)
	}
	return tiles[0], nil
}

// FormatTiles renders tiles back into notation, merging adjacent tiles of
// the same numbered suit into one digit run.
func FormatTiles(tiles []Tile) string {
	var b strings.Builder
	var runSuit Suit = -1

	flushRun := func() {
		if runSuit >= 0 {
			switch runSuit {
			case SuitMan:
				b.WriteByte('m')
			case SuitPin:
				b.WriteByte('p')
			case SuitSou:
				b.WriteByte('s')
			}
			runSuit = -1
		}
	}

	for _, t := range tiles {
		if t.IsHonor() {
			flushRun()
			b.WriteString(t.String())
			continue
		}
		if runSuit >= 0 && runSuit != t.Suit {
			flushRun()
		}
		runSuit = t.Suit
		b.WriteByte(byte('0' + t.Value))
	}
	flushRun()
	return b.String()
}

// ParseWind accepts a wind letter or full name, case-insensitively.
func ParseWind(s string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "east":
		return WindEast, nil
	case "s", "south":
		return WindSouth, nil
	case "w", "west":
		return WindWest, nil
	case "n", "north":
		return WindNorth, nil
	}
	return 0, fmt.Errorf("unrecognized wind %q", s)
}
