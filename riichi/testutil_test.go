package riichi

import "testing"

// mustTiles parses notation or fails the test.
func mustTiles(t *testing.T, s string) []Tile {
	t.Helper()
	tiles, err := ParseTiles(s)
	if err != nil {
		t.Fatalf("ParseTiles(%q): %v", s, err)
	}
	return tiles
}

func mustTile(t *testing.T, s string) Tile {
	t.Helper()
	tile, err := ParseTile(s)
	if err != nil {
		t.Fatalf("ParseTile(%q): %v", s, err)
	}
	return tile
}

// closedHand builds the common case: a fully concealed hand with default
// winds, won by the given method.
func closedHand(t *testing.T, hand, win string, method WinMethod) *HandInput {
	t.Helper()
	return &HandInput{
		Tiles:       mustTiles(t, hand),
		WinningTile: mustTile(t, win),
		Player: PlayerContext{
			SeatWind: WindSouth,
			Menzen:   true,
		},
		Game: GameContext{
			PrevalentWind: WindEast,
		},
		Method: method,
	}
}

func regular(t *testing.T, dec Decomposition) *RegularHand {
	t.Helper()
	h, ok := dec.(*RegularHand)
	if !ok {
		t.Fatalf("expected *RegularHand, got %T", dec)
	}
	return h
}

func irregular(t *testing.T, dec Decomposition) *IrregularHand {
	t.Helper()
	h, ok := dec.(*IrregularHand)
	if !ok {
		t.Fatalf("expected *IrregularHand, got %T", dec)
	}
	return h
}

func hasYaku(yaku []Yaku, want Yaku) bool {
	for _, y := range yaku {
		if y == want {
			return true
		}
	}
	return false
}

func countYaku(yaku []Yaku, want Yaku) int {
	n := 0
	for _, y := range yaku {
		if y == want {
			n++
		}
	}
	return n
}
