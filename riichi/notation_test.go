package riichi

import "testing"

func TestParseTiles(t *testing.T) {
	tiles, err := ParseTiles("234m567pEEww")
	if err != nil {
		t.Fatalf("ParseTiles: %v", err)
	}
	want := []Tile{
		{SuitMan, 2}, {SuitMan, 3}, {SuitMan, 4},
		{SuitPin, 5}, {SuitPin, 6}, {SuitPin, 7},
		{SuitWind, 1}, {SuitWind, 1},
		{SuitDragon, 1}, {SuitDragon, 1},
	}
	if len(tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(tiles), len(want))
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d = %v, want %v", i, tiles[i], want[i])
		}
	}
}

func TestParseTilesSpacesIgnored(t *testing.T) {
	a, err := ParseTiles("234m 567m 345p 678p 44s")
	if err != nil {
		t.Fatalf("ParseTiles: %v", err)
	}
	b, err := ParseTiles("234m567m345p678p44s")
	if err != nil {
		t.Fatalf("ParseTiles: %v", err)
	}
	if CountTiles(a) != CountTiles(b) {
		t.Error("spaced and unspaced notation parsed differently")
	}
}

func TestParseTilesErrors(t *testing.T) {
	bad := []string{"23", "23x", "5z", "12E"}
	for _, s := range bad {
		if _, err := ParseTiles(s); err == nil {
			t.Errorf("ParseTiles(%q): expected error", s)
		}
	}
}

func TestParseTilesDigitsBeforeHonor(t *testing.T) {
	if _, err := ParseTiles("12E"); err == nil {
		t.Error("digits followed by an honor letter must fail")
	}
}

func TestParseTileSingle(t *testing.T) {
	tile, err := ParseTile("5s")
	if err != nil {
		t.Fatalf("ParseTile: %v", err)
	}
	if tile != (Tile{SuitSou, 5}) {
		t.Errorf("tile = %v, want 5s", tile)
	}
	if _, err := ParseTile("55s"); err == nil {
		t.Error("ParseTile on two tiles must fail")
	}
}

func TestFormatTilesRoundTrip(t *testing.T) {
	inputs := []string{
		"234m567p44sEEww",
		"19m19p19sESWNwgr",
		"123m456m789m234m55m",
	}
	for _, s := range inputs {
		tiles, err := ParseTiles(s)
		if err != nil {
			t.Fatalf("ParseTiles(%q): %v", s, err)
		}
		formatted := FormatTiles(tiles)
		back, err := ParseTiles(formatted)
		if err != nil {
			t.Fatalf("ParseTiles(FormatTiles) on %q: %v", formatted, err)
		}
		if CountTiles(back) != CountTiles(tiles) {
			t.Errorf("%q -> %q changed the tile multiset", s, formatted)
		}
	}
}

func TestParseWind(t *testing.T) {
	tests := []struct {
		in   string
		want Wind
	}{
		{"E", WindEast}, {"e", WindEast}, {"East", WindEast},
		{"S", WindSouth}, {"south", WindSouth},
		{"W", WindWest}, {"N", WindNorth},
	}
	for _, tc := range tests {
		got, err := ParseWind(tc.in)
		if err != nil {
			t.Errorf("ParseWind(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWind(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseWind("x"); err == nil {
		t.Error("ParseWind(x): expected error")
	}
}
