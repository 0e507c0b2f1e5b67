package riichi

import (
	"math/rand"
	"testing"
)

func TestDecomposeStandardHand(t *testing.T) {
	in := closedHand(t, "234m567m345p678p44s", "8p", WinTsumo)
	dec, err := DecomposeHand(in)
	if err != nil {
		t.Fatalf("DecomposeHand: %v", err)
	}
	h := regular(t, dec)

	if h.Pair != mustTile(t, "4s") {
		t.Errorf("pair = %s, want 4s", h.Pair)
	}
	for _, s := range h.Sets {
		if s.Type != SetSequence {
			t.Errorf("set %v: want all sequences", s.Tiles)
		}
		if s.Open {
			t.Errorf("set %v: concealed hand produced an open set", s.Tiles)
		}
	}
	if h.Wait != WaitRyanmen {
		t.Errorf("wait = %s, want Ryanmen", h.Wait)
	}
}

// The decomposed sets plus pair must be a permutation of the input tiles.
func TestDecompositionRoundTrip(t *testing.T) {
	hands := []string{
		"234m567m345p678p44s",
		"111m222m333m444p55p",
		"123m123m123p123p99s",
		"111999m111999p11s",
		"123456789m11122p",
	}
	for _, hand := range hands {
		tiles := mustTiles(t, hand)
		in := &HandInput{
			Tiles:       tiles,
			WinningTile: tiles[0],
			Player:      PlayerContext{SeatWind: WindSouth, Menzen: true},
			Game:        GameContext{PrevalentWind: WindEast},
			Method:      WinTsumo,
		}
		dec, err := DecomposeHand(in)
		if err != nil {
			t.Fatalf("%s: %v", hand, err)
		}
		h := regular(t, dec)
		got := CountTiles(h.AllTiles())
		want := CountTiles(in.Tiles)
		if got != want {
			t.Errorf("%s: decomposition tiles %v do not match input %v", hand, got, want)
		}
	}
}

// 111222333m is ambiguous (three triplets or three identical sequences).
// The search tries triplets before sequences at each index, so the triplet
// reading must win, and repeated runs must agree.
func TestDecompositionFirstFound(t *testing.T) {
	for run := 0; run < 5; run++ {
		in := closedHand(t, "111222333m456p77s", "4p", WinTsumo)
		dec, err := DecomposeHand(in)
		if err != nil {
			t.Fatalf("DecomposeHand: %v", err)
		}
		h := regular(t, dec)
		triplets := 0
		for _, s := range h.Sets {
			if s.Type == SetTriplet {
				triplets++
			}
		}
		if triplets != 3 {
			t.Fatalf("run %d: got %d triplets, want 3 (triplet branch is tried first)", run, triplets)
		}
	}
}

func TestDecomposeWithCalls(t *testing.T) {
	in := closedHand(t, "234m555p11s222sEEE", "1s", WinRon)
	in.OpenMelds = []DeclaredMeld{
		{Type: SetTriplet, Tile: mustTile(t, "5p")},
		{Type: SetSequence, Tile: mustTile(t, "2m")},
	}
	in.Player.Menzen = false

	dec, err := DecomposeHand(in)
	if err != nil {
		t.Fatalf("DecomposeHand: %v", err)
	}
	h := regular(t, dec)
	open := 0
	for _, s := range h.Sets {
		if s.Open {
			open++
		}
	}
	if open != 2 {
		t.Errorf("open sets = %d, want 2", open)
	}
	if h.Pair != mustTile(t, "1s") {
		t.Errorf("pair = %s, want 1s", h.Pair)
	}
}

// All four sets declared leaves two concealed tiles that must form the pair;
// the wait is necessarily tanki.
func TestDecomposeNakedTanki(t *testing.T) {
	in := &HandInput{
		Tiles:       mustTiles(t, "222m555m888p11sEEEE"),
		WinningTile: mustTile(t, "1s"),
		OpenMelds: []DeclaredMeld{
			{Type: SetTriplet, Tile: Tile{SuitMan, 2}},
			{Type: SetTriplet, Tile: Tile{SuitMan, 5}},
			{Type: SetTriplet, Tile: Tile{SuitPin, 8}},
		},
		ClosedKans: []Tile{{SuitWind, 1}},
		Player:     PlayerContext{SeatWind: WindSouth},
		Game:       GameContext{PrevalentWind: WindEast},
		Method:     WinRon,
	}
	dec, err := DecomposeHand(in)
	if err != nil {
		t.Fatalf("DecomposeHand: %v", err)
	}
	h := regular(t, dec)
	if h.Wait != WaitTanki {
		t.Errorf("wait = %s, want Tanki", h.Wait)
	}
	if h.Pair != mustTile(t, "1s") {
		t.Errorf("pair = %s, want 1s", h.Pair)
	}
}

func TestDecomposeClosedKanStaysConcealed(t *testing.T) {
	in := closedHand(t, "234m567m345p44s2222s", "4p", WinTsumo)
	in.ClosedKans = []Tile{{SuitSou, 2}}
	dec, err := DecomposeHand(in)
	if err != nil {
		t.Fatalf("DecomposeHand: %v", err)
	}
	h := regular(t, dec)
	for _, s := range h.Sets {
		if s.Type == SetQuad {
			if s.Open {
				t.Error("closed kan decomposed as open")
			}
			return
		}
	}
	t.Error("no quad in decomposition")
}

func TestDecomposeIrregularFallback(t *testing.T) {
	// Seven pairs has no 4-set partition.
	in := closedHand(t, "1133m5577p2299sEE", "E", WinTsumo)
	dec, err := DecomposeHand(in)
	if err != nil {
		t.Fatalf("DecomposeHand: %v", err)
	}
	h := irregular(t, dec)
	if h.Counts.Total() != 14 {
		t.Errorf("irregular counts total = %d, want 14", h.Counts.Total())
	}
}

func TestDecomposeMissingCallTiles(t *testing.T) {
	tests := []struct {
		name string
		meld DeclaredMeld
		want error
	}{
		{"pon not held", DeclaredMeld{Type: SetTriplet, Tile: Tile{SuitSou, 9}}, ErrPonTilesMissing},
		{"kan not held", DeclaredMeld{Type: SetQuad, Tile: Tile{SuitSou, 9}}, ErrKanTilesMissing},
		{"chi not held", DeclaredMeld{Type: SetSequence, Tile: Tile{SuitSou, 7}}, ErrChiTilesMissing},
		{"chi from 8", DeclaredMeld{Type: SetSequence, Tile: Tile{SuitSou, 8}}, ErrChiOutOfRange},
		{"chi from wind", DeclaredMeld{Type: SetSequence, Tile: Tile{SuitWind, 1}}, ErrChiOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := closedHand(t, "234m567m345p678p44s", "8p", WinRon)
			in.OpenMelds = []DeclaredMeld{tc.meld}
			if _, err := DecomposeHand(in); err != tc.want {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

// isWinningShape is an independent reference: a from-scratch check that the
// counts split into 4 sets and a pair, written without backtracking reuse.
func isWinningShape(counts TileCounts) bool {
	for i := 0; i < NumTileKinds; i++ {
		if counts[i] < 2 {
			continue
		}
		c := counts
		c[i] -= 2
		if consumeSets(c, 0) {
			return true
		}
	}
	return false
}

func consumeSets(c TileCounts, i int) bool {
	for i < NumTileKinds && c[i] == 0 {
		i++
	}
	if i == NumTileKinds {
		return true
	}
	if c[i] >= 3 {
		c2 := c
		c2[i] -= 3
		if consumeSets(c2, i) {
			return true
		}
	}
	if i < 27 && i%9 < 7 && c[i+1] > 0 && c[i+2] > 0 {
		c2 := c
		c2[i]--
		c2[i+1]--
		c2[i+2]--
		if consumeSets(c2, i) {
			return true
		}
	}
	return false
}

// Cross-check the engine against the reference on random 14-tile multisets.
// Most draws are not winning shapes; the point is that the engine and the
// reference never disagree about which are.
func TestDecomposeAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 2000; trial++ {
		var counts TileCounts
		for n := 0; n < 14; {
			i := rng.Intn(NumTileKinds)
			if counts[i] < 4 {
				counts[i]++
				n++
			}
		}
		tiles := counts.Tiles()
		in := &HandInput{
			Tiles:       tiles,
			WinningTile: tiles[0],
			Player:      PlayerContext{SeatWind: WindEast, Menzen: true},
			Game:        GameContext{PrevalentWind: WindEast},
			Method:      WinTsumo,
		}
		dec, err := DecomposeHand(in)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		_, gotRegular := dec.(*RegularHand)
		if want := isWinningShape(counts); gotRegular != want {
			t.Fatalf("trial %d: engine regular=%v, reference=%v for %v",
				trial, gotRegular, want, FormatTiles(tiles))
		}
	}
}
