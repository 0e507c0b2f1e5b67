package riichi

// SetType distinguishes the three meld shapes.
type SetType int

const (
	SetSequence SetType = iota // three consecutive ranks, one suit
	SetTriplet                 // three identical tiles
	SetQuad                    // four identical tiles, declared only
)

// Set is one meld of a decomposed hand. Tiles holds exactly the tiles that
// exist: three for sequences and triplets, four for quads. Open is true for
// called melds (chi, pon, open kan); a closed kan stays concealed.
type Set struct {
	Type  SetType
	Open  bool
	Tiles []Tile
}

func sequenceSet(low Tile, open bool) Set {
	i := low.Index()
	return Set{
		Type:  SetSequence,
		Open:  open,
		Tiles: []Tile{low, TileFromIndex(i + 1), TileFromIndex(i + 2)},
	}
}

func tripletSet(t Tile, open bool) Set {
	return Set{Type: SetTriplet, Open: open, Tiles: []Tile{t, t, t}}
}

func quadSet(t Tile, open bool) Set {
	return Set{Type: SetQuad, Open: open, Tiles: []Tile{t, t, t, t}}
}

// Contains reports whether the set includes the given tile kind.
func (s Set) Contains(t Tile) bool {
	for _, st := range s.Tiles {
		if st == t {
			return true
		}
	}
	return false
}

// WaitType classifies the shape the winning tile completed.
type WaitType int

const (
	WaitRyanmen WaitType = iota // two-sided sequence wait
	WaitTanki                   // pair wait
	WaitPenchan                 // edge wait (1-2 on 3, or 8-9 on 7)
	WaitKanchan                 // closed wait (gap in a sequence)
	WaitShanpon                 // triplet-pair wait

	// Irregular-hand waits, assigned by the yaku recognizer.
	WaitKokushiSingle   // thirteen orphans, waiting on one tile
	WaitKokushiThirteen // thirteen orphans, 13-sided wait
)

func (w WaitType) String() string {
	switch w {
	case WaitRyanmen:
		return "Ryanmen"
	case WaitTanki:
		return "Tanki"
	case WaitPenchan:
		return "Penchan"
	case WaitKanchan:
		return "Kanchan"
	case WaitShanpon:
		return "Shanpon"
	case WaitKokushiSingle:
		return "Kokushi single wait"
	case WaitKokushiThirteen:
		return "Kokushi 13-sided wait"
	}
	return "?"
}

// Decomposition is the outcome of the hand-decomposition engine: either a
// standard 4-set, 1-pair structure or an irregular marker for the yaku
// recognizer to interpret. It is a closed sum type; no other implementations
// exist.
type Decomposition interface {
	isDecomposition()
}

// RegularHand is the standard 4 melds + 1 pair structure.
type RegularHand struct {
	Sets        [4]Set
	Pair        Tile
	WinningTile Tile
	Wait        WaitType
}

func (*RegularHand) isDecomposition() {}

// AllTiles returns the full tile multiset of the hand (sets plus pair).
func (h *RegularHand) AllTiles() []Tile {
	tiles := make([]Tile, 0, 18)
	for _, s := range h.Sets {
		tiles = append(tiles, s.Tiles...)
	}
	return append(tiles, h.Pair, h.Pair)
}

// IrregularHand marks a hand with no 4-set, 1-pair partition. It carries the
// full pre-decomposition counts; whether it is seven pairs, thirteen orphans
// or simply invalid is the yaku recognizer's call, not the engine's.
type IrregularHand struct {
	Counts      TileCounts
	WinningTile Tile
}

func (*IrregularHand) isDecomposition() {}

// WinMethod says how the hand was won.
type WinMethod int

const (
	WinTsumo WinMethod = iota // self-draw
	WinRon                    // win off a discard
)

func (m WinMethod) String() string {
	if m == WinTsumo {
		return "Tsumo"
	}
	return "Ron"
}

// DeclaredMeld is an open call as the caller declares it: the meld shape plus
// a representative tile (the lowest tile of a chi, the repeated tile of a pon
// or open kan).
type DeclaredMeld struct {
	Type SetType
	Tile Tile
}

// PlayerContext describes the winning player at the moment of the win.
type PlayerContext struct {
	SeatWind     Wind
	IsDealer     bool
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Menzen       bool // fully concealed (closed kans do not break this)
}

// GameContext describes the table at the moment of the win.
type GameContext struct {
	PrevalentWind     Wind
	Honba             int // repeat-round counters
	RiichiSticks      int
	DoraIndicators    []Tile
	UraDoraIndicators []Tile
	AkaDora           int // red fives held

	// Special win-condition flags. The validator rejects inconsistent
	// combinations before any of these are acted on.
	Tenhou  bool // dealer wins on the initial deal
	Chiihou bool // non-dealer wins on the first self-draw
	Renhou  bool // non-dealer wins on a discard before their first draw
	Haitei  bool // self-draw of the last wall tile
	Houtei  bool // win on the last discard
	Rinshan bool // self-draw from the dead wall after a kan
	Chankan bool // robbing an added kan
}

// HandInput is the full declared hand handed to the scoring pipeline.
// Tiles holds every tile the player ends with (13-18, including call tiles
// and the winning tile).
type HandInput struct {
	Tiles       []Tile
	WinningTile Tile
	OpenMelds   []DeclaredMeld
	ClosedKans  []Tile // representative tile per concealed kan
	Player      PlayerContext
	Game        GameContext
	Method      WinMethod
}
