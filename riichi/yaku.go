package riichi

// Yaku identifies one recognized scoring pattern, including the dora bonus
// entries (one entry per bonus han).
type Yaku int

const (
	// 1 han
	YakuRiichi Yaku = iota
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuIipeikou
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuTanyao
	YakuYakuhaiSeatWind
	YakuYakuhaiPrevalentWind
	YakuYakuhaiDragon

	// 2 han
	YakuDoubleRiichi
	YakuChiitoitsu
	YakuSanshokuDoujun
	YakuIttsu
	YakuChanta
	YakuToitoi
	YakuSanankou
	YakuSanshokuDoukou
	YakuSankantsu
	YakuShousangen
	YakuHonroutou

	// 3 han
	YakuRyanpeikou
	YakuJunchan
	YakuHonitsu

	// 6 han
	YakuChinitsu

	// Yakuman
	YakuTenhou
	YakuChiihou
	YakuRenhou
	YakuDaisangen
	YakuSuuankou
	YakuDaisuushi
	YakuShousuushi
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuSuukantsu
	YakuKokushiMusou
	YakuChuurenPoutou

	// Double yakuman
	YakuSuuankouTanki
	YakuKokushiJuusanmen
	YakuJunseiChuuren

	// Dora (bonus han, not yaku on their own)
	YakuDora
	YakuUraDora
	YakuAkaDora
)

var yakuNames = map[Yaku]string{
	YakuRiichi:               "Riichi",
	YakuIppatsu:              "Ippatsu",
	YakuMenzenTsumo:          "Menzen Tsumo",
	YakuPinfu:                "Pinfu",
	YakuIipeikou:             "Iipeikou",
	YakuHaitei:               "Haitei Raoyue",
	YakuHoutei:               "Houtei Raoyui",
	YakuRinshan:              "Rinshan Kaihou",
	YakuChankan:              "Chankan",
	YakuTanyao:               "Tanyao",
	YakuYakuhaiSeatWind:      "Yakuhai (Seat Wind)",
	YakuYakuhaiPrevalentWind: "Yakuhai (Prevalent Wind)",
	YakuYakuhaiDragon:        "Yakuhai (Dragon)",
	YakuDoubleRiichi:         "Double Riichi",
	YakuChiitoitsu:           "Chiitoitsu",
	YakuSanshokuDoujun:       "Sanshoku Doujun",
	YakuIttsu:                "Ittsu",
	YakuChanta:               "Chanta",
	YakuToitoi:               "Toitoi",
	YakuSanankou:             "Sanankou",
	YakuSanshokuDoukou:       "Sanshoku Doukou",
	YakuSankantsu:            "Sankantsu",
	YakuShousangen:           "Shousangen",
	YakuHonroutou:            "Honroutou",
	YakuRyanpeikou:           "Ryanpeikou",
	YakuJunchan:              "Junchan",
	YakuHonitsu:              "Honitsu",
	YakuChinitsu:             "Chinitsu",
	YakuTenhou:               "Tenhou",
	YakuChiihou:              "Chiihou",
	YakuRenhou:               "Renhou",
	YakuDaisangen:            "Daisangen",
	YakuSuuankou:             "Suuankou",
	YakuDaisuushi:            "Daisuushi",
	YakuShousuushi:           "Shousuushi",
	YakuTsuuiisou:            "Tsuuiisou",
	YakuChinroutou:           "Chinroutou",
	YakuRyuuiisou:            "Ryuuiisou",
	YakuSuukantsu:            "Suukantsu",
	YakuKokushiMusou:         "Kokushi Musou",
	YakuChuurenPoutou:        "Chuuren Poutou",
	YakuSuuankouTanki:        "Suuankou Tanki",
	YakuKokushiJuusanmen:     "Kokushi Musou 13-sided",
	YakuJunseiChuuren:        "Junsei Chuuren Poutou",
	YakuDora:                 "Dora",
	YakuUraDora:              "Ura Dora",
	YakuAkaDora:              "Aka Dora",
}

func (y Yaku) String() string {
	if name, ok := yakuNames[y]; ok {
		return name
	}
	return "?"
}

// HanValue returns the han a single occurrence is worth, applying the
// open-hand reduction (kuisagari) per pattern. Yakuman score through
// YakumanValue instead and are worth 0 here.
func (y Yaku) HanValue(menzen bool) int {
	switch y {
	case YakuRiichi, YakuIppatsu, YakuMenzenTsumo, YakuPinfu, YakuIipeikou,
		YakuHaitei, YakuHoutei, YakuRinshan, YakuChankan, YakuTanyao,
		YakuYakuhaiSeatWind, YakuYakuhaiPrevalentWind, YakuYakuhaiDragon,
		YakuDora, YakuUraDora, YakuAkaDora:
		return 1
	case YakuDoubleRiichi, YakuChiitoitsu, YakuToitoi, YakuSanankou,
		YakuSanshokuDoukou, YakuSankantsu, YakuShousangen, YakuHonroutou:
		return 2
	case YakuSanshokuDoujun, YakuIttsu, YakuChanta:
		if menzen {
			return 2
		}
		return 1
	case YakuRyanpeikou:
		return 3
	case YakuJunchan, YakuHonitsu:
		if menzen {
			return 3
		}
		return 2
	case YakuChinitsu:
		if menzen {
			return 6
		}
		return 5
	}
	return 0
}

// YakumanValue returns 1 for single yakuman, 2 for double, 0 otherwise.
func (y Yaku) YakumanValue() int {
	switch y {
	case YakuTenhou, YakuChiihou, YakuRenhou, YakuDaisangen, YakuSuuankou,
		YakuDaisuushi, YakuShousuushi, YakuTsuuiisou, YakuChinroutou,
		YakuRyuuiisou, YakuSuukantsu, YakuKokushiMusou, YakuChuurenPoutou:
		return 1
	case YakuSuuankouTanki, YakuKokushiJuusanmen, YakuJunseiChuuren:
		return 2
	}
	return 0
}

// YakuAnalysis is what the recognizer hands to the score calculator: the
// pattern list (dora entries repeated per han), the red-five count, and the
// decomposition the patterns were read from.
type YakuAnalysis struct {
	Yaku    []Yaku
	AkaDora int
	Hand    Decomposition
}

// HasYaku reports whether the list contains the given pattern.
func (a *YakuAnalysis) HasYaku(y Yaku) bool {
	for _, v := range a.Yaku {
		if v == y {
			return true
		}
	}
	return false
}

// IdentifyYaku analyzes a decomposed hand and its context and returns every
// recognized pattern. A hand with zero patterns is illegal and yields
// ErrNoYaku; an irregular hand matching neither seven pairs nor thirteen
// orphans yields the same.
func IdentifyYaku(dec Decomposition, player PlayerContext, game GameContext, method WinMethod) (*YakuAnalysis, error) {
	switch h := dec.(type) {
	case *RegularHand:
		return identifyRegularYaku(h, player, game, method)
	case *IrregularHand:
		return identifyIrregularYaku(h, player, game, method)
	}
	panic("riichi: unknown decomposition variant")
}

// --- Regular hands ---

func identifyRegularYaku(h *RegularHand, player PlayerContext, game GameContext, method WinMethod) (*YakuAnalysis, error) {
	all := h.AllTiles()

	if yakuman := checkRegularYakuman(h, player, game, method, all); len(yakuman) > 0 {
		// Dora never count toward yakuman.
		return &YakuAnalysis{Yaku: yakuman, Hand: h}, nil
	}

	menzen := player.Menzen
	var yaku []Yaku

	if player.DoubleRiichi {
		yaku = append(yaku, YakuDoubleRiichi)
	} else if player.Riichi {
		yaku = append(yaku, YakuRiichi)
	}
	if player.Ippatsu {
		yaku = append(yaku, YakuIppatsu)
	}
	if method == WinTsumo && menzen {
		yaku = append(yaku, YakuMenzenTsumo)
	}
	if checkPinfu(h, player, game, menzen) {
		yaku = append(yaku, YakuPinfu)
	}
	switch duplicateSequencePairs(h) {
	case 1:
		if menzen {
			yaku = append(yaku, YakuIipeikou)
		}
	case 2:
		if menzen {
			yaku = append(yaku, YakuRyanpeikou)
		}
	}
	if game.Haitei {
		yaku = append(yaku, YakuHaitei)
	}
	if game.Houtei {
		yaku = append(yaku, YakuHoutei)
	}
	if game.Rinshan {
		yaku = append(yaku, YakuRinshan)
	}
	if game.Chankan {
		yaku = append(yaku, YakuChankan)
	}
	if allSimples(all) {
		yaku = append(yaku, YakuTanyao)
	}
	yaku = append(yaku, checkYakuhai(h, player, game)...)
	if checkSanshokuDoujun(h) {
		yaku = append(yaku, YakuSanshokuDoujun)
	}
	if checkIttsu(h) {
		yaku = append(yaku, YakuIttsu)
	}
	// Junchan beats chanta; both need at least one sequence, which keeps
	// them disjoint from honroutou.
	switch checkOutsideHand(h) {
	case outsideTerminalsOnly:
		yaku = append(yaku, YakuJunchan)
	case outsideWithHonors:
		yaku = append(yaku, YakuChanta)
	}
	if countTripletLike(h) == 4 {
		yaku = append(yaku, YakuToitoi)
	}
	if concealedTriplets(h, method) == 3 {
		yaku = append(yaku, YakuSanankou)
	}
	if checkSanshokuDoukou(h) {
		yaku = append(yaku, YakuSanshokuDoukou)
	}
	if countQuads(h) == 3 {
		yaku = append(yaku, YakuSankantsu)
	}
	if checkShousangen(h) {
		yaku = append(yaku, YakuShousangen)
	}
	if allTerminalsOrHonors(all) {
		yaku = append(yaku, YakuHonroutou)
	}
	switch flushKind(all) {
	case flushPure:
		yaku = append(yaku, YakuChinitsu)
	case flushMixed:
		yaku = append(yaku, YakuHonitsu)
	}

	if len(yaku) == 0 {
		return nil, ErrNoYaku
	}

	yaku = append(yaku, doraYaku(all, player, game)...)
	return &YakuAnalysis{Yaku: yaku, AkaDora: game.AkaDora, Hand: h}, nil
}

// firstTurnYakuman returns the yakuman owed to the first-turn win flags.
// These apply to any hand shape, so the regular and irregular paths share
// them.
func firstTurnYakuman(game GameContext) []Yaku {
	var yakuman []Yaku
	if game.Tenhou {
		yakuman = append(yakuman, YakuTenhou)
	}
	if game.Chiihou {
		yakuman = append(yakuman, YakuChiihou)
	}
	if game.Renhou {
		yakuman = append(yakuman, YakuRenhou)
	}
	return yakuman
}

func checkRegularYakuman(h *RegularHand, player PlayerContext, game GameContext, method WinMethod, all []Tile) []Yaku {
	yakuman := firstTurnYakuman(game)

	if countDragonTriplets(h) == 3 {
		yakuman = append(yakuman, YakuDaisangen)
	}
	if concealedTriplets(h, method) == 4 {
		if h.Wait == WaitTanki {
			yakuman = append(yakuman, YakuSuuankouTanki)
		} else {
			yakuman = append(yakuman, YakuSuuankou)
		}
	}
	windTriplets := 0
	for _, s := range h.Sets {
		if (s.Type == SetTriplet || s.Type == SetQuad) && s.Tiles[0].Suit == SuitWind {
			windTriplets++
		}
	}
	if windTriplets == 4 {
		yakuman = append(yakuman, YakuDaisuushi)
	} else if windTriplets == 3 && h.Pair.Suit == SuitWind {
		yakuman = append(yakuman, YakuShousuushi)
	}
	allHonors := true
	allTerminals := true
	for _, t := range all {
		if !t.IsHonor() {
			allHonors = false
		}
		if !t.IsTerminal() {
			allTerminals = false
		}
	}
	if allHonors {
		yakuman = append(yakuman, YakuTsuuiisou)
	}
	if allTerminals {
		yakuman = append(yakuman, YakuChinroutou)
	}
	if allGreens(all) {
		yakuman = append(yakuman, YakuRyuuiisou)
	}
	if countQuads(h) == 4 {
		yakuman = append(yakuman, YakuSuukantsu)
	}
	if player.Menzen {
		switch checkChuuren(h) {
		case chuurenJunsei:
			yakuman = append(yakuman, YakuJunseiChuuren)
		case chuurenPlain:
			yakuman = append(yakuman, YakuChuurenPoutou)
		}
	}
	return yakuman
}

// --- Regular-hand helpers ---

func countTripletLike(h *RegularHand) int {
	n := 0
	for _, s := range h.Sets {
		if s.Type == SetTriplet || s.Type == SetQuad {
			n++
		}
	}
	return n
}

func countQuads(h *RegularHand) int {
	n := 0
	for _, s := range h.Sets {
		if s.Type == SetQuad {
			n++
		}
	}
	return n
}

func countDragonTriplets(h *RegularHand) int {
	n := 0
	for _, s := range h.Sets {
		if (s.Type == SetTriplet || s.Type == SetQuad) && s.Tiles[0].Suit == SuitDragon {
			n++
		}
	}
	return n
}

// concealedTriplets counts triplets and quads that stay concealed for
// sanankou/suuankou purposes. A triplet completed by the winning discard
// (ron on a shanpon wait) counts as open even though the search found it in
// the concealed part.
func concealedTriplets(h *RegularHand, method WinMethod) int {
	n := 0
	for _, s := range h.Sets {
		if s.Type != SetTriplet && s.Type != SetQuad {
			continue
		}
		if s.Open {
			continue
		}
		if s.Type == SetTriplet && method == WinRon && h.Wait == WaitShanpon && s.Contains(h.WinningTile) {
			continue
		}
		n++
	}
	return n
}

func checkPinfu(h *RegularHand, player PlayerContext, game GameContext, menzen bool) bool {
	if !menzen || h.Wait != WaitRyanmen {
		return false
	}
	for _, s := range h.Sets {
		if s.Type != SetSequence {
			return false
		}
	}
	if h.Pair.Suit == SuitDragon {
		return false
	}
	if h.Pair.Suit == SuitWind &&
		(h.Pair == player.SeatWind.Tile() || h.Pair == game.PrevalentWind.Tile()) {
		return false
	}
	return true
}

// duplicateSequencePairs counts distinct pairs of identical sequences:
// 1 for iipeikou, 2 for ryanpeikou.
func duplicateSequencePairs(h *RegularHand) int {
	starts := map[int]int{}
	for _, s := range h.Sets {
		if s.Type == SetSequence {
			starts[s.Tiles[0].Index()]++
		}
	}
	pairs := 0
	for _, n := range starts {
		pairs += n / 2
	}
	return pairs
}

func checkYakuhai(h *RegularHand, player PlayerContext, game GameContext) []Yaku {
	var yaku []Yaku
	for _, s := range h.Sets {
		if s.Type != SetTriplet && s.Type != SetQuad {
			continue
		}
		t := s.Tiles[0]
		if t.Suit == SuitDragon {
			yaku = append(yaku, YakuYakuhaiDragon)
			continue
		}
		if t.Suit == SuitWind {
			// A wind that is both seat and prevalent scores twice.
			if t == player.SeatWind.Tile() {
				yaku = append(yaku, YakuYakuhaiSeatWind)
			}
			if t == game.PrevalentWind.Tile() {
				yaku = append(yaku, YakuYakuhaiPrevalentWind)
			}
		}
	}
	return yaku
}

func checkSanshokuDoujun(h *RegularHand) bool {
	for start := 1; start <= 7; start++ {
		var suits [3]bool
		for _, s := range h.Sets {
			if s.Type == SetSequence && s.Tiles[0].Value == start && s.Tiles[0].Suit <= SuitSou {
				suits[s.Tiles[0].Suit] = true
			}
		}
		if suits[SuitMan] && suits[SuitPin] && suits[SuitSou] {
			return true
		}
	}
	return false
}

func checkSanshokuDoukou(h *RegularHand) bool {
	for value := 1; value <= 9; value++ {
		var suits [3]bool
		for _, s := range h.Sets {
			if (s.Type == SetTriplet || s.Type == SetQuad) &&
				s.Tiles[0].Suit <= SuitSou && s.Tiles[0].Value == value {
				suits[s.Tiles[0].Suit] = true
			}
		}
		if suits[SuitMan] && suits[SuitPin] && suits[SuitSou] {
			return true
		}
	}
	return false
}

func checkIttsu(h *RegularHand) bool {
	for suit := SuitMan; suit <= SuitSou; suit++ {
		var starts [3]bool
		for _, s := range h.Sets {
			if s.Type == SetSequence && s.Tiles[0].Suit == suit {
				switch s.Tiles[0].Value {
				case 1:
					starts[0] = true
				case 4:
					starts[1] = true
				case 7:
					starts[2] = true
				}
			}
		}
		if starts[0] && starts[1] && starts[2] {
			return true
		}
	}
	return false
}

type outsideKind int

const (
	outsideNone outsideKind = iota
	outsideWithHonors
	outsideTerminalsOnly
)

// checkOutsideHand tests chanta/junchan: every set and the pair must touch a
// terminal or honor, with at least one sequence present.
func checkOutsideHand(h *RegularHand) outsideKind {
	sequences := 0
	hasHonor := h.Pair.IsHonor()
	if !h.Pair.IsTerminalOrHonor() {
		return outsideNone
	}
	for _, s := range h.Sets {
		switch s.Type {
		case SetSequence:
			sequences++
			if s.Tiles[0].Value != 1 && s.Tiles[2].Value != 9 {
				return outsideNone
			}
		default:
			t := s.Tiles[0]
			if !t.IsTerminalOrHonor() {
				return outsideNone
			}
			if t.IsHonor() {
				hasHonor = true
			}
		}
	}
	if sequences == 0 {
		return outsideNone // that shape is honroutou territory
	}
	if hasHonor {
		return outsideWithHonors
	}
	return outsideTerminalsOnly
}

func checkShousangen(h *RegularHand) bool {
	return countDragonTriplets(h) == 2 && h.Pair.Suit == SuitDragon
}

type flushType int

const (
	flushNone flushType = iota
	flushMixed
	flushPure
)

func flushKind(tiles []Tile) flushType {
	suit := Suit(-1)
	hasHonors := false
	for _, t := range tiles {
		if t.IsHonor() {
			hasHonors = true
			continue
		}
		if suit == -1 {
			suit = t.Suit
		} else if t.Suit != suit {
			return flushNone
		}
	}
	if suit == -1 {
		return flushNone // all honors is tsuuiisou, not a flush
	}
	if hasHonors {
		return flushMixed
	}
	return flushPure
}

func allSimples(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsSimple() {
			return false
		}
	}
	return true
}

func allTerminalsOrHonors(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

// allGreens reports whether every tile is one of the all-green set:
// Sou 2, 3, 4, 6, 8 and the Green dragon.
func allGreens(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Suit == SuitDragon && t.Value == 2 {
			continue
		}
		if t.Suit == SuitSou {
			switch t.Value {
			case 2, 3, 4, 6, 8:
				continue
			}
		}
		return false
	}
	return true
}

type chuurenKind int

const (
	chuurenNone chuurenKind = iota
	chuurenPlain
	chuurenJunsei
)

// checkChuuren tests nine gates: a concealed pure flush holding
// 1112345678999 plus one extra tile of the same suit. The junsei (true)
// variant holds the bare 1112345678999 before the win, i.e. removing the
// winning tile leaves exactly the base pattern.
func checkChuuren(h *RegularHand) chuurenKind {
	for _, s := range h.Sets {
		if s.Open || s.Type == SetQuad {
			return chuurenNone
		}
	}
	all := h.AllTiles()
	if flushKind(all) != flushPure || len(all) != 14 {
		return chuurenNone
	}
	var ranks [10]int
	for _, t := range all {
		ranks[t.Value]++
	}
	base := [10]int{0, 3, 1, 1, 1, 1, 1, 1, 1, 3}
	for v := 1; v <= 9; v++ {
		if ranks[v] < base[v] {
			return chuurenNone
		}
	}
	if h.WinningTile.Suit != all[0].Suit {
		return chuurenNone
	}
	ranks[h.WinningTile.Value]--
	if ranks == base {
		return chuurenJunsei
	}
	return chuurenPlain
}

// --- Irregular hands ---

func identifyIrregularYaku(h *IrregularHand, player PlayerContext, game GameContext, method WinMethod) (*YakuAnalysis, error) {
	if h.Counts.Total() != 14 {
		return nil, ErrNoYaku
	}

	if ok, wait := checkKokushi(h); ok {
		yakuman := []Yaku{}
		if wait == WaitKokushiThirteen {
			yakuman = append(yakuman, YakuKokushiJuusanmen)
		} else {
			yakuman = append(yakuman, YakuKokushiMusou)
		}
		yakuman = append(yakuman, firstTurnYakuman(game)...)
		return &YakuAnalysis{Yaku: yakuman, Hand: h}, nil
	}

	if !checkSevenPairs(h) {
		return nil, ErrNoYaku
	}

	tiles := h.Counts.Tiles()

	// Seven pairs of honors only is the all-honors yakuman, not chiitoitsu.
	allHonors := true
	for _, t := range tiles {
		if !t.IsHonor() {
			allHonors = false
			break
		}
	}
	yakuman := firstTurnYakuman(game)
	if allHonors {
		yakuman = append(yakuman, YakuTsuuiisou)
	}
	if len(yakuman) > 0 {
		return &YakuAnalysis{Yaku: yakuman, Hand: h}, nil
	}

	yaku := []Yaku{YakuChiitoitsu}
	if player.DoubleRiichi {
		yaku = append(yaku, YakuDoubleRiichi)
	} else if player.Riichi {
		yaku = append(yaku, YakuRiichi)
	}
	if player.Ippatsu {
		yaku = append(yaku, YakuIppatsu)
	}
	if method == WinTsumo && player.Menzen {
		yaku = append(yaku, YakuMenzenTsumo)
	}
	if game.Haitei {
		yaku = append(yaku, YakuHaitei)
	}
	if game.Houtei {
		yaku = append(yaku, YakuHoutei)
	}
	if allSimples(tiles) {
		yaku = append(yaku, YakuTanyao)
	}
	if allTerminalsOrHonors(tiles) {
		yaku = append(yaku, YakuHonroutou)
	}
	switch flushKind(tiles) {
	case flushPure:
		yaku = append(yaku, YakuChinitsu)
	case flushMixed:
		yaku = append(yaku, YakuHonitsu)
	}

	yaku = append(yaku, doraYaku(tiles, player, game)...)
	return &YakuAnalysis{Yaku: yaku, AkaDora: game.AkaDora, Hand: h}, nil
}

var kokushiIndexes = func() []int {
	tiles := []Tile{
		{SuitMan, 1}, {SuitMan, 9}, {SuitPin, 1}, {SuitPin, 9},
		{SuitSou, 1}, {SuitSou, 9},
		{SuitWind, 1}, {SuitWind, 2}, {SuitWind, 3}, {SuitWind, 4},
		{SuitDragon, 1}, {SuitDragon, 2}, {SuitDragon, 3},
	}
	idx := make([]int, len(tiles))
	for k, t := range tiles {
		idx[k] = t.Index()
	}
	return idx
}()

func checkKokushi(h *IrregularHand) (bool, WaitType) {
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		if !TileFromIndex(i).IsTerminalOrHonor() {
			return false, 0
		}
	}
	pairs := 0
	for _, i := range kokushiIndexes {
		switch h.Counts[i] {
		case 1:
		case 2:
			pairs++
		default:
			return false, 0
		}
	}
	if pairs != 1 {
		return false, 0
	}
	// Holding two of the winning tile means the other 13 kinds were all
	// singles before the win: the 13-sided wait.
	if h.Counts[h.WinningTile.Index()] == 2 {
		return true, WaitKokushiThirteen
	}
	return true, WaitKokushiSingle
}

func checkSevenPairs(h *IrregularHand) bool {
	pairs := 0
	for _, c := range h.Counts {
		switch c {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// --- Dora ---

// DoraTileFor returns the tile a dora indicator points at: the next tile in
// its family, wrapping 9 to 1, North to East and Red to White.
func DoraTileFor(indicator Tile) Tile {
	switch indicator.Suit {
	case SuitMan, SuitPin, SuitSou:
		if indicator.Value == 9 {
			return Tile{indicator.Suit, 1}
		}
		return Tile{indicator.Suit, indicator.Value + 1}
	case SuitWind:
		if indicator.Value == 4 {
			return Tile{SuitWind, 1}
		}
		return Tile{SuitWind, indicator.Value + 1}
	case SuitDragon:
		if indicator.Value == 3 {
			return Tile{SuitDragon, 1}
		}
		return Tile{SuitDragon, indicator.Value + 1}
	}
	panic("riichi: invalid dora indicator")
}

func countDora(tiles []Tile, indicators []Tile) int {
	count := 0
	for _, ind := range indicators {
		dora := DoraTileFor(ind)
		for _, t := range tiles {
			if t == dora {
				count++
			}
		}
	}
	return count
}

// doraYaku returns one list entry per bonus han: indicator dora, ura dora
// (riichi hands only) and red fives.
func doraYaku(tiles []Tile, player PlayerContext, game GameContext) []Yaku {
	var yaku []Yaku
	for n := countDora(tiles, game.DoraIndicators); n > 0; n-- {
		yaku = append(yaku, YakuDora)
	}
	if player.Riichi || player.DoubleRiichi {
		for n := countDora(tiles, game.UraDoraIndicators); n > 0; n-- {
			yaku = append(yaku, YakuUraDora)
		}
	}
	for n := game.AkaDora; n > 0; n-- {
		yaku = append(yaku, YakuAkaDora)
	}
	return yaku
}
