package riichi

import "errors"

// Rejection reasons. Each failed validation check maps to exactly one of
// these, so callers can match with errors.Is and report a stable message.
var (
	ErrRiichiConflict     = errors.New("cannot be both riichi and double riichi")
	ErrIppatsuNoRiichi    = errors.New("ippatsu requires riichi or double riichi")
	ErrMenzenWithMelds    = errors.New("hand declared concealed but has open melds")
	ErrHaiteiRon          = errors.New("haitei (last draw) cannot be a ron win")
	ErrHouteiTsumo        = errors.New("houtei (last discard) cannot be a tsumo win")
	ErrHaiteiHoutei       = errors.New("cannot be both haitei and houtei")
	ErrRinshanRon         = errors.New("rinshan (kan draw) cannot be a ron win")
	ErrChankanTsumo       = errors.New("chankan (robbing a kan) cannot be a tsumo win")
	ErrTenhouNotDealer    = errors.New("tenhou requires the dealer seat")
	ErrTenhouNotTsumo     = errors.New("tenhou must be a tsumo win")
	ErrTenhouWithCalls    = errors.New("tenhou cannot have any calls")
	ErrChiihouDealer      = errors.New("chiihou requires a non-dealer seat")
	ErrChiihouNotTsumo    = errors.New("chiihou must be a tsumo win")
	ErrChiihouWithCalls   = errors.New("chiihou cannot have any calls")
	ErrRenhouNotRon       = errors.New("renhou must be a ron win")
	ErrTooManyCalls       = errors.New("more than 4 melds declared")
	ErrTileCount          = errors.New("tile count does not match declared kans")
	ErrWinningTileMissing = errors.New("winning tile is not among the hand tiles")
	ErrTileOverflow       = errors.New("more than 4 copies of a tile kind")
	ErrAkaDoraCount       = errors.New("aka dora count exceeds the fives held")
	ErrAkaDoraLimit       = errors.New("aka dora count exceeds the physical maximum")

	// Returned by DecomposeHand when declared calls cannot be carved out of
	// the held tiles, or a naked wait has no pair.
	ErrKanTilesMissing = errors.New("declared kan tiles not present in hand")
	ErrPonTilesMissing = errors.New("declared pon tiles not present in hand")
	ErrChiTilesMissing = errors.New("declared chi tiles not present in hand")
	ErrChiOutOfRange   = errors.New("chi representative tile must be rank 1-7 of a suit")
	ErrNoPair          = errors.New("four declared melds but no pair in hand")

	// Terminal rejection from the yaku recognizer: a winning hand that
	// scores zero yaku is illegal.
	ErrNoYaku = errors.New("hand has no yaku")
)

// validateGameState checks the declared win-condition flags for logical
// conflicts. Checks are independent; the first violation is reported.
func validateGameState(in *HandInput) error {
	p, g := &in.Player, &in.Game
	calls := len(in.OpenMelds) + len(in.ClosedKans)

	if p.Riichi && p.DoubleRiichi {
		return ErrRiichiConflict
	}
	if p.Ippatsu && !(p.Riichi || p.DoubleRiichi) {
		return ErrIppatsuNoRiichi
	}
	if p.Menzen && len(in.OpenMelds) > 0 {
		return ErrMenzenWithMelds
	}
	if g.Haitei && in.Method == WinRon {
		return ErrHaiteiRon
	}
	if g.Houtei && in.Method == WinTsumo {
		return ErrHouteiTsumo
	}
	if g.Haitei && g.Houtei {
		return ErrHaiteiHoutei
	}
	if g.Rinshan && in.Method == WinRon {
		return ErrRinshanRon
	}
	if g.Chankan && in.Method == WinTsumo {
		return ErrChankanTsumo
	}
	if g.Tenhou {
		if !p.IsDealer {
			return ErrTenhouNotDealer
		}
		if in.Method != WinTsumo {
			return ErrTenhouNotTsumo
		}
		if calls > 0 {
			return ErrTenhouWithCalls
		}
	}
	if g.Chiihou {
		if p.IsDealer {
			return ErrChiihouDealer
		}
		if in.Method != WinTsumo {
			return ErrChiihouNotTsumo
		}
		if calls > 0 {
			return ErrChiihouWithCalls
		}
	}
	if g.Renhou && in.Method != WinRon {
		return ErrRenhouNotRon
	}
	return nil
}

// validateComposition checks the tile arithmetic of the declared hand
// against the master count vector.
func validateComposition(in *HandInput, master TileCounts, rules Rules) error {
	if len(in.OpenMelds)+len(in.ClosedKans) > 4 {
		return ErrTooManyCalls
	}

	quads := len(in.ClosedKans)
	for _, m := range in.OpenMelds {
		if m.Type == SetQuad {
			quads++
		}
	}

	// A complete hand holds 3x(4-k) + 4k + 2 tiles where k is the quad
	// count. A 14-tile hand with no quads is also allowed through as a
	// potential irregular shape (seven pairs, thirteen orphans).
	expected := 3*(4-quads) + 4*quads + 2
	if !(len(in.Tiles) == 14 && quads == 0) && len(in.Tiles) != expected {
		return ErrTileCount
	}

	if master[in.WinningTile.Index()] == 0 {
		return ErrWinningTileMissing
	}

	for _, count := range master {
		if count > 4 {
			return ErrTileOverflow
		}
	}

	fives := master[Tile{SuitMan, 5}.Index()] +
		master[Tile{SuitPin, 5}.Index()] +
		master[Tile{SuitSou, 5}.Index()]
	if in.Game.AkaDora > fives {
		return ErrAkaDoraCount
	}
	if in.Game.AkaDora > rules.MaxAkaDora {
		return ErrAkaDoraLimit
	}
	return nil
}

// ValidateInput runs every precondition gate, state conflicts first, then
// composition. Any failure short-circuits the pipeline: no decomposition is
// attempted on a rejected input.
func ValidateInput(in *HandInput, master TileCounts, rules Rules) error {
	if err := validateGameState(in); err != nil {
		return err
	}
	return validateComposition(in, master, rules)
}
