package riichi

// Fu values for a set by kind. Open triplets of simples are the 2 fu
// baseline; terminals and honors double it, concealment doubles it again,
// and quads are worth four times the matching triplet.
func setFu(s Set, method WinMethod, wait WaitType, winning Tile) int {
	if s.Type == SetSequence {
		return 0
	}

	fu := 2
	if s.Tiles[0].IsTerminalOrHonor() {
		fu *= 2
	}

	// A triplet completed by ron on a shanpon wait scores as open.
	concealed := !s.Open
	if s.Type == SetTriplet && concealed && method == WinRon && wait == WaitShanpon && s.Contains(winning) {
		concealed = false
	}
	if concealed {
		fu *= 2
	}
	if s.Type == SetQuad {
		fu *= 4
	}
	return fu
}

// pairFu scores the pair: 2 for a dragon, 2 for the seat wind and 2 for the
// prevalent wind. A wind serving both roles scores both, 4 total.
func pairFu(pair Tile, player PlayerContext, game GameContext) int {
	if pair.Suit == SuitDragon {
		return 2
	}
	fu := 0
	if pair == player.SeatWind.Tile() {
		fu += 2
	}
	if pair == game.PrevalentWind.Tile() {
		fu += 2
	}
	return fu
}

func waitFu(wait WaitType) int {
	switch wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		return 2
	}
	return 0
}

func roundUpTo10(fu int) int {
	return (fu + 9) / 10 * 10
}

// CalculateFu computes the fu of a decomposed hand. Chiitoitsu is fixed at
// 25 and never rounded; pinfu is fixed at 20 on tsumo and 30 on ron; kokushi
// hands have no meaningful fu and report 0. Everything else starts from the
// base 20, adds the win-method and concealment bonuses, the per-set values,
// the pair and the wait, then rounds up to the next 10.
func CalculateFu(analysis *YakuAnalysis, player PlayerContext, game GameContext, method WinMethod) int {
	if analysis.HasYaku(YakuChiitoitsu) {
		return 25
	}

	h, ok := analysis.Hand.(*RegularHand)
	if !ok {
		return 0 // kokushi: scored as yakuman, fu is irrelevant
	}

	if analysis.HasYaku(YakuPinfu) {
		if method == WinTsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if method == WinTsumo {
		fu += 2
	} else if player.Menzen {
		fu += 10
	}
	for _, s := range h.Sets {
		fu += setFu(s, method, h.Wait, h.WinningTile)
	}
	fu += pairFu(h.Pair, player, game)
	fu += waitFu(h.Wait)

	return roundUpTo10(fu)
}
