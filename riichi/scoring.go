package riichi

// LimitTier labels the score bracket a hand lands in.
type LimitTier int

const (
	LimitNone LimitTier = iota
	LimitMangan
	LimitHaneman
	LimitBaiman
	LimitSanbaiman
	LimitKazoeYakuman
	LimitYakuman
)

func (l LimitTier) String() string {
	switch l {
	case LimitNone:
		return ""
	case LimitMangan:
		return "Mangan"
	case LimitHaneman:
		return "Haneman"
	case LimitBaiman:
		return "Baiman"
	case LimitSanbaiman:
		return "Sanbaiman"
	case LimitKazoeYakuman:
		return "Kazoe Yakuman"
	case LimitYakuman:
		return "Yakuman"
	}
	return "?"
}

// ScoreResult is the final verdict for a winning hand.
//
// The payment fields exclude the honba bonus, which only enters
// TotalPayment. On a ron, BasePayment is the single payment the discarder
// owes before honba counters; add the honba bonus once (or read
// TotalPayment) rather than summing BasePayment with a separately computed
// bonus. On a tsumo, every opponent pays: DealerPayment and NonDealerPayment
// are the per-seat amounts (a dealer winner collects NonDealerPayment from
// all three seats and DealerPayment stays 0), and BasePayment repeats the
// non-dealer amount for display.
type ScoreResult struct {
	Han  int
	Fu   int
	Yaku []Yaku

	// YakumanMultiple is 0 for ordinary hands, otherwise the stacked yakuman
	// count (2 for a single double yakuman, and so on).
	YakumanMultiple int

	Limit LimitTier

	BasePayment      int
	DealerPayment    int
	NonDealerPayment int
	TotalPayment     int
}

func roundUpTo100(points int) int {
	return (points + 99) / 100 * 100
}

// CalculateScore turns a recognized hand into han, fu and payments.
//
// Yakuman hands bypass fu arithmetic entirely: the basic points are the
// yakuman base times the stacked multiple, and han reports 13 per multiple.
// Ordinary hands score fu x 2^(han+2) capped at mangan, with the fixed limit
// tiers above 5 han and counted yakuman at 13.
func CalculateScore(analysis *YakuAnalysis, player PlayerContext, game GameContext, method WinMethod, rules Rules) *ScoreResult {
	result := &ScoreResult{Yaku: analysis.Yaku}

	var base int
	if mult := yakumanMultiple(analysis.Yaku); mult > 0 {
		result.Han = 13 * mult
		result.YakumanMultiple = mult
		result.Limit = LimitYakuman
		base = rules.YakumanBase * mult
	} else {
		for _, y := range analysis.Yaku {
			result.Han += y.HanValue(player.Menzen)
		}
		result.Fu = CalculateFu(analysis, player, game, method)
		base, result.Limit = basicPoints(result.Han, result.Fu, rules)
	}

	fillPayments(result, base, player, game, method, rules)
	return result
}

func yakumanMultiple(yaku []Yaku) int {
	mult := 0
	for _, y := range yaku {
		mult += y.YakumanValue()
	}
	return mult
}

// basicPoints maps han and fu to the per-unit base score and limit tier.
func basicPoints(han, fu int, rules Rules) (int, LimitTier) {
	switch {
	case han >= 13:
		return rules.YakumanBase, LimitKazoeYakuman
	case han >= 11:
		return rules.SanbaimanBase, LimitSanbaiman
	case han >= 8:
		return rules.BaimanBase, LimitBaiman
	case han >= 6:
		return rules.HanemanBase, LimitHaneman
	case han >= 5:
		return rules.ManganBase, LimitMangan
	}

	if rules.KiriageMangan && (han == 4 && fu == 30 || han == 3 && fu == 60) {
		return rules.ManganBase, LimitMangan
	}

	base := fu << (han + 2)
	if base >= rules.ManganBase {
		return rules.ManganBase, LimitMangan
	}
	return base, LimitNone
}

// fillPayments splits the base score across the table. Every individual
// payment rounds up to the next 100 before honba counters are added to the
// total.
func fillPayments(r *ScoreResult, base int, player PlayerContext, game GameContext, method WinMethod, rules Rules) {
	honba := game.Honba

	switch {
	case method == WinTsumo && player.IsDealer:
		each := roundUpTo100(2 * base)
		r.BasePayment = each
		r.NonDealerPayment = each
		r.TotalPayment = (each + honba*rules.HonbaTsumoBonus) * 3

	case method == WinTsumo:
		fromDealer := roundUpTo100(2 * base)
		fromOthers := roundUpTo100(base)
		r.BasePayment = fromOthers
		r.DealerPayment = fromDealer
		r.NonDealerPayment = fromOthers
		r.TotalPayment = (fromDealer + honba*rules.HonbaTsumoBonus) +
			2*(fromOthers+honba*rules.HonbaTsumoBonus)

	case player.IsDealer:
		payment := roundUpTo100(6 * base)
		r.BasePayment = payment
		r.TotalPayment = payment + honba*rules.HonbaRonBonus

	default:
		payment := roundUpTo100(4 * base)
		r.BasePayment = payment
		r.TotalPayment = payment + honba*rules.HonbaRonBonus
	}
}
