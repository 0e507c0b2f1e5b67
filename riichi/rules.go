package riichi

// Rules holds the table-policy constants that vary between rulesets. The
// per-yaku han values and the per-set fu table are fixed lookup tables and
// live next to the code that reads them; only the payment-policy knobs are
// configurable.
type Rules struct {
	HonbaTsumoBonus int // added per payer on a tsumo, per counter
	HonbaRonBonus   int // added to the single payment on a ron, per counter

	// Base scoring units for the limit tiers.
	ManganBase    int
	HanemanBase   int
	BaimanBase    int
	SanbaimanBase int
	YakumanBase   int

	// KiriageMangan rounds the 4 han 30 fu and 3 han 60 fu hands (base 1920)
	// up to mangan instead of scoring them arithmetically.
	KiriageMangan bool

	MaxAkaDora int // physical red fives in the set
}

// DefaultRules returns the standard ruleset.
func DefaultRules() Rules {
	return Rules{
		HonbaTsumoBonus: 100,
		HonbaRonBonus:   300,
		ManganBase:      2000,
		HanemanBase:     3000,
		BaimanBase:      4000,
		SanbaimanBase:   6000,
		YakumanBase:     8000,
		KiriageMangan:   false,
		MaxAkaDora:      4,
	}
}
