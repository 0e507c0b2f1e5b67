package riichi

// CalculateAgari runs the full pipeline for a declared winning hand:
// validation, decomposition, pattern recognition and scoring. Any stage
// error aborts the pipeline; a nil error means the result is a legal,
// fully scored win.
func CalculateAgari(in *HandInput, rules Rules) (*ScoreResult, error) {
	master := CountTiles(in.Tiles)
	if err := ValidateInput(in, master, rules); err != nil {
		return nil, err
	}

	dec, err := DecomposeHand(in)
	if err != nil {
		return nil, err
	}

	analysis, err := IdentifyYaku(dec, in.Player, in.Game, in.Method)
	if err != nil {
		return nil, err
	}

	return CalculateScore(analysis, in.Player, in.Game, in.Method, rules), nil
}
