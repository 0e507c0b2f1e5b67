package main

import (
	"fmt"
	"sort"
	"strings"

	"riichi-calc/riichi"
)

// FormatScoreResult renders a scored hand for terminal output.
func FormatScoreResult(in *riichi.HandInput, r *riichi.ScoreResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hand: %s  (win on %s, %s)\n",
		formatHandSorted(in.Tiles), in.WinningTile, in.Method)

	b.WriteString("Yaku:\n")
	for _, y := range r.Yaku {
		if mult := y.YakumanValue(); mult > 0 {
			label := "Yakuman"
			if mult == 2 {
				label = "Double Yakuman"
			}
			fmt.Fprintf(&b, "  %-28s %s\n", y, label)
			continue
		}
		fmt.Fprintf(&b, "  %-28s %d han\n", y, y.HanValue(in.Player.Menzen))
	}

	if r.YakumanMultiple > 0 {
		fmt.Fprintf(&b, "Score: %s", r.Limit)
		if r.YakumanMultiple > 1 {
			fmt.Fprintf(&b, " x%d", r.YakumanMultiple)
		}
		b.WriteByte('\n')
	} else {
		fmt.Fprintf(&b, "Score: %d han %d fu", r.Han, r.Fu)
		if r.Limit != riichi.LimitNone {
			fmt.Fprintf(&b, " (%s)", r.Limit)
		}
		b.WriteByte('\n')
	}

	b.WriteString(formatPayments(in, r))
	return b.String()
}

func formatPayments(in *riichi.HandInput, r *riichi.ScoreResult) string {
	var b strings.Builder

	switch {
	case in.Method == riichi.WinTsumo && in.Player.IsDealer:
		fmt.Fprintf(&b, "Payment: %d from each player\n", r.NonDealerPayment)
	case in.Method == riichi.WinTsumo:
		fmt.Fprintf(&b, "Payment: %d from the dealer, %d from each non-dealer\n",
			r.DealerPayment, r.NonDealerPayment)
	default:
		fmt.Fprintf(&b, "Payment: %d from the discarder\n", r.BasePayment)
	}

	if in.Game.Honba > 0 {
		fmt.Fprintf(&b, "Total with %d honba: %d\n", in.Game.Honba, r.TotalPayment)
	} else {
		fmt.Fprintf(&b, "Total: %d\n", r.TotalPayment)
	}
	if in.Game.RiichiSticks > 0 {
		fmt.Fprintf(&b, "Riichi sticks collected: %d (+%d points)\n",
			in.Game.RiichiSticks, in.Game.RiichiSticks*1000)
	}
	return b.String()
}

func formatHandSorted(tiles []riichi.Tile) string {
	sorted := make([]riichi.Tile, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Index() < sorted[j].Index()
	})
	return riichi.FormatTiles(sorted)
}
