package riichi

import (
	"errors"
	"testing"
)

func validate(t *testing.T, mutate func(*HandInput)) error {
	t.Helper()
	in := closedHand(t, "234m567m345p678p44s", "8p", WinTsumo)
	mutate(in)
	master := CountTiles(in.Tiles)
	return ValidateInput(in, master, DefaultRules())
}

func TestValidateGameStateConflicts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HandInput)
		want   error
	}{
		{"riichi and double riichi", func(in *HandInput) {
			in.Player.Riichi = true
			in.Player.DoubleRiichi = true
		}, ErrRiichiConflict},
		{"ippatsu without riichi", func(in *HandInput) {
			in.Player.Ippatsu = true
		}, ErrIppatsuNoRiichi},
		{"menzen with open meld", func(in *HandInput) {
			in.OpenMelds = []DeclaredMeld{{Type: SetTriplet, Tile: Tile{SuitSou, 4}}}
		}, ErrMenzenWithMelds},
		{"haitei ron", func(in *HandInput) {
			in.Game.Haitei = true
			in.Method = WinRon
		}, ErrHaiteiRon},
		{"houtei tsumo", func(in *HandInput) {
			in.Game.Houtei = true
		}, ErrHouteiTsumo},
		{"haitei and houtei", func(in *HandInput) {
			in.Game.Haitei = true
			in.Game.Houtei = true
			in.Method = WinRon // keep haitei/houtei the first failing pair
		}, ErrHaiteiRon},
		{"rinshan ron", func(in *HandInput) {
			in.Game.Rinshan = true
			in.Method = WinRon
		}, ErrRinshanRon},
		{"chankan tsumo", func(in *HandInput) {
			in.Game.Chankan = true
		}, ErrChankanTsumo},
		{"tenhou non-dealer", func(in *HandInput) {
			in.Game.Tenhou = true
		}, ErrTenhouNotDealer},
		{"tenhou ron", func(in *HandInput) {
			in.Game.Tenhou = true
			in.Player.IsDealer = true
			in.Method = WinRon
		}, ErrTenhouNotTsumo},
		{"tenhou with kan", func(in *HandInput) {
			in.Game.Tenhou = true
			in.Player.IsDealer = true
			in.ClosedKans = []Tile{{SuitSou, 4}}
		}, ErrTenhouWithCalls},
		{"chiihou as dealer", func(in *HandInput) {
			in.Game.Chiihou = true
			in.Player.IsDealer = true
		}, ErrChiihouDealer},
		{"chiihou ron", func(in *HandInput) {
			in.Game.Chiihou = true
			in.Method = WinRon
		}, ErrChiihouNotTsumo},
		{"renhou tsumo", func(in *HandInput) {
			in.Game.Renhou = true
		}, ErrRenhouNotRon},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(t, tc.mutate)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateComposition(t *testing.T) {
	t.Run("five kans rejected", func(t *testing.T) {
		in := &HandInput{
			Tiles:       mustTiles(t, "1111m2222m3333m4444m5555m66m"),
			WinningTile: mustTile(t, "6m"),
			ClosedKans: []Tile{
				{SuitMan, 1}, {SuitMan, 2}, {SuitMan, 3}, {SuitMan, 4}, {SuitMan, 5},
			},
			Player: PlayerContext{SeatWind: WindEast, Menzen: true},
			Game:   GameContext{PrevalentWind: WindEast},
			Method: WinTsumo,
		}
		err := ValidateInput(in, CountTiles(in.Tiles), DefaultRules())
		if !errors.Is(err, ErrTooManyCalls) {
			t.Errorf("err = %v, want ErrTooManyCalls", err)
		}
	})

	t.Run("wrong tile count", func(t *testing.T) {
		err := validate(t, func(in *HandInput) {
			in.Tiles = in.Tiles[:13]
		})
		if !errors.Is(err, ErrTileCount) {
			t.Errorf("err = %v, want ErrTileCount", err)
		}
	})

	t.Run("kan adjusts expected count", func(t *testing.T) {
		// 15 tiles with one declared kan is legal.
		in := closedHand(t, "234m567m345p44s2222s", "4p", WinTsumo)
		in.ClosedKans = []Tile{{SuitSou, 2}}
		err := ValidateInput(in, CountTiles(in.Tiles), DefaultRules())
		if err != nil {
			t.Errorf("err = %v, want nil", err)
		}
	})

	t.Run("winning tile missing", func(t *testing.T) {
		err := validate(t, func(in *HandInput) {
			in.WinningTile = Tile{SuitDragon, 3}
		})
		if !errors.Is(err, ErrWinningTileMissing) {
			t.Errorf("err = %v, want ErrWinningTileMissing", err)
		}
	})

	t.Run("five copies of a tile", func(t *testing.T) {
		in := closedHand(t, "22222m345p678p789s", "2m", WinTsumo)
		err := ValidateInput(in, CountTiles(in.Tiles), DefaultRules())
		if !errors.Is(err, ErrTileOverflow) {
			t.Errorf("err = %v, want ErrTileOverflow", err)
		}
	})

	t.Run("aka exceeding fives held", func(t *testing.T) {
		err := validate(t, func(in *HandInput) {
			in.Game.AkaDora = 3 // hand holds two fives (5m, 5p)
		})
		if !errors.Is(err, ErrAkaDoraCount) {
			t.Errorf("err = %v, want ErrAkaDoraCount", err)
		}
	})

	t.Run("aka exceeding physical maximum", func(t *testing.T) {
		rules := DefaultRules()
		rules.MaxAkaDora = 1
		in := closedHand(t, "555m567m345p678p44s", "4p", WinTsumo)
		in.Game.AkaDora = 2
		err := ValidateInput(in, CountTiles(in.Tiles), rules)
		if !errors.Is(err, ErrAkaDoraLimit) {
			t.Errorf("err = %v, want ErrAkaDoraLimit", err)
		}
	})

	t.Run("clean hand passes", func(t *testing.T) {
		if err := validate(t, func(*HandInput) {}); err != nil {
			t.Errorf("err = %v, want nil", err)
		}
	})
}
