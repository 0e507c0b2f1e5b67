package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riichi-calc/common/config"
	"riichi-calc/common/log"
	"riichi-calc/riichi"
)

var (
	configFile string
	logLevel   string

	handStr  string
	winStr   string
	tsumo    bool
	seatStr  string
	roundStr string
	dealer   bool

	declaredRiichi bool
	doubleRiichi   bool
	ippatsu        bool

	honba  int
	sticks int

	doraStrs []string
	uraStrs  []string
	aka      int

	chiStrs   []string
	ponStrs   []string
	kanStrs   []string
	ankanStrs []string

	tenhou  bool
	chiihou bool
	renhou  bool
	haitei  bool
	houtei  bool
	rinshan bool
	chankan bool
)

var rootCmd = &cobra.Command{
	Use:   "riichi-calc",
	Short: "score a winning riichi mahjong hand",
	Long: `riichi-calc validates, decomposes and scores a declared winning hand.

Tiles use digit runs plus a suit letter for the numbered suits, uppercase
E S W N for the winds and lowercase w g r for the dragons:

  riichi-calc --hand "234m567m345p678p44s" --win 8p --tsumo --riichi \
      --seat S --round E --dora 2m --ura 4p --aka 1`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if logLevel == "" {
			logLevel = config.Conf.Log.Level
		}
		log.InitLog("riichi-calc", logLevel)

		in, err := buildInput()
		if err != nil {
			return err
		}

		log.Debug("scoring %s winning on %s (%s)", handStr, winStr, in.Method)
		result, err := riichi.CalculateAgari(in, config.Conf.Rules())
		if err != nil {
			return fmt.Errorf("hand rejected: %w", err)
		}

		fmt.Print(FormatScoreResult(in, result))
		return nil
	},
}

// buildInput translates the flag values into the engine's input type.
func buildInput() (*riichi.HandInput, error) {
	tiles, err := riichi.ParseTiles(handStr)
	if err != nil {
		return nil, fmt.Errorf("parsing --hand: %w", err)
	}
	winning, err := riichi.ParseTile(winStr)
	if err != nil {
		return nil, fmt.Errorf("parsing --win: %w", err)
	}
	seat, err := riichi.ParseWind(seatStr)
	if err != nil {
		return nil, fmt.Errorf("parsing --seat: %w", err)
	}
	round, err := riichi.ParseWind(roundStr)
	if err != nil {
		return nil, fmt.Errorf("parsing --round: %w", err)
	}

	var melds []riichi.DeclaredMeld
	for _, s := range chiStrs {
		t, err := riichi.ParseTile(s)
		if err != nil {
			return nil, fmt.Errorf("parsing --chi: %w", err)
		}
		melds = append(melds, riichi.DeclaredMeld{Type: riichi.SetSequence, Tile: t})
	}
	for _, s := range ponStrs {
		t, err := riichi.ParseTile(s)
		if err != nil {
			return nil, fmt.Errorf("parsing --pon: %w", err)
		}
		melds = append(melds, riichi.DeclaredMeld{Type: riichi.SetTriplet, Tile: t})
	}
	for _, s := range kanStrs {
		t, err := riichi.ParseTile(s)
		if err != nil {
			return nil, fmt.Errorf("parsing --kan: %w", err)
		}
		melds = append(melds, riichi.DeclaredMeld{Type: riichi.SetQuad, Tile: t})
	}

	var closedKans []riichi.Tile
	for _, s := range ankanStrs {
		t, err := riichi.ParseTile(s)
		if err != nil {
			return nil, fmt.Errorf("parsing --ankan: %w", err)
		}
		closedKans = append(closedKans, t)
	}

	dora, err := parseTileList(doraStrs, "--dora")
	if err != nil {
		return nil, err
	}
	ura, err := parseTileList(uraStrs, "--ura")
	if err != nil {
		return nil, err
	}

	method := riichi.WinRon
	if tsumo {
		method = riichi.WinTsumo
	}

	return &riichi.HandInput{
		Tiles:       tiles,
		WinningTile: winning,
		OpenMelds:   melds,
		ClosedKans:  closedKans,
		Player: riichi.PlayerContext{
			SeatWind:     seat,
			IsDealer:     dealer || seat == riichi.WindEast,
			Riichi:       declaredRiichi,
			DoubleRiichi: doubleRiichi,
			Ippatsu:      ippatsu,
			Menzen:       len(melds) == 0,
		},
		Game: riichi.GameContext{
			PrevalentWind:     round,
			Honba:             honba,
			RiichiSticks:      sticks,
			DoraIndicators:    dora,
			UraDoraIndicators: ura,
			AkaDora:           aka,
			Tenhou:            tenhou,
			Chiihou:           chiihou,
			Renhou:            renhou,
			Haitei:            haitei,
			Houtei:            houtei,
			Rinshan:           rinshan,
			Chankan:           chankan,
		},
		Method: method,
	}, nil
}

func parseTileList(strs []string, flag string) ([]riichi.Tile, error) {
	var tiles []riichi.Tile
	for _, s := range strs {
		parsed, err := riichi.ParseTiles(s)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", flag, err)
		}
		tiles = append(tiles, parsed...)
	}
	return tiles, nil
}

func init() {
	f := rootCmd.Flags()

	f.StringVar(&configFile, "config", "", "ruleset config file (optional)")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	f.StringVar(&handStr, "hand", "", "all tiles held, including calls and the winning tile")
	f.StringVar(&winStr, "win", "", "the winning tile")
	f.BoolVar(&tsumo, "tsumo", false, "won by self-draw (default is ron)")
	f.StringVar(&seatStr, "seat", "E", "seat wind")
	f.StringVar(&roundStr, "round", "E", "prevalent wind")
	f.BoolVar(&dealer, "dealer", false, "winner is the dealer (implied by an East seat)")

	f.BoolVar(&declaredRiichi, "riichi", false, "riichi was declared")
	f.BoolVar(&doubleRiichi, "double-riichi", false, "riichi on the very first discard")
	f.BoolVar(&ippatsu, "ippatsu", false, "won within one go-around of riichi")

	f.IntVar(&honba, "honba", 0, "repeat-round counters on the table")
	f.IntVar(&sticks, "sticks", 0, "riichi sticks on the table")

	f.StringSliceVar(&doraStrs, "dora", nil, "dora indicator tiles")
	f.StringSliceVar(&uraStrs, "ura", nil, "ura dora indicator tiles")
	f.IntVar(&aka, "aka", 0, "red fives held")

	f.StringSliceVar(&chiStrs, "chi", nil, "open sequence, by its lowest tile")
	f.StringSliceVar(&ponStrs, "pon", nil, "open triplet tile")
	f.StringSliceVar(&kanStrs, "kan", nil, "open quad tile")
	f.StringSliceVar(&ankanStrs, "ankan", nil, "closed quad tile")

	f.BoolVar(&tenhou, "tenhou", false, "dealer win on the initial deal")
	f.BoolVar(&chiihou, "chiihou", false, "non-dealer win on the first draw")
	f.BoolVar(&renhou, "renhou", false, "non-dealer ron before the first draw")
	f.BoolVar(&haitei, "haitei", false, "self-draw of the last wall tile")
	f.BoolVar(&houtei, "houtei", false, "win on the last discard")
	f.BoolVar(&rinshan, "rinshan", false, "win on the dead-wall draw after a kan")
	f.BoolVar(&chankan, "chankan", false, "win by robbing an added kan")

	rootCmd.MarkFlagRequired("hand")
	rootCmd.MarkFlagRequired("win")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
