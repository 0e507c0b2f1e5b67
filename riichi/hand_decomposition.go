package riichi

// DecomposeHand converts the declared hand into either a RegularHand (4 sets
// + pair + wait) or an IrregularHand marker. Declared calls are carved out of
// the count vector first; the concealed remainder is searched by hypothesizing
// each possible pair in ascending tile-index order and backtracking over the
// rest. The first pair hypothesis whose remainder search succeeds is accepted;
// the engine never looks for alternative decompositions.
//
// Failure to find a standard partition is not an error: the full original
// counts are returned as an IrregularHand for the yaku recognizer to test
// against seven pairs and thirteen orphans. Only structurally impossible call
// declarations are errors here.
func DecomposeHand(in *HandInput) (Decomposition, error) {
	master := CountTiles(in.Tiles)
	concealed := master
	declared := make([]Set, 0, 4)

	// Closed kans first. Ankan stays concealed.
	for _, t := range in.ClosedKans {
		i := t.Index()
		if concealed[i] < 4 {
			return nil, ErrKanTilesMissing
		}
		concealed[i] -= 4
		declared = append(declared, quadSet(t, false))
	}

	for _, m := range in.OpenMelds {
		i := m.Tile.Index()
		switch m.Type {
		case SetTriplet:
			if concealed[i] < 3 {
				return nil, ErrPonTilesMissing
			}
			concealed[i] -= 3
			declared = append(declared, tripletSet(m.Tile, true))
		case SetQuad:
			if concealed[i] < 4 {
				return nil, ErrKanTilesMissing
			}
			concealed[i] -= 4
			declared = append(declared, quadSet(m.Tile, true))
		case SetSequence:
			if i >= 27 || i%9 >= 7 {
				return nil, ErrChiOutOfRange
			}
			if concealed[i] < 1 || concealed[i+1] < 1 || concealed[i+2] < 1 {
				return nil, ErrChiTilesMissing
			}
			concealed[i]--
			concealed[i+1]--
			concealed[i+2]--
			declared = append(declared, sequenceSet(m.Tile, true))
		}
	}

	needed := 4 - len(declared)

	// Naked wait: all four sets are declared, so the two concealed tiles
	// must be the pair and the wait is necessarily tanki.
	if needed == 0 {
		for i := 0; i < NumTileKinds; i++ {
			if concealed[i] == 2 {
				var sets [4]Set
				copy(sets[:], declared)
				return &RegularHand{
					Sets:        sets,
					Pair:        TileFromIndex(i),
					WinningTile: in.WinningTile,
					Wait:        WaitTanki,
				}, nil
			}
		}
		if len(in.Tiles) != 14 {
			return nil, ErrNoPair
		}
		// 14 tiles, no pair left: fall through to the irregular outcome.
	} else {
		for i := 0; i < NumTileKinds; i++ {
			if concealed[i] < 2 {
				continue
			}
			// Each pair hypothesis starts from a fresh copy of the
			// post-pair-removal counts; the search mutates it in place.
			remainder := concealed
			remainder[i] -= 2
			found := make([]Set, 0, needed)
			if findSets(&remainder, &found) && len(found) == needed {
				var sets [4]Set
				copy(sets[:], append(append(make([]Set, 0, 4), declared...), found...))
				pair := TileFromIndex(i)
				return &RegularHand{
					Sets:        sets,
					Pair:        pair,
					WinningTile: in.WinningTile,
					Wait:        classifyWait(sets, pair, in.WinningTile),
				}, nil
			}
		}
	}

	return &IrregularHand{Counts: master, WinningTile: in.WinningTile}, nil
}

// findSets exhausts the count vector into concealed sets by backtracking.
// It scans to the lowest-index nonzero kind, tries a triplet there, then a
// sequence starting there; every tentative subtraction is restored on the
// failure path. Scanning from the lowest index keeps set discovery
// deterministic and never revisits exhausted kinds.
func findSets(counts *TileCounts, sets *[]Set) bool {
	i := 0
	for i < NumTileKinds && counts[i] == 0 {
		i++
	}
	if i == NumTileKinds {
		return true // remainder fully consumed
	}

	if counts[i] >= 3 {
		counts[i] -= 3
		*sets = append(*sets, tripletSet(TileFromIndex(i), false))
		if findSets(counts, sets) {
			return true
		}
		*sets = (*sets)[:len(*sets)-1]
		counts[i] += 3
	}

	// A sequence can only start on a numbered tile of rank 1-7.
	if i < 27 && i%9 < 7 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		*sets = append(*sets, sequenceSet(TileFromIndex(i), false))
		if findSets(counts, sets) {
			return true
		}
		*sets = (*sets)[:len(*sets)-1]
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}

	return false
}
