package riichi

import "fmt"

// classifyWait determines which structural element the winning tile completed
// and the shape of that completion. The pair is checked first: a winning tile
// that also appears inside a set must still classify as tanki when it is the
// pair tile. After that, exactly one set must contain the winning tile; a
// hand where none does passed through a broken decomposition, which is a
// defect, not bad input.
func classifyWait(sets [4]Set, pair Tile, winning Tile) WaitType {
	if winning == pair {
		return WaitTanki
	}

	var winningSet *Set
	for k := range sets {
		if sets[k].Contains(winning) {
			winningSet = &sets[k]
			break
		}
	}
	if winningSet == nil {
		panic(fmt.Sprintf("riichi: winning tile %s absent from every set and the pair", winning))
	}

	if winningSet.Type == SetTriplet || winningSet.Type == SetQuad {
		return WaitShanpon
	}

	t1, t2, t3 := winningSet.Tiles[0], winningSet.Tiles[1], winningSet.Tiles[2]
	switch winning {
	case t2:
		return WaitKanchan
	case t1:
		// 8-9 waiting on 7 is an edge wait; anything lower is two-sided.
		if t3.Value == 9 {
			return WaitPenchan
		}
		return WaitRyanmen
	case t3:
		// 1-2 waiting on 3 is an edge wait.
		if t1.Value == 1 {
			return WaitPenchan
		}
		return WaitRyanmen
	}
	panic(fmt.Sprintf("riichi: winning tile %s in sequence %v but matches no position", winning, winningSet.Tiles))
}
