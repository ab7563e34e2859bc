package searcher

import (
	"sort"

	"ninarow/game"
)

// Generator enumerates the legal moves of a board in a deterministic
// order. Alpha-beta pruning correctness does not depend on the order, but
// both pruning efficiency and the first-best tie-break do, so a Generator
// must return the same order for the same board state every time.
type Generator interface {
	Generate(b *game.Board) []game.Coord
}

type rowMajor struct{}

// RowMajor generates moves in the board's native row-major order.
func RowMajor() Generator {
	return rowMajor{}
}

func (rowMajor) Generate(b *game.Board) []game.Coord {
	return b.LegalMoves()
}

type centerFirst struct{}

// CenterFirst generates moves sorted by Manhattan distance from the board
// center, nearest first. Central cells touch more potential lines, so
// searching them first tightens the alpha-beta window early. The sort is
// stable: cells at equal distance keep their row-major order.
func CenterFirst() Generator {
	return centerFirst{}
}

func (centerFirst) Generate(b *game.Board) []game.Coord {
	moves := b.LegalMoves()
	center := b.Size() / 2
	sort.SliceStable(moves, func(i, j int) bool {
		return centerDistance(moves[i], center) < centerDistance(moves[j], center)
	})
	return moves
}

func centerDistance(c game.Coord, center int) int {
	return abs(c.Row-center) + abs(c.Col-center)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
