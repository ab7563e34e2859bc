package searcher

import "ninarow/game"

// Evaluate scores a non-terminal board from mark's perspective: positive
// favors mark, negative favors the opponent. Used when the search reaches
// its depth limit before a terminal state. Evaluations must be
// deterministic for a given board state.
type Evaluate func(b *game.Board, mark game.Mark) int

var windowDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// WindowCount is the default cutoff heuristic. Every window of win-length
// cells (in any row, column, or diagonal) that holds only one side's marks
// contributes a score growing by a decade per mark; contested windows are
// dead and contribute nothing. Zero-sum: WindowCount(b, m) ==
// -WindowCount(b, m.Other()).
func WindowCount(b *game.Board, mark game.Mark) int {
	size := b.Size()
	winLength := b.WinLength()
	opponent := mark.Other()
	score := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for _, dir := range windowDirections {
				if !b.InBounds(row+(winLength-1)*dir[0], col+(winLength-1)*dir[1]) {
					continue
				}
				mine, theirs := 0, 0
				for i := 0; i < winLength; i++ {
					switch b.At(row+i*dir[0], col+i*dir[1]) {
					case mark:
						mine++
					case opponent:
						theirs++
					}
				}
				switch {
				case mine > 0 && theirs == 0:
					score += windowScore(mine, winLength)
				case theirs > 0 && mine == 0:
					score -= windowScore(theirs, winLength)
				}
			}
		}
	}
	return score
}

func windowScore(count, winLength int) int {
	switch {
	case count >= winLength:
		return 10000
	case count == winLength-1:
		return 1000
	case count == winLength-2:
		return 100
	case count == winLength-3:
		return 10
	default:
		return 1
	}
}
