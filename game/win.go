package game

// lineDirections are the four line orientations through a cell, in the
// priority order used when several lines complete on the same move:
// horizontal, vertical, diagonal down-right, diagonal down-left.
var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin reports whether last completed a run of win-length identical
// marks. Only the four lines through last's cell are examined, so a check
// costs O(win-length) instead of a full-board scan; search hits this at
// every node. The returned line is the window of the run that contains
// last's cell, ordered along the scan direction.
func CheckWin(b *Board, last Move) (Result, bool) {
	if !b.InBounds(last.Row, last.Col) || last.Mark == Empty || b.At(last.Row, last.Col) != last.Mark {
		return Result{Status: InProgress}, false
	}
	for _, dir := range lineDirections {
		run := collectRun(b, last, dir[0], dir[1])
		if len(run) >= b.winLength {
			return Result{
				Status: Won,
				Winner: last.Mark,
				Line:   winWindow(run, last.Coord(), b.winLength),
			}, true
		}
	}
	return Result{Status: InProgress}, false
}

// collectRun walks to the lowest end of the run of last.Mark through
// last's cell along (dr, dc), then collects the whole run forward.
func collectRun(b *Board, last Move, dr, dc int) []Coord {
	row, col := last.Row, last.Col
	for b.InBounds(row-dr, col-dc) && b.At(row-dr, col-dc) == last.Mark {
		row -= dr
		col -= dc
	}
	var run []Coord
	for b.InBounds(row, col) && b.At(row, col) == last.Mark {
		run = append(run, Coord{Row: row, Col: col})
		row += dr
		col += dc
	}
	return run
}

// winWindow slices a run longer than winLength down to the winLength
// cells that include the triggering cell.
func winWindow(run []Coord, cell Coord, winLength int) []Coord {
	if len(run) == winLength {
		return run
	}
	at := 0
	for i, c := range run {
		if c == cell {
			at = i
			break
		}
	}
	start := at
	if max := len(run) - winLength; start > max {
		start = max
	}
	return run[start : start+winLength]
}
