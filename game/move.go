package game

import "fmt"

// Coord addresses a board cell. Row and Col are zero-based.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move places a mark on a cell. It is valid only while the target cell
// is empty at the time of application.
type Move struct {
	Row  int
	Col  int
	Mark Mark
}

func NewMove(row, col int, mark Mark) Move {
	return Move{Row: row, Col: col, Mark: mark}
}

func (m Move) Coord() Coord {
	return Coord{Row: m.Row, Col: m.Col}
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col && m.Mark == other.Mark
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%d,%d)", m.Mark, m.Row, m.Col)
}
