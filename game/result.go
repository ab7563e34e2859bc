package game

// Status is the lifecycle state of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "in progress"
	}
}

// Result is the terminal status of a board. Winner and Line are set only
// when Status is Won; Line holds the qualifying run, ordered along the
// scan direction, always exactly win-length cells long.
type Result struct {
	Status Status
	Winner Mark
	Line   []Coord
}
