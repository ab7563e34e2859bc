package game

// Mark is the content of a single board cell.
type Mark int8

const (
	Empty Mark = iota
	X
	O
)

// Other returns the opposing mark. Empty maps to itself.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}
