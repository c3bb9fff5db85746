package entity

// NoMove is the index returned for terminal positions where no move is made.
const NoMove = -1

// ScoredMove is a cell index tagged with its depth-adjusted minimax score.
type ScoredMove struct {
	Index int `json:"index"`
	Score int `json:"score"`
}

// Outcome is derived from a board, it is never stored.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}
