package entity

import "strings"

const BoardSize = 9

// WinCombos - rows top to bottom, columns left to right, then main and anti diagonal.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major: row = index/3, col = index%3.
type Board [BoardSize]Mark

// NewBoard - returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset - sets every cell to Empty.
func (that *Board) Reset() {
	for i := range that {
		that[i] = Empty
	}
}

// ApplyMove - places mark at index. It reports false and leaves the board untouched
// when the index is out of range, the cell is taken or mark is not a player mark.
func (that *Board) ApplyMove(index int, mark Mark) bool {
	if index < 0 || index >= BoardSize {
		return false
	}

	if that[index] != Empty || !mark.IsPlayer() {
		return false
	}

	that[index] = mark

	return true
}

// UndoMove - clears the cell at index, out of range indexes are ignored.
func (that *Board) UndoMove(index int) {
	if index < 0 || index >= BoardSize {
		return
	}

	that[index] = Empty
}

// LegalMoves - returns empty cells in ascending order.
func (that *Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Winner - returns the mark of the first complete line, or Empty.
func (that *Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func (that *Board) IsTerminal() bool {
	return that.Winner() != Empty || that.IsFull()
}

func (that *Board) Outcome() Outcome {
	switch that.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}

	if that.IsFull() {
		return Draw
	}

	return InProgress
}

// Key - encodes the board as nine characters, '-' for empty cells.
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == Empty {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}
