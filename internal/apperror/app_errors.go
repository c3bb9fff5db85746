package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell occupied or invalid")
	ErrBoardTerminal = errors.New("board is terminal, no move to search")
	ErrInvalidInput  = errors.New("invalid input")
	ErrOutOfRange    = errors.New("input out of range")
	ErrInputClosed   = errors.New("input closed")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrUnknownMode   = errors.New("unknown game mode")
)
