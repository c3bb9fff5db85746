package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Mode int

const (
	ModeHumanVsHuman    Mode = 1
	ModeHumanVsComputer Mode = 2
)

// First - who takes the opening mark in human vs computer games.
type First int

const (
	FirstHuman    First = 1
	FirstComputer First = 2
)

// GameController tracks turn order around a single board. X always moves first, so when the
// computer opens it plays X and the human gets O.
type GameController struct {
	ID           string
	Mode         Mode
	Turn         entity.Mark
	ComputerMark entity.Mark

	board entity.Board
}

func NewGameController(id string, mode Mode, first First) (*GameController, error) {
	controller := &GameController{
		ID:           id,
		Mode:         mode,
		Turn:         entity.X,
		ComputerMark: entity.Empty,
	}

	switch mode {
	case ModeHumanVsHuman:
	case ModeHumanVsComputer:
		controller.ComputerMark = entity.O
		if first == FirstComputer {
			controller.ComputerMark = entity.X
		}
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownMode, mode)
	}

	return controller, nil
}

// MakeTurn - applies cell for the player whose turn it is and passes the turn on.
func (that *GameController) MakeTurn(cell int) error {
	if that.board.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !that.board.ApplyMove(cell, that.Turn) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Turn = that.Turn.Opponent()

	return nil
}

func (that *GameController) IsComputerTurn() bool {
	return that.Mode == ModeHumanVsComputer && that.Turn == that.ComputerMark
}

func (that *GameController) IsFinished() bool {
	return that.board.IsTerminal()
}

func (that *GameController) Outcome() entity.Outcome {
	return that.board.Outcome()
}

func (that *GameController) Winner() entity.Mark {
	return that.board.Winner()
}

// Board - returns a copy, callers can not move behind the controller's back.
func (that *GameController) Board() entity.Board {
	return that.board
}
