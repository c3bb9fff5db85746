package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	title     = "Tic-Tac-Toe\n"
	modeMenu  = "Choose mode:\n1) Player vs Player\n2) Player vs Computer (AI)\nSelect 1 or 2: "
	firstMenu = "Who goes first?\n1) You (X)\n2) Computer (X)\nSelect 1 or 2: "
	gameOver  = "Game over.\n"
	occupied  = "Cell occupied or invalid. Try again.\n"
)

type botService interface {
	ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark) (int, error)
}

// Server runs one game over a line oriented terminal.
type Server struct {
	logger *slog.Logger
	bot    botService

	reader *tokenReader
	writer io.Writer

	handlers map[bool]func(ctx context.Context, game *tictactoe.GameController) error
}

func New(logger *slog.Logger, bot botService, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		bot:    bot,
		reader: newTokenReader(in),
		writer: out,

		handlers: make(map[bool]func(context.Context, *tictactoe.GameController) error),
	}

	// keyed by whether the computer holds the turn
	server.handlers[false] = server.handleHumanTurn
	server.handlers[true] = server.handleComputerTurn

	return server
}

// Start - plays a single game until it ends, the input closes or ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	defer that.reader.close()

	game, err := that.setupGame(ctx)
	if err != nil {
		return that.finish(nil, err)
	}

	log := that.logger.With("game_id", game.ID)
	log.Info("game started", "mode", game.Mode, "computer", game.ComputerMark.String())

	for {
		board := game.Board()
		that.render(board)

		if winner := board.Winner(); winner != entity.Empty {
			that.print(fmt.Sprintf("Player %s wins!\n", winner))
			break
		}

		if board.IsFull() {
			that.print("It's a draw.\n")
			break
		}

		if err = that.handlers[game.IsComputerTurn()](ctx, game); err != nil {
			return that.finish(game, err)
		}
	}

	log.Info("game finished", "outcome", game.Outcome().String())

	return that.finish(game, nil)
}

func (that *Server) setupGame(ctx context.Context) (*tictactoe.GameController, error) {
	that.print(title)
	that.print(modeMenu)

	mode, err := that.readIntInRange(ctx, 1, 2)
	if err != nil {
		return nil, err
	}

	first := tictactoe.FirstHuman
	if tictactoe.Mode(mode) == tictactoe.ModeHumanVsComputer {
		that.print(firstMenu)

		choice, err := that.readIntInRange(ctx, 1, 2)
		if err != nil {
			return nil, err
		}
		first = tictactoe.First(choice)
	}

	return tictactoe.NewGameController(uuid.NewString(), tictactoe.Mode(mode), first)
}

// handleHumanTurn - prompts the active player, an occupied cell keeps the same player.
func (that *Server) handleHumanTurn(ctx context.Context, game *tictactoe.GameController) error {
	if game.Mode == tictactoe.ModeHumanVsHuman {
		that.print(fmt.Sprintf("Player %s, enter cell (1-9): ", game.Turn))
	} else {
		that.print(fmt.Sprintf("Your turn (%s). Enter cell (1-9): ", game.Turn))
	}

	cell, err := that.readIntInRange(ctx, 1, 9)
	if err != nil {
		return err
	}

	if err = game.MakeTurn(cell - 1); err != nil {
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.print(occupied)
			return nil
		}
		return fmt.Errorf("failed make turn: %w", err)
	}

	return nil
}

func (that *Server) handleComputerTurn(ctx context.Context, game *tictactoe.GameController) error {
	that.print("Computer is thinking...\n")

	cell, err := that.bot.ChooseMove(ctx, game.Board(), game.Turn)
	if err != nil {
		return fmt.Errorf("failed to choose computer move: %w", err)
	}

	if err = game.MakeTurn(cell); err != nil {
		return fmt.Errorf("computer made an illegal move: %w", err)
	}

	that.print(fmt.Sprintf("Computer plays %d\n", cell+1))

	return nil
}

// finish - shows the final board. A closed input or cancelled context is a normal end.
func (that *Server) finish(game *tictactoe.GameController, err error) error {
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		that.logger.Info("game interrupted", "reason", err)
		that.print("\n")
	default:
		return err
	}

	if game != nil {
		that.render(game.Board())
	}
	that.print(gameOver)

	return nil
}

func (that *Server) render(board entity.Board) {
	if err := RenderBoard(that.writer, board); err != nil {
		that.logger.Error("could not render board", "error", err)
	}
}

func (that *Server) print(text string) {
	if _, err := io.WriteString(that.writer, text); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}
