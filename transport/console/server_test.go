package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var errBotBroken = errors.New("bot broken")

type brokenBot struct{}

func (brokenBot) ChooseMove(context.Context, entity.Board, entity.Mark) (int, error) {
	return entity.NoMove, errBotBroken
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func runGame(t *testing.T, bot botService, input string) string {
	t.Helper()

	var out bytes.Buffer
	server := New(newTestLogger(), bot, strings.NewReader(input), &out)

	require.NoError(t, server.Start(context.Background()))

	return out.String()
}

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

func TestServer_HumanVsHuman(t *testing.T) {
	t.Run("X wins the top row", func(t *testing.T) {
		// Given: mode 1 and X taking 1, 2, 3 while O takes 4, 5
		input := lines("1", "1", "4", "2", "5", "3")

		// When: the game is played
		out := runGame(t, nil, input)

		// Then: X wins and the final board is shown before game over
		assert.True(t, strings.HasPrefix(out, "Tic-Tac-Toe\n"+modeMenu))
		assert.Contains(t, out, "Player X, enter cell (1-9): ")
		assert.Contains(t, out, "Player O, enter cell (1-9): ")
		assert.Contains(t, out, "Player X wins!\n")

		final := "\n X | X | X \n-----------\n O | O | 6 \n-----------\n 7 | 8 | 9 \n\n"
		assert.True(t, strings.HasSuffix(out, "Player X wins!\n"+final+gameOver))
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a sequence that fills the board without a line
		input := lines("1", "1", "2", "3", "5", "4", "7", "8", "9", "6")

		// When: the game is played
		out := runGame(t, nil, input)

		// Then: the draw is announced
		assert.Contains(t, out, "It's a draw.\n")
		assert.NotContains(t, out, "wins!")
		assert.True(t, strings.HasSuffix(out, gameOver))
	})

	t.Run("Occupied cell re-prompts the same player", func(t *testing.T) {
		// Given: O tries X's cell before choosing another
		input := lines("1", "5", "5", "1")

		// When: the game runs out of input
		out := runGame(t, nil, input)

		// Then: O is asked twice and X never gets a second prompt in between
		assert.Contains(t, out, occupied)
		assert.Equal(t, 2, strings.Count(out, "Player O, enter cell (1-9): "))
		assert.Equal(t, 2, strings.Count(out, "Player X, enter cell (1-9): "))
	})
}

func TestServer_InputValidation(t *testing.T) {
	t.Run("Non numeric input discards the rest of the line", func(t *testing.T) {
		// Given: garbage followed by a valid number on the same line
		input := lines("abc 2", "1")

		// When: the menu reads the mode
		out := runGame(t, nil, input)

		// Then: the 2 is dropped and mode 1 is selected
		assert.Contains(t, out, modeMenu+"Invalid input. Try again: ")
		assert.Contains(t, out, "Player X, enter cell (1-9): ")
		assert.NotContains(t, out, firstMenu)
	})

	t.Run("Out of range names the bounds", func(t *testing.T) {
		input := lines("3", "1", "0", "10", "5")

		out := runGame(t, nil, input)

		assert.Contains(t, out, "Please enter a number between 1 and 2: ")
		assert.Equal(t, 2, strings.Count(out, "Please enter a number between 1 and 9: "))
		assert.Contains(t, out, " 1 | 2 | 3 \n-----------\n 4 | X | 6 ")
	})

	t.Run("Several numbers on one line are read in order", func(t *testing.T) {
		input := "1 1 4 2 5 3\n"

		out := runGame(t, nil, input)

		assert.Contains(t, out, "Player X wins!\n")
	})
}

func TestServer_HumanVsComputer(t *testing.T) {
	bot := service.NewBotService(newTestLogger(), nil)

	t.Run("Computer answers the center with a corner", func(t *testing.T) {
		// Given: the human opens as X in the center
		input := lines("2", "1", "5")

		// When: the computer replies and the input runs out
		out := runGame(t, bot, input)

		// Then: the first corner is chosen
		assert.Contains(t, out, firstMenu)
		assert.Contains(t, out, "Your turn (X). Enter cell (1-9): ")
		assert.Contains(t, out, "Computer is thinking...\nComputer plays 1\n")
		assert.True(t, strings.HasSuffix(out, gameOver))
	})

	t.Run("Computer opens as X and wins against weak play", func(t *testing.T) {
		// Given: the computer moves first, the human tries cells in ascending order
		input := lines("2", "2", "2", "3", "4", "5", "6", "7", "8", "9")

		// When: the game is played
		out := runGame(t, bot, input)

		// Then: the computer holds X and wins
		assert.Contains(t, out, "Computer is thinking...\nComputer plays 1\n")
		assert.Contains(t, out, "Your turn (O). Enter cell (1-9): ")
		assert.Contains(t, out, "Player X wins!\n")
		assert.NotContains(t, out, "Player O wins!")
	})

	t.Run("Bot failure is returned", func(t *testing.T) {
		var out bytes.Buffer
		server := New(newTestLogger(), brokenBot{}, strings.NewReader(lines("2", "2")), &out)

		err := server.Start(context.Background())

		require.ErrorIs(t, err, errBotBroken)
	})
}

func TestServer_Interrupted(t *testing.T) {
	t.Run("Closed input ends the game", func(t *testing.T) {
		out := runGame(t, nil, "")

		assert.Equal(t, "Tic-Tac-Toe\n"+modeMenu+"\n"+gameOver, out)
	})

	t.Run("Cancelled context ends the game", func(t *testing.T) {
		// Given: an input that never delivers a line
		reader, writer := io.Pipe()
		defer writer.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		server := New(newTestLogger(), nil, reader, &out)

		// When: the game starts with a cancelled context
		err := server.Start(ctx)

		// Then: it ends cleanly
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), gameOver))
	})
}
