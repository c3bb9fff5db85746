package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// tokenReader splits input lines into whitespace separated tokens. Lines are read on a
// separate goroutine so a cancelled context is noticed while waiting for the user.
type tokenReader struct {
	lines   chan string
	done    chan struct{}
	pending []string
}

func newTokenReader(in io.Reader) *tokenReader {
	reader := &tokenReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(reader.lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case reader.lines <- scanner.Text():
			case <-reader.done:
				return
			}
		}
	}()

	return reader
}

func (that *tokenReader) token(ctx context.Context) (string, error) {
	for len(that.pending) == 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-that.lines:
			if !ok {
				return "", apperror.ErrInputClosed
			}
			that.pending = strings.Fields(line)
		}
	}

	token := that.pending[0]
	that.pending = that.pending[1:]

	return token, nil
}

// discardLine - drops whatever is left of the current line.
func (that *tokenReader) discardLine() {
	that.pending = nil
}

func (that *tokenReader) close() {
	close(that.done)
}

// readIntInRange - re-prompts until a number in [lower, upper] is entered.
func (that *Server) readIntInRange(ctx context.Context, lower, upper int) (int, error) {
	for {
		token, err := that.reader.token(ctx)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			that.reader.discardLine()
			that.logger.Debug("rejected input", "input", token, "error", apperror.ErrInvalidInput)
			that.print("Invalid input. Try again: ")
			continue
		}

		if value < lower || value > upper {
			that.logger.Debug("rejected input", "input", value, "error", apperror.ErrOutOfRange)
			that.print(fmt.Sprintf("Please enter a number between %d and %d: ", lower, upper))
			continue
		}

		return value, nil
	}
}
