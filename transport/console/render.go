package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "-----------\n"

// RenderBoard - writes the grid, empty cells show their 1-based number.
func RenderBoard(writer io.Writer, board entity.Board) error {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(" ")
			sb.WriteString(cellLabel(board, row*3+col))
			sb.WriteString(" ")
			if col < 2 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		if row < 2 {
			sb.WriteString(rowSeparator)
		}
	}
	sb.WriteString("\n")

	_, err := io.WriteString(writer, sb.String())

	return err
}

func cellLabel(board entity.Board, index int) string {
	if board[index] == entity.Empty {
		return strconv.Itoa(index + 1)
	}

	return board[index].String()
}
