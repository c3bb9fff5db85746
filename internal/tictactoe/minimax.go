package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// winScore is the raw value of a win before the depth adjustment.
const winScore = 10

// Stats - counters collected during one search.
type Stats struct {
	Nodes int
}

// Search - explores the complete game tree below board and returns the optimal move for
// toMove, scored from the point of view of engine. Wins score 10-depth, losses depth-10 and
// draws 0. Ties are broken by the lowest cell index.
//
// board is mutated while searching and restored before Search returns. When board is already
// terminal the index is entity.NoMove.
func Search(board *entity.Board, toMove, engine entity.Mark, depth int) entity.ScoredMove {
	move, _ := SearchWithStats(board, toMove, engine, depth)
	return move
}

func SearchWithStats(board *entity.Board, toMove, engine entity.Mark, depth int) (entity.ScoredMove, Stats) {
	s := &searcher{engine: engine}
	move := s.search(board, toMove, depth)

	return move, Stats{Nodes: s.nodes}
}

// BestMove - searches a copy of board for engine, which must be the player to act.
func BestMove(board *entity.Board, engine entity.Mark) (entity.ScoredMove, Stats, error) {
	if !engine.IsPlayer() {
		return entity.ScoredMove{Index: entity.NoMove}, Stats{}, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, engine)
	}

	if board.IsTerminal() {
		return entity.ScoredMove{Index: entity.NoMove}, Stats{}, apperror.ErrBoardTerminal
	}

	work := *board
	move, stats := SearchWithStats(&work, engine, engine, 0)

	return move, stats, nil
}

type searcher struct {
	engine entity.Mark
	nodes  int
}

func (that *searcher) search(board *entity.Board, toMove entity.Mark, depth int) entity.ScoredMove {
	that.nodes++

	switch winner := board.Winner(); {
	case winner == that.engine:
		return entity.ScoredMove{Index: entity.NoMove, Score: winScore - depth}
	case winner != entity.Empty:
		return entity.ScoredMove{Index: entity.NoMove, Score: depth - winScore}
	case board.IsFull():
		return entity.ScoredMove{Index: entity.NoMove, Score: 0}
	}

	moves := board.LegalMoves()
	scored := make([]entity.ScoredMove, 0, len(moves))

	for _, index := range moves {
		scored = append(scored, that.explore(board, index, toMove, depth))
	}

	return pick(scored, toMove == that.engine)
}

// explore - plays index for toMove, scores the reply subtree and takes the move back.
func (that *searcher) explore(board *entity.Board, index int, toMove entity.Mark, depth int) entity.ScoredMove {
	board.ApplyMove(index, toMove)
	defer board.UndoMove(index)

	reply := that.search(board, toMove.Opponent(), depth+1)

	return entity.ScoredMove{Index: index, Score: reply.Score}
}

// pick - first maximum for the engine, first minimum for the opponent.
func pick(scored []entity.ScoredMove, maximize bool) entity.ScoredMove {
	best := scored[0]

	for _, candidate := range scored[1:] {
		if maximize && candidate.Score > best.Score {
			best = candidate
		}

		if !maximize && candidate.Score < best.Score {
			best = candidate
		}
	}

	return best
}
