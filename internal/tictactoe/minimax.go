package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

const (
	ScoreWinX = 1
	ScoreDraw = 0
	ScoreWinO = -1
)

// Evaluate - static score of a board: X is the maximizer, O the minimizer.
func Evaluate(board *Board) int {
	switch board.grid.DetermineGameResult() {
	case entity.PlayerX:
		return ScoreWinX
	case entity.PlayerO:
		return ScoreWinO
	default:
		return ScoreDraw
	}
}

// Minimax - scores every board below board and returns the score of board.
// Scores are written once; an already scored board returns its stored score.
func Minimax(board *Board, maximizing bool) int {
	if score, ok := board.Score(); ok {
		return score
	}

	if len(board.children) == 0 {
		board.setScore(Evaluate(board))
		return board.score
	}

	best := Minimax(board.children[0], !maximizing)
	for _, child := range board.children[1:] {
		score := Minimax(child, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	board.setScore(best)

	return best
}
