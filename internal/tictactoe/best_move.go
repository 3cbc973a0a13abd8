package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

// FindBestMove - children of board that keep the minimax value for player.
func FindBestMove(board *Board, player string) []*Board {
	score := Minimax(board, player == entity.PlayerX)

	var moves []*Board
	for _, child := range board.children {
		if childScore, _ := child.Score(); childScore == score {
			moves = append(moves, child)
		}
	}

	return moves
}
