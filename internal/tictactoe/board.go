package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

const noParent = -1

// Board - one game state in a Tree. A Board owns its children; the parent is
// only an index into the tree arena.
type Board struct {
	tree     *Tree
	id       int
	parent   int
	grid     entity.Grid
	children []*Board

	score    int
	hasScore bool
}

func (that *Board) Grid() entity.Grid {
	return that.grid
}

func (that *Board) Children() []*Board {
	return that.children
}

// Parent - resolves the parent handle, nil for the root.
func (that *Board) Parent() *Board {
	if that.parent == noParent {
		return nil
	}
	return that.tree.nodes[that.parent]
}

// Depth - number of plies between the root and this board.
func (that *Board) Depth() int {
	depth := 0
	for node := that.Parent(); node != nil; node = node.Parent() {
		depth++
	}
	return depth
}

// Score - the minimax score, ok is false until the board is evaluated.
func (that *Board) Score() (int, bool) {
	return that.score, that.hasScore
}

func (that *Board) setScore(score int) {
	if that.hasScore {
		return
	}
	that.score = score
	that.hasScore = true
}

// AttemptMove - places mark on an empty cell of a copy of the grid and appends the result as a child.
// An empty mark is not a move.
func (that *Board) AttemptMove(row, column int, mark string) bool {
	if mark == entity.EmptyCell {
		return false
	}

	if row < 0 || row >= entity.Size || column < 0 || column >= entity.Size {
		return false
	}

	if that.grid[row][column] != entity.EmptyCell {
		return false
	}

	grid := that.grid
	grid[row][column] = mark

	that.children = append(that.children, that.tree.add(grid, that.id))

	return true
}

func (that *Board) IsWinner(mark string) bool {
	return that.grid.IsWinner(mark)
}

func (that *Board) IsDraw() bool {
	return that.grid.DetermineGameResult() == entity.PlayerTie
}

func (that *Board) IsTerminal() bool {
	return that.grid.DetermineGameResult() != entity.EmptyCell
}

// String - renders the grid as
//
//	 X | O |
//	---+---+---
//	...
func (that *Board) String() string {
	var sb strings.Builder

	for i, row := range that.grid {
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("|")
			}
			if cell == entity.EmptyCell {
				cell = " "
			}
			sb.WriteString(" " + cell + " ")
		}
		sb.WriteString("\n")

		if i < entity.Size-1 {
			sb.WriteString("---+---+---\n")
		}
	}

	return sb.String()
}
