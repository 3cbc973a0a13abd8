package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
)

// Tree - arena holding every Board of a game tree in creation order.
type Tree struct {
	nodes []*Board
}

func NewTree(grid entity.Grid) *Tree {
	tree := &Tree{}
	tree.add(grid, noParent)

	return tree
}

// Build - creates a tree for grid and expands it with firstMark to move.
func Build(grid entity.Grid, firstMark string) *Tree {
	tree := NewTree(grid)
	Generate(tree.Root(), firstMark)

	return tree
}

func (that *Tree) Root() *Board {
	return that.nodes[0]
}

// Len - number of boards in the tree, root included.
func (that *Tree) Len() int {
	return len(that.nodes)
}

// Depth - length in plies of the longest line from the root.
func (that *Tree) Depth() int {
	depth := 0
	for _, node := range that.nodes {
		if len(node.children) == 0 {
			if d := node.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth
}

func (that *Tree) add(grid entity.Grid, parent int) *Board {
	board := &Board{
		tree:   that,
		id:     len(that.nodes),
		parent: parent,
		grid:   grid,
	}
	that.nodes = append(that.nodes, board)

	return board
}

// Generate - expands board into every legal continuation, actingMark moving first.
// Terminal boards stay leaves and boards that already have children are left as they are.
func Generate(board *Board, actingMark string) {
	if board.IsTerminal() || len(board.children) > 0 {
		return
	}

	for row := range entity.Size {
		for column := range entity.Size {
			if board.AttemptMove(row, column, actingMark) {
				Generate(board.children[len(board.children)-1], entity.Opponent(actingMark))
			}
		}
	}
}
