// Package render turns game trees into lines of text. Every sequence walks the
// tree again when ranged over, and stops walking when the caller stops.
package render

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/tictactoe"
)

const (
	TreeHeading = "Game tree of possible moves:"

	branch = "     └─────"
)

var indentUnit = strings.Repeat(" ", utf8.RuneCountInString(branch))

// Board - the text lines of a single board.
func Board(board *tictactoe.Board) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range boardLines(board) {
			if !yield(line) {
				return
			}
		}
	}
}

// Indented - depth-first dump of the tree below root, each level shifted right.
func Indented(root *tictactoe.Board) iter.Seq[string] {
	return func(yield func(string) bool) {
		if root == nil {
			return
		}

		if !yield(TreeHeading) {
			return
		}

		indented(root, 0, yield)
	}
}

func indented(board *tictactoe.Board, level int, yield func(string) bool) bool {
	for i, line := range boardLines(board) {
		switch {
		case level == 0:
		case i == 0:
			line = strings.Repeat(indentUnit, level-1) + branch + line
		default:
			line = strings.Repeat(indentUnit, level) + line
		}

		if !yield(line) {
			return false
		}
	}

	for _, child := range board.Children() {
		if !indented(child, level+1, yield) {
			return false
		}
	}

	return true
}

type queued struct {
	board *tictactoe.Board
	level int
}

// ByLevel - breadth-first dump of the tree below root grouped under "Level N" headings.
func ByLevel(root *tictactoe.Board) iter.Seq[string] {
	return func(yield func(string) bool) {
		if root == nil {
			return
		}

		queue := []queued{{board: root}}
		current := -1

		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]

			if item.level != current {
				if !yield(fmt.Sprintf("Level %d", item.level)) {
					return
				}
				current = item.level
			}

			for _, line := range boardLines(item.board) {
				if !yield(line) {
					return
				}
			}

			if !yield("") {
				return
			}

			for _, child := range item.board.Children() {
				queue = append(queue, queued{board: child, level: item.level + 1})
			}
		}
	}
}

func boardLines(board *tictactoe.Board) []string {
	return strings.Split(strings.TrimSuffix(board.String(), "\n"), "\n")
}
