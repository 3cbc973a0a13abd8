package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const Size = 3

// WinCombos - the 8 lines of the grid as (row, column) pairs.
var WinCombos = [8][Size][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Grid - a 3x3 row-major grid of marks.
type Grid [Size][Size]string

// IsWinner - true if any line is entirely mark.
func (that Grid) IsWinner(mark string) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0][0]][combo[0][1]] == mark &&
			that[combo[1][0]][combo[1][1]] == mark &&
			that[combo[2][0]][combo[2][1]] == mark {
			return true
		}
	}

	return false
}

func (that Grid) IsFull() bool {
	return that.EmptyCount() == 0
}

func (that Grid) EmptyCount() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				count++
			}
		}
	}

	return count
}

// DetermineGameResult - returns the winning mark, PlayerTie for a draw or EmptyCell while the game continues.
func (that Grid) DetermineGameResult() string {
	switch {
	case that.IsWinner(PlayerX):
		return PlayerX
	case that.IsWinner(PlayerO):
		return PlayerO
	case that.IsFull():
		return PlayerTie
	default:
		return EmptyCell
	}
}

// Opponent - the mark that moves after mark. Anything that is not O is answered by O.
func Opponent(mark string) string {
	if mark == PlayerO {
		return PlayerX
	}
	return PlayerO
}

// IsKnownMark - reports whether mark is X or O.
func IsKnownMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}
