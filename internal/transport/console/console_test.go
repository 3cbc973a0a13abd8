package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/render"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/usecase"
)

type mockAdvisor struct {
	mock.Mock
}

func (that *mockAdvisor) Analyze(grid entity.Grid, next string) *usecase.Analysis {
	args := that.Called(grid, next)
	return args.Get(0).(*usecase.Analysis)
}

func newConsole(input string, opts Options) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), &out, opts), &out
}

func TestConsole_ReadGrid(t *testing.T) {
	t.Run("Reads nine cells in row-major order", func(t *testing.T) {
		// Given: answers for every cell, blanks for empty ones
		c, out := newConsole("x\n\no\n\n\n\n\n\nX\n", Options{})

		// When: reading the grid
		grid, err := c.ReadGrid()

		// Then: marks are upper-cased and placed in order
		require.NoError(t, err)
		assert.Equal(t, entity.Grid{
			{entity.PlayerX, entity.EmptyCell, entity.PlayerO},
			{},
			{entity.EmptyCell, entity.EmptyCell, entity.PlayerX},
		}, grid)

		assert.Equal(t, 9, strings.Count(out.String(), gridPrompt))
		assert.Contains(t, out.String(), "Row 1, Column 1: ")
		assert.Contains(t, out.String(), "Row 3, Column 3: ")
		// the last prompt shows the board filled so far
		assert.Contains(t, out.String(), " X |   | O ")
	})

	t.Run("Unrecognized marks are kept", func(t *testing.T) {
		c, _ := newConsole("z\n\n\n\n\n\n\n\n\n", Options{})

		grid, err := c.ReadGrid()

		require.NoError(t, err)
		assert.Equal(t, "Z", grid[0][0])
	})

	t.Run("Whitespace answers are kept as marks", func(t *testing.T) {
		// Given: a space for the first cell and a padded x for the second
		c, _ := newConsole(" \n x\n\n\n\n\n\n\n\n", Options{})

		// When: reading the grid
		grid, err := c.ReadGrid()

		// Then: only empty lines give empty cells, everything else is kept as typed
		require.NoError(t, err)
		assert.Equal(t, " ", grid[0][0])
		assert.Equal(t, " X", grid[0][1])
		assert.Equal(t, entity.EmptyCell, grid[0][2])
	})

	t.Run("Closed input leaves the remaining cells empty", func(t *testing.T) {
		c, _ := newConsole("x\no", Options{})

		grid, err := c.ReadGrid()

		require.NoError(t, err)
		assert.Equal(t, entity.Grid{{entity.PlayerX, entity.PlayerO}}, grid)
	})

	t.Run("Screen is cleared after every answer", func(t *testing.T) {
		c, out := newConsole("", Options{ClearScreen: true})

		_, err := c.ReadGrid()

		require.NoError(t, err)
		assert.Equal(t, 9, strings.Count(out.String(), "\x1b[2J"))
	})
}

func TestConsole_ReadNextMark(t *testing.T) {
	t.Run("Reads the mark", func(t *testing.T) {
		c, out := newConsole("o\n", Options{})

		mark, err := c.ReadNextMark()

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, mark)
		assert.Equal(t, nextPrompt, out.String())
	})

	t.Run("Blank answer means X", func(t *testing.T) {
		c, _ := newConsole("\n", Options{})

		mark, err := c.ReadNextMark()

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, mark)
	})

	t.Run("Closed input means X", func(t *testing.T) {
		c, _ := newConsole("", Options{})

		mark, err := c.ReadNextMark()

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, mark)
	})
}

func TestConsole_Run(t *testing.T) {
	t.Run("Prints the best moves returned by the advisor", func(t *testing.T) {
		// Given: X in the corner, O to move, and an advisor returning a real analysis
		grid := entity.Grid{{entity.PlayerX}}
		tree := tictactoe.Build(grid, entity.PlayerO)
		analysis := &usecase.Analysis{
			Tree:      tree,
			Next:      entity.PlayerO,
			BestMoves: tictactoe.FindBestMove(tree.Root(), entity.PlayerO),
		}

		advisor := &mockAdvisor{}
		advisor.On("Analyze", grid, entity.PlayerO).Return(analysis).Once()

		c, out := newConsole("x\n\n\n\n\n\n\n\n\no\n", Options{})

		// When: running a session
		err := c.Run(advisor)

		// Then: the advisor is asked once and its moves are printed
		require.NoError(t, err)
		advisor.AssertExpectations(t)

		printed := out.String()
		assert.Contains(t, printed, "For O to win, the next moves of O can be:")
		assert.Contains(t, printed, " X |   |   \n---+---+---\n   | O |   \n")
		assert.NotContains(t, printed, render.TreeHeading)
		assert.NotContains(t, printed, "Level 0")
	})
}

func TestConsole_PrintAnalysis(t *testing.T) {
	t.Run("Tree dumps come before the best moves", func(t *testing.T) {
		tree := tictactoe.Build(entity.Grid{
			{entity.PlayerX, entity.PlayerO, entity.PlayerX},
			{entity.PlayerO, entity.PlayerX, entity.PlayerO},
			{entity.PlayerO, entity.EmptyCell, entity.EmptyCell},
		}, entity.PlayerX)
		analysis := &usecase.Analysis{
			Tree:      tree,
			Next:      entity.PlayerX,
			BestMoves: tictactoe.FindBestMove(tree.Root(), entity.PlayerX),
		}

		c, out := newConsole("", Options{ShowTree: true, ShowLevels: true})

		err := c.PrintAnalysis(analysis)

		require.NoError(t, err)
		printed := out.String()

		heading := strings.Index(printed, render.TreeHeading)
		levels := strings.Index(printed, "Level 0")
		best := strings.Index(printed, "For X to win")
		assert.True(t, heading >= 0 && heading < levels && levels < best)
		assert.Contains(t, printed[best:], " O |   | X ")
	})
}
