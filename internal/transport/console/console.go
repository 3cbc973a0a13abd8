package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/render"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/usecase"
)

const (
	gridPrompt = "Enter the moves of a starting board:"
	cellPrompt = "Row %d, Column %d: "
	nextPrompt = "Who plays next? [X / O] "
	bestHeader = "For %s to win, the next moves of %s can be:"
)

type advisor interface {
	Analyze(grid entity.Grid, next string) *usecase.Analysis
}

type Options struct {
	ClearScreen bool
	ShowTree    bool
	ShowLevels  bool
}

// Console - the interactive front end: collects a starting grid and prints the advice.
type Console struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer
	term    *termenv.Output
	opts    Options
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		scanner: bufio.NewScanner(in),
		out:     out,
		term:    termenv.NewOutput(out),
		opts:    opts,
	}
}

// Run - one full session: grid, next mark, analysis, output.
func (that *Console) Run(advisor advisor) error {
	grid, err := that.ReadGrid()
	if err != nil {
		return fmt.Errorf("failed to read grid: %w", err)
	}

	next, err := that.ReadNextMark()
	if err != nil {
		return fmt.Errorf("failed to read next mark: %w", err)
	}

	if err = that.PrintAnalysis(advisor.Analyze(grid, next)); err != nil {
		return fmt.Errorf("failed to print analysis: %w", err)
	}

	return nil
}

// ReadGrid - asks for the 9 cells in row-major order. A blank answer is an empty cell,
// any other answer is taken as a mark without validation.
func (that *Console) ReadGrid() (entity.Grid, error) {
	var grid entity.Grid

	for row := range entity.Size {
		for column := range entity.Size {
			if _, err := fmt.Fprintln(that.out, gridPrompt); err != nil {
				return grid, err
			}
			if err := that.writeLines(render.Board(tictactoe.NewTree(grid).Root())); err != nil {
				return grid, err
			}

			mark, err := that.prompt(fmt.Sprintf(cellPrompt, row+1, column+1))
			if err != nil {
				return grid, err
			}

			if mark != entity.EmptyCell && !entity.IsKnownMark(mark) {
				that.logger.Warn("accepting unrecognized mark", "row", row, "column", column, "mark", mark)
			}

			grid[row][column] = mark
			that.clear()
		}
	}

	return grid, nil
}

// ReadNextMark - asks which mark moves next, X when the input is blank or closed.
func (that *Console) ReadNextMark() (string, error) {
	mark, err := that.prompt(nextPrompt)
	if err != nil {
		return "", err
	}

	if mark == entity.EmptyCell {
		mark = entity.PlayerX
	}

	that.clear()

	return mark, nil
}

// PrintAnalysis - writes the configured tree dumps followed by the best moves.
func (that *Console) PrintAnalysis(analysis *usecase.Analysis) error {
	w := bufio.NewWriter(that.out)
	root := analysis.Tree.Root()

	if that.opts.ShowTree {
		if err := writeLines(w, render.Indented(root)); err != nil {
			return err
		}
	}

	if that.opts.ShowLevels {
		if err := writeLines(w, render.ByLevel(root)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, bestHeader+"\n", analysis.Next, analysis.Next); err != nil {
		return err
	}

	for _, move := range analysis.BestMoves {
		if err := writeLines(w, render.Board(move)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return w.Flush()
}

// prompt - writes text and reads one upper-cased answer, whitespace kept. Closed input reads as blank.
func (that *Console) prompt(text string) (string, error) {
	if _, err := fmt.Fprint(that.out, text); err != nil {
		return "", err
	}

	line, err := that.readLine()
	if errors.Is(err, apperror.ErrInputClosed) {
		that.logger.Debug("input closed, using blank answer", "prompt", text)
		return entity.EmptyCell, nil
	}

	return line, err
}

func (that *Console) readLine() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", apperror.ErrInputClosed
	}

	return strings.ToUpper(that.scanner.Text()), nil
}

func (that *Console) clear() {
	if that.opts.ClearScreen {
		that.term.ClearScreen()
	}
}

func (that *Console) writeLines(lines iter.Seq[string]) error {
	return writeLines(that.out, lines)
}

func writeLines(w io.Writer, lines iter.Seq[string]) error {
	for line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
