package usecase

import (
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/entity"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/tictactoe"
)

// Analysis - a fully generated and evaluated game tree with the best replies for Next.
type Analysis struct {
	Tree      *tictactoe.Tree
	Next      string
	Score     int
	BestMoves []*tictactoe.Board
}

// Outcome - the result of the game under optimal play from both sides.
func (that *Analysis) Outcome() string {
	switch {
	case that.Score > tictactoe.ScoreDraw:
		return entity.PlayerX + " wins"
	case that.Score < tictactoe.ScoreDraw:
		return entity.PlayerO + " wins"
	default:
		return "draw"
	}
}

type Advisor struct {
	logger *slog.Logger
}

func NewAdvisor(logger *slog.Logger) *Advisor {
	return &Advisor{
		logger: logger.With("component", "advisor"),
	}
}

// Analyze - builds the whole game tree from grid with next to move and selects next's best moves.
// Marks other than X and O are played as given.
func (that *Advisor) Analyze(grid entity.Grid, next string) *Analysis {
	if !entity.IsKnownMark(next) {
		that.logger.Warn("unrecognized mark to move, playing it as given", "mark", next)
	}

	for _, row := range grid {
		for _, cell := range row {
			if cell != entity.EmptyCell && !entity.IsKnownMark(cell) {
				that.logger.Warn("unrecognized mark on the grid, keeping it as given", "mark", cell)
			}
		}
	}

	start := time.Now()

	tree := tictactoe.Build(grid, next)
	root := tree.Root()

	that.logger.Debug("game tree generated",
		"nodes", tree.Len(),
		"depth", tree.Depth(),
		"elapsed", time.Since(start),
	)

	bestMoves := tictactoe.FindBestMove(root, next)
	score, _ := root.Score()

	analysis := &Analysis{
		Tree:      tree,
		Next:      next,
		Score:     score,
		BestMoves: bestMoves,
	}

	that.logger.Info("game tree evaluated",
		"next", next,
		"outcome", analysis.Outcome(),
		"best_moves", len(bestMoves),
		"elapsed", time.Since(start),
	)

	return analysis
}
