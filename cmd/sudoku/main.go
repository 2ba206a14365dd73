package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"

	"github.com/okhotin/sudoku-solver/internal/config"
	"github.com/okhotin/sudoku-solver/internal/sudoku"
)

var puzzles = []struct {
	name  string
	lines []string
}{
	{
		name: "forty givens",
		lines: []string{
			" 3    9 6",
			"6 2943851",
			"       73",
			"3917   68",
			"    1  42",
			"4   86   ",
			"947 3    ",
			" 16 95 3 ",
			"8   67  9",
		},
	},
	{
		name: "hard",
		lines: []string{
			"   8 1   ",
			"7    9 5 ",
			"   2  4  ",
			"9        ",
			"6   1 34 ",
			" 5   31  ",
			"  2      ",
			"   1  6  ",
			"53  64  9",
		},
	},
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	if config.Debug() {
		sudoku.Log.SetLevel(logrus.DebugLevel)
	}

	for _, p := range puzzles {
		g, err := sudoku.Load(p.lines)
		if err != nil {
			logger.Error("failed to load puzzle", "puzzle", p.name, "error", err)
			continue
		}

		res, err := g.Deduce()
		if err != nil {
			logger.Error("deduction failed", "puzzle", p.name, "error", err)
			continue
		}
		logger.Info("deduction finished",
			slog.String("puzzle", p.name),
			slog.String("result", res.String()),
			slog.Int("unplaced", len(g.Unplaced())),
		)
		fmt.Println(g.FormatPretty())

		if res == sudoku.Solved {
			continue
		}

		// Deduction stalled, search a fresh grid instead.
		lines, err := sudoku.SolveBySearch(p.lines)
		if errors.Is(err, sudoku.ErrNoSolution) {
			logger.Info("no solution", slog.String("puzzle", p.name))
			continue
		}
		if err != nil {
			logger.Error("search failed", "puzzle", p.name, "error", err)
			continue
		}
		logger.Info("search finished", slog.String("puzzle", p.name))
		solved, err := sudoku.Load(lines)
		if err != nil {
			logger.Error("failed to reload solution", "puzzle", p.name, "error", err)
			continue
		}
		fmt.Println(solved.FormatPretty())
	}
}
