package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvlsearch/grid"
	"github.com/katalvlaran/lvlsearch/search"
)

// ErrNoStart is returned when the map holds no start marker.
var ErrNoStart = errors.New("gridsearch: start marker not found")

// app holds everything a single run needs.
type app struct {
	logger   *slog.Logger
	cells    grid.Map[rune]
	settings Settings
	start    grid.Position
}

// newApp loads the map and configuration named by flags.
func newApp(logger *slog.Logger, flags *Flags) (*app, error) {
	cells, err := loadMap(flags.MapPath)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := cells.Bounds()
	if !ok {
		return nil, fmt.Errorf("%s: %w", flags.MapPath, grid.ErrEmptyGrid)
	}
	width, height := hi.X-lo.X+1, hi.Y-lo.Y+1
	logger.Debug("Map loaded.", "path", flags.MapPath, "width", width, "height", height, "cells", len(cells))

	settings, err := loadSettings(flags.ConfigPath, width, height)
	if err != nil {
		return nil, configError(err)
	}
	logger.Debug("Settings resolved.", "mode", settings.Mode, "connectivity", settings.Conn, "max_cost", settings.MaxCost)

	starts := grid.Find(cells, settings.Start)
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoStart, settings.Start)
	}
	if len(starts) > 1 {
		logger.Warn("Several start markers found, using the first.", "count", len(starts), "start", starts[0].String())
	}

	return &app{
		logger:   logger,
		cells:    cells,
		settings: settings,
		start:    starts[0],
	}, nil
}

func loadMap(path string) (grid.Map[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	cells, err := grid.Parse(f, grid.Runes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return cells, nil
}

// neighbours yields the adjacent non-wall cells of p.
func (a *app) neighbours(p grid.Position) []grid.Position {
	var out []grid.Position
	for _, n := range p.Neighbors(a.settings.Conn) {
		c, ok := a.cells[n]
		if !ok || strings.ContainsRune(a.settings.Walls, c) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (a *app) isGoal(p grid.Position) bool {
	return a.cells[p] == a.settings.Goal
}

// Run executes the configured search and writes the result to out.
func (a *app) Run(out io.Writer) error {
	opts := []search.Option{
		search.WithLogger(a.logger),
		search.WithMaxCost(a.settings.MaxCost),
	}
	a.logger.Info("Search started.", "mode", a.settings.Mode, "start", a.start.String())

	switch a.settings.Mode {
	case modeReach:
		layers := search.Layers(a.start, a.neighbours, opts...)
		total := 0
		for _, layer := range layers {
			total += len(layer)
		}
		_, err := fmt.Fprintf(out, "reachable: %d\nmax distance: %d\n", total, len(layers)-1)
		return err
	default:
		cost, ok := search.ShortestPath(a.start, a.isGoal, a.neighbours, opts...)
		if !ok {
			a.logger.Info("Goal unreachable.")
			_, err := fmt.Fprintln(out, "unreachable")
			return err
		}
		_, err := fmt.Fprintln(out, cost)
		return err
	}
}
