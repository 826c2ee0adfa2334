package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/puzzle"
)

const sample = `
log_level: debug
parallel: 4
strategy: dfs
metrics_file: out.prom
puzzles:
  - name: one-move
    rows: 3
    columns: 3
    tiles: [1, 2, 3, 4, 5, 6, 7, 0, 8]
    strategy: bfs
  - name: tiny
    rows: 2
    columns: 2
    tiles: [1, 2, 0, 3]
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.False(t, cfg.Trace)
	require.Len(t, cfg.Puzzles, 2)

	s, err := cfg.StrategyFor(cfg.Puzzles[0])
	require.NoError(t, err)
	assert.Equal(t, puzzle.BFS, s)
	s, err = cfg.StrategyFor(cfg.Puzzles[1])
	require.NoError(t, err)
	assert.Equal(t, puzzle.DFS, s, "falls back to the file-level strategy")

	b, err := cfg.Puzzles[1].Board()
	require.NoError(t, err)
	assert.Equal(t, "Puzzle{1,2,0,3}", b.String())
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("puzzles: [{name: a, rows: 1, columns: 1, tiles: [0]}]"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Parallel)
	assert.Equal(t, "bfs", cfg.Strategy)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no puzzles":     "parallel: 2",
		"unknown key":    "paralel: 2\npuzzles: [{name: a, rows: 1, columns: 1, tiles: [0]}]",
		"bad strategy":   "strategy: astar\npuzzles: [{name: a, rows: 1, columns: 1, tiles: [0]}]",
		"bad log level":  "log_level: loud\npuzzles: [{name: a, rows: 1, columns: 1, tiles: [0]}]",
		"parallel zero":  "parallel: 0\npuzzles: [{name: a, rows: 1, columns: 1, tiles: [0]}]",
		"parallel huge":  "parallel: 1000\npuzzles: [{name: a, rows: 1, columns: 1, tiles: [0]}]",
		"missing name":   "puzzles: [{rows: 1, columns: 1, tiles: [0]}]",
		"tile count":     "puzzles: [{name: a, rows: 2, columns: 2, tiles: [0, 1, 2]}]",
		"too many cells": "puzzles: [{name: a, rows: 20, columns: 20, tiles: [0]}]",
		"negative tile":  "puzzles: [{name: a, rows: 1, columns: 2, tiles: [-1, 0]}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("parallel: 2"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Puzzles, 2)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := config.ParseLevel("verbose")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
