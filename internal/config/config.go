// Package config loads and validates the YAML batch file of the slide CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/puzzle"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the batch file.
//
//	log_level: debug
//	parallel: 4
//	strategy: bfs
//	puzzles:
//	  - name: one-move
//	    rows: 3
//	    columns: 3
//	    tiles: [1, 2, 3, 4, 5, 6, 7, 0, 8]
type Config struct {
	LogLevel    string   `yaml:"log_level" validate:"omitempty,loglevel"`
	Parallel    int      `yaml:"parallel" validate:"gte=1,lte=64"`
	Strategy    string   `yaml:"strategy" validate:"strategy"`
	Trace       bool     `yaml:"trace"`
	MetricsFile string   `yaml:"metrics_file"`
	Puzzles     []Puzzle `yaml:"puzzles" validate:"required,min=1,dive"`
}

// Puzzle is one board to solve. An empty Strategy falls back to the
// file-level one.
type Puzzle struct {
	Name     string `yaml:"name" validate:"required"`
	Rows     int    `yaml:"rows" validate:"gte=1,lte=256"`
	Columns  int    `yaml:"columns" validate:"gte=1,lte=256"`
	Tiles    []int  `yaml:"tiles" validate:"required,dive,gte=0"`
	Strategy string `yaml:"strategy" validate:"omitempty,strategy"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := puzzle.ParseStrategy(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := ParseLevel(fl.Field().String())
		return err == nil
	})
	validate.RegisterStructValidation(validatePuzzle, Puzzle{})
}

// validatePuzzle checks the fields that depend on each other.
func validatePuzzle(sl validator.StructLevel) {
	p := sl.Current().Interface().(Puzzle)
	if p.Rows*p.Columns > puzzle.MaxCells {
		sl.ReportError(p.Rows, "Rows", "rows", "maxcells", "")
	}
	if len(p.Tiles) != p.Rows*p.Columns {
		sl.ReportError(p.Tiles, "Tiles", "tiles", "tilecount", "")
	}
}

// Default returns the settings used for keys a file leaves out.
func Default() Config {
	return Config{
		LogLevel: "info",
		Parallel: 1,
		Strategy: "bfs",
	}
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks c against its field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// StrategyFor returns the strategy of p, or the file-level one.
func (c *Config) StrategyFor(p Puzzle) (puzzle.Strategy, error) {
	name := p.Strategy
	if name == "" {
		name = c.Strategy
	}

	return puzzle.ParseStrategy(name)
}

// Board builds the puzzle board described by p.
func (p Puzzle) Board() (puzzle.Board, error) {
	return puzzle.FromTiles(p.Rows, p.Columns, p.Tiles)
}

// ParseLevel maps debug, info, warn or error (any case) to a slog level.
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}

	return lvl, nil
}
