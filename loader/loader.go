// Package loader reads state spaces, heuristic tables and terrain grids from
// files. Plain-text files follow the line formats below; files ending in
// .yaml, .yml or .json are decoded as YAML (JSON being a subset).
//
// State space, text:
//
//	# comment
//	A            start state
//	D E          goal states
//	A: B,1 C,4   transitions of A as to,cost
//	B: D,1
//
// Heuristic, text: one "state: value" per line.
//
// Grid, text: one row of integers per line, separated by spaces or commas.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// Sentinel errors for file parsing.
var (
	// ErrMissingStart indicates a state space without a start state.
	ErrMissingStart = errors.New("loader: missing start state")
	// ErrMissingGoals indicates a state space without goal states.
	ErrMissingGoals = errors.New("loader: missing goal states")
	// ErrSyntax indicates a malformed line or document.
	ErrSyntax = errors.New("loader: syntax error")
)

// Format selects a decoder.
type Format int

const (
	// Text is the line-oriented format.
	Text Format = iota
	// YAML is the structured format (also used for JSON).
	YAML
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return YAML
	default:
		return Text
	}
}

// LoadSpace reads a state space file.
func LoadSpace(path string) (*statespace.Space[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state space: %w", err)
	}
	sp, err := ParseSpace(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sp, nil
}

// ParseSpace decodes a state space from data.
func ParseSpace(data []byte, f Format) (*statespace.Space[string], error) {
	if f == YAML {
		return parseYAMLSpace(data)
	}

	return parseTextSpace(bytes.NewReader(data))
}

// LoadHeuristic reads a heuristic table file.
func LoadHeuristic(path string) (heuristic.Table[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heuristic: %w", err)
	}
	t, err := ParseHeuristic(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ParseHeuristic decodes a heuristic table from data.
func ParseHeuristic(data []byte, f Format) (heuristic.Table[string], error) {
	if f == YAML {
		return parseYAMLHeuristic(data)
	}

	return parseTextHeuristic(bytes.NewReader(data))
}

// LoadGrid reads a terrain grid file.
func LoadGrid(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	g, err := ParseGrid(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ParseGrid decodes a terrain grid from data. Shape is not validated here;
// gridgraph.NewGridGraph rejects empty and ragged grids.
func ParseGrid(data []byte, f Format) ([][]int, error) {
	if f == YAML {
		return parseYAMLGrid(data)
	}

	return parseTextGrid(bytes.NewReader(data))
}
