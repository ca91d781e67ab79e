package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance case: a puzzle and the outcome the
// solver must produce for it.
type Scenario struct {
	// Name uniquely identifies the scenario; it doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Puzzle is the input grid, 0 for empty cells.
	Puzzle [][]int `yaml:"puzzle"`

	// MaxNodes optionally bounds the search; 0 means unbounded.
	MaxNodes int `yaml:"max_nodes,omitempty"`

	// Expect describes the required outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation is the outcome a scenario requires.
type Expectation struct {
	// Status is the required terminal status: "solved", "unsatisfiable",
	// "invalid", or "aborted".
	Status string `yaml:"status"`

	// Grid, when present, is the exact solution required. Only usable
	// for puzzles with a unique completion.
	Grid [][]int `yaml:"grid,omitempty"`

	// Check selects a structural check instead of an exact grid:
	// "valid" requires a complete, constraint-satisfying solution that
	// preserves every given. Used for puzzles with multiple completions.
	Check string `yaml:"check,omitempty"`
}

// Load reads and validates a single scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if len(sc.Puzzle) == 0 {
		return nil, fmt.Errorf("scenario %s: missing puzzle", sc.Name)
	}
	if sc.Expect.Status == "" {
		return nil, fmt.Errorf("scenario %s: missing expect.status", sc.Name)
	}

	return &sc, nil
}

// LoadDir loads every *.yaml scenario in a directory, sorted by file name
// so test order is stable.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := Load(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
