package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cyberfrontiers/jump/board"
	"github.com/cyberfrontiers/jump/layout"
	"github.com/cyberfrontiers/jump/solver"
)

// rawConfig mirrors the on-disk definition before validation.
type rawConfig struct {
	Description string `json:"description" yaml:"description"`
	Board       string `json:"board"       yaml:"board"`
	Layout      string `json:"layout"      yaml:"layout"`
	Start       []int  `json:"start"       yaml:"start"`
	Method      string `json:"method"      yaml:"method"`
	Scope       string `json:"scope"       yaml:"scope"`
	Finish      []int  `json:"finish"      yaml:"finish"`
	FinalCount  *int   `json:"final_count" yaml:"final_count"`
}

// Load reads, decodes, and validates the puzzle definition at path.
// JSON (.json) and YAML (.yaml, .yml) definitions are supported; board and
// layout file references resolve relative to the definition's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var raw rawConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return build(raw, filepath.Dir(path))
}

// build validates a decoded definition and assembles the Config.
// dir anchors relative board/layout references.
func build(raw rawConfig, dir string) (*Config, error) {
	description := raw.Description
	if description == "" {
		description = "Generic Jump Puzzle Solution"
	}

	if raw.Board == "" {
		return nil, fmt.Errorf("%w: board", ErrMissingField)
	}
	b, err := board.ReadFile(resolve(dir, raw.Board))
	if err != nil {
		return nil, err
	}

	if raw.Layout == "" {
		return nil, fmt.Errorf("%w: layout", ErrMissingField)
	}
	l, err := layout.ReadFile(resolve(dir, raw.Layout))
	if err != nil {
		return nil, err
	}

	if len(raw.Start) == 0 {
		return nil, fmt.Errorf("%w: start", ErrMissingField)
	}
	start, err := validateNodeList("start", raw.Start, b.Nodes())
	if err != nil {
		return nil, err
	}

	method, err := solver.ParseMethod(raw.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	scope, err := solver.ParseScope(raw.Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}

	var finish board.State
	if len(raw.Finish) > 0 {
		if finish, err = validateNodeList("finish", raw.Finish, b.Nodes()); err != nil {
			return nil, err
		}
	}

	finalCount := -1
	if raw.FinalCount != nil {
		finalCount = *raw.FinalCount
		if finalCount < 0 || finalCount > b.Nodes() {
			return nil, fmt.Errorf("%w: final_count %d outside [0, %d]", ErrBadValue, finalCount, b.Nodes())
		}
	}

	switch {
	case finish != nil && finalCount >= 0:
		if finish.Len() != finalCount {
			return nil, fmt.Errorf("%w: finish has %d pegs, final_count is %d",
				ErrGoalMismatch, finish.Len(), finalCount)
		}
	case finish == nil && finalCount < 0:
		// neither given: the goal is implicitly the inversion of the start
		finish = complement(start, b.Nodes())
		finalCount = finish.Len()
	case finish != nil:
		finalCount = finish.Len()
	}

	return &Config{
		Description: description,
		Board:       b,
		Layout:      l,
		Start:       start,
		Method:      method,
		Scope:       scope,
		Finish:      finish,
		FinalCount:  finalCount,
	}, nil
}

// resolve anchors a relative file reference at the definition's directory.
func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(dir, name)
}
