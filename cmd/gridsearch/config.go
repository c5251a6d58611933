package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/lvlsearch/grid"
)

// ErrInvalidConfig is returned when a run configuration fails validation.
var ErrInvalidConfig = errors.New("gridsearch: invalid config")

// Search modes.
const (
	modeShortest = "shortest"
	modeReach    = "reach"
)

// Settings is the validated run configuration.
type Settings struct {
	Start   rune
	Goal    rune
	Walls   string
	Conn    grid.Connectivity
	Mode    string
	MaxCost int
}

// hclSettings mirrors the attributes accepted in a config file. Absent
// attributes keep the defaults they were initialised with.
type hclSettings struct {
	Start        string `hcl:"start,optional"`
	Goal         string `hcl:"goal,optional"`
	Walls        string `hcl:"walls,optional"`
	Connectivity int    `hcl:"connectivity,optional"`
	Mode         string `hcl:"mode,optional"`
	MaxCost      int    `hcl:"max_cost,optional"`
}

func defaultHCLSettings() hclSettings {
	return hclSettings{
		Start:        "S",
		Goal:         "E",
		Walls:        "#",
		Connectivity: 4,
		Mode:         modeShortest,
		MaxCost:      0,
	}
}

// loadSettings decodes the HCL file at path (if any) over the defaults.
// width and height are exposed to expressions as variables.
func loadSettings(path string, width, height int) (Settings, error) {
	raw := defaultHCLSettings()
	if path != "" {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return Settings{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		diags = gohcl.DecodeBody(file.Body, evalContext(width, height), &raw)
		if diags.HasErrors() {
			return Settings{}, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
	}
	return raw.validate()
}

func evalContext(width, height int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(width)),
			"height": cty.NumberIntVal(int64(height)),
		},
	}
}

func (h hclSettings) validate() (Settings, error) {
	start, err := singleRune("start", h.Start)
	if err != nil {
		return Settings{}, err
	}
	goal, err := singleRune("goal", h.Goal)
	if err != nil {
		return Settings{}, err
	}

	var conn grid.Connectivity
	switch h.Connectivity {
	case 4:
		conn = grid.Conn4
	case 8:
		conn = grid.Conn8
	default:
		return Settings{}, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalidConfig, h.Connectivity)
	}

	if h.Mode != modeShortest && h.Mode != modeReach {
		return Settings{}, fmt.Errorf("%w: mode must be %q or %q, got %q", ErrInvalidConfig, modeShortest, modeReach, h.Mode)
	}
	if h.MaxCost < 0 {
		return Settings{}, fmt.Errorf("%w: max_cost cannot be negative (%d)", ErrInvalidConfig, h.MaxCost)
	}

	return Settings{
		Start:   start,
		Goal:    goal,
		Walls:   h.Walls,
		Conn:    conn,
		Mode:    h.Mode,
		MaxCost: h.MaxCost,
	}, nil
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
