// Package stage compiles a symbolic maze description into a populated grid.
// Compilation runs in four passes: symbol scan, neighborhood analysis,
// texture selection, and materialization into game objects.
package stage

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed stages/classic.yaml
var embeddedStage []byte

// Source is a stage description as authored: rows of symbol characters with
// row 0 at the TOP (the natural editing orientation). The compiler flips it
// so that row 0 ends up at the bottom of the playfield.
//
// Symbols: B/S/I/D are Border/Structure/Interior/Door barriers, F is a dot,
// U is a power-up, p is the player spawn (exactly one required), m next to
// p shifts the spawn half a cell toward the m. Anything else is ignored.
type Source struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseSource decodes a YAML stage description and validates its shape.
func ParseSource(data []byte) (*Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("stage: parse source: %w", err)
	}
	if len(src.Rows) == 0 {
		return nil, fmt.Errorf("stage: source has no rows")
	}
	width := len(src.Rows[0])
	for i, row := range src.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("stage: row %d is %d cells wide, want %d", i, len(row), width)
		}
	}
	return &src, nil
}

// LoadSource reads a stage description from a YAML file.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stage: read source: %w", err)
	}
	return ParseSource(data)
}

// DefaultSource returns the embedded classic stage.
func DefaultSource() *Source {
	src, err := ParseSource(embeddedStage)
	if err != nil {
		// The embedded stage is validated by tests; failing to parse it
		// means the binary itself is broken.
		panic(fmt.Sprintf("stage: embedded stage invalid: %v", err))
	}
	return src
}
