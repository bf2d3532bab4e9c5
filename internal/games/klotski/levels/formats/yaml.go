// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Boards      []YAMLBoard `yaml:"boards"`
}

// YAMLBoard is one board of a YAML pack. Rows use the same cell glyphs
// as the text notation, without the border.
type YAMLBoard struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Board is an unvalidated board definition.
type Board struct {
	Name string
	Rows []string
}

// Pack represents a parsed pack whose boards are not validated yet.
type Pack struct {
	ID          string
	Name        string
	Description string
	Boards      []Board
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Boards) == 0 {
		return Pack{}, fmt.Errorf("yaml pack %q has no boards", yp.ID)
	}

	pack := Pack{
		ID:          yp.ID,
		Name:        yp.Name,
		Description: yp.Description,
		Boards:      make([]Board, 0, len(yp.Boards)),
	}
	for _, b := range yp.Boards {
		pack.Boards = append(pack.Boards, Board{Name: b.Name, Rows: b.Rows})
	}
	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".kts", ".yaml", ".yml"}
}
