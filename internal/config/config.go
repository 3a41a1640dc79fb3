// Package config defines the formatter's user-tunable knobs and loads them
// from an optional .dai.yaml layered over built-in defaults, in place of the
// --style/--indent/--tabs flags the teacher's fmt command uses.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the formatter and debug-print defaults. Zero value is not
// meaningful; use Default() or Load().
type Config struct {
	// IndentWidth is the number of columns one indentation level occupies.
	IndentWidth int `yaml:"indent_width"`
	// UseTabs selects tab-based indentation over IndentWidth spaces.
	UseTabs bool `yaml:"use_tabs"`
	// ElideRedundantParens is carried through Load and Marshal; the printer
	// does not read it and always keeps exactly the parentheses the source
	// had.
	ElideRedundantParens bool `yaml:"elide_redundant_parens"`
	// ASTStyle is show-ast's default rendering: "plain" or "colored".
	ASTStyle string `yaml:"ast_style"`
}

// Default returns the built-in configuration used when no .dai.yaml is
// found.
func Default() Config {
	return Config{
		IndentWidth:          2,
		UseTabs:              false,
		ElideRedundantParens: true,
		ASTStyle:             "colored",
	}
}

// Load reads and unmarshals a .dai.yaml-shaped file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefaultFile loads ".dai.yaml" from the current directory if it
// exists, else returns Default() unchanged.
func LoadDefaultFile() (Config, error) {
	const name = ".dai.yaml"
	if _, err := os.Stat(name); err != nil {
		return Default(), nil
	}
	return Load(name)
}

// Marshal renders cfg back to YAML, e.g. for a `dai config init` style
// scaffold command.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
