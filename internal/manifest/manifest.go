// Package manifest loads TOML manifests describing batches of patterns
// to compile into Go matcher functions in one run.
//
// A manifest looks like:
//
//	package    = "patterns"
//	output_dir = "gen"
//
//	[[pattern]]
//	name    = "Greeting"
//	pattern = "hel+o"
package manifest

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes one batch-generation run.
type Manifest struct {
	// Package is the Go package name for every generated file.
	Package string `toml:"package"`

	// OutputDir is the directory generated files are written to.
	OutputDir string `toml:"output_dir"`

	// Patterns lists the matchers to generate.
	Patterns []Entry `toml:"pattern"`
}

// Entry is one pattern in a manifest.
type Entry struct {
	// Name is the prefix for the generated function (e.g. "Email"
	// generates EmailMatchString). It must be a valid exported Go
	// identifier and unique within the manifest.
	Name string `toml:"name"`

	// Pattern is the regular expression to compile.
	Pattern string `toml:"pattern"`
}

// OutputFile returns the file name an entry is generated into.
func (e Entry) OutputFile() string {
	return strings.ToLower(e.Name) + "_matcher.go"
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the manifest for completeness and name collisions.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if m.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if len(m.Patterns) == 0 {
		return fmt.Errorf("manifest lists no patterns")
	}

	seen := make(map[string]bool, len(m.Patterns))
	for i, e := range m.Patterns {
		if e.Name == "" {
			return fmt.Errorf("pattern %d: name cannot be empty", i)
		}
		if !isExportedIdentifier(e.Name) {
			return fmt.Errorf("pattern %d: name %q is not an exported Go identifier", i, e.Name)
		}
		if e.Pattern == "" {
			return fmt.Errorf("pattern %d (%s): pattern cannot be empty", i, e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("pattern %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

func isExportedIdentifier(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
