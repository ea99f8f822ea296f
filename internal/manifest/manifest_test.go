package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
package    = "patterns"
output_dir = "gen"

[[pattern]]
name    = "Greeting"
pattern = "hel+o"

[[pattern]]
name    = "Choice"
pattern = "(a|b)*c"
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Package != "patterns" || m.OutputDir != "gen" {
		t.Errorf("header = %q/%q, want patterns/gen", m.Package, m.OutputDir)
	}
	if len(m.Patterns) != 2 {
		t.Fatalf("got %d patterns, want 2", len(m.Patterns))
	}
	if m.Patterns[0].Name != "Greeting" || m.Patterns[0].Pattern != "hel+o" {
		t.Errorf("first entry = %+v", m.Patterns[0])
	}
	if got := m.Patterns[1].OutputFile(); got != "choice_matcher.go" {
		t.Errorf("OutputFile() = %q, want choice_matcher.go", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing package",
			"output_dir = \"gen\"\n[[pattern]]\nname = \"A\"\npattern = \"a\"\n",
			"package cannot be empty",
		},
		{
			"missing output dir",
			"package = \"p\"\n[[pattern]]\nname = \"A\"\npattern = \"a\"\n",
			"output_dir cannot be empty",
		},
		{
			"no patterns",
			"package = \"p\"\noutput_dir = \"gen\"\n",
			"no patterns",
		},
		{
			"unexported name",
			"package = \"p\"\noutput_dir = \"gen\"\n[[pattern]]\nname = \"greeting\"\npattern = \"a\"\n",
			"not an exported Go identifier",
		},
		{
			"empty pattern",
			"package = \"p\"\noutput_dir = \"gen\"\n[[pattern]]\nname = \"A\"\npattern = \"\"\n",
			"pattern cannot be empty",
		},
		{
			"duplicate names",
			"package = \"p\"\noutput_dir = \"gen\"\n[[pattern]]\nname = \"A\"\npattern = \"a\"\n[[pattern]]\nname = \"A\"\npattern = \"b\"\n",
			"duplicate name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tt.content))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}
