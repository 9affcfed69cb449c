package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Scenario describes a directory tree to scan and the rows the scan must
// produce.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Files are written below the scan root. Directories are created as
	// needed.
	Files []FileSpec `yaml:"files"`

	// Expect lists the expected row counts and error paths.
	Expect Expectation `yaml:"expect"`
}

// FileSpec is one file of a scenario. Exactly one of Text, Font and
// Collection should be set; with none of them the file is empty.
type FileSpec struct {
	// Path is slash-separated and relative to the scan root.
	Path string `yaml:"path"`

	Text       string `yaml:"text,omitempty"`
	Font       *Face  `yaml:"font,omitempty"`
	Collection []Face `yaml:"collection,omitempty"`
}

// Bytes renders the file contents.
func (f FileSpec) Bytes() []byte {
	switch {
	case f.Font != nil:
		return BuildFont(*f.Font)
	case len(f.Collection) > 0:
		return BuildCollection(f.Collection...)
	default:
		return []byte(f.Text)
	}
}

// Expectation holds the expected state of the store after a scan.
type Expectation struct {
	Fonts  int `yaml:"fonts"`
	Names  int `yaml:"names"`
	Errors int `yaml:"errors"`

	// ErrorPaths lists the path of every error row, sorted, duplicates
	// included.
	ErrorPaths []string `yaml:"error_paths,omitempty"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(file string) (*Scenario, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", file, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("parse scenario %s: missing name", file)
	}
	return &s, nil
}

// WriteTree writes the scenario's files below root on fsys.
func (s *Scenario) WriteTree(fsys afero.Fs, root string) error {
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create root: %w", err)
	}
	for _, f := range s.Files {
		full := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := fsys.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", f.Path, err)
		}
		if err := afero.WriteFile(fsys, full, f.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}
