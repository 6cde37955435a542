package binding

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Loader loads binding collections from JSON files.
type Loader struct {
	// searchPaths are directories to search for bindings files.
	searchPaths []string
}

// NewLoader creates a new bindings loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for bindings files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a collection from a JSON file.
func (l *Loader) LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bindings file: %w", err)
	}
	defer f.Close()

	c, err := DeserializeFrom(f)
	if err != nil {
		return nil, fmt.Errorf("loading bindings from %s: %w", path, err)
	}
	return c, nil
}

// LoadReader loads a collection from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Collection, error) {
	return DeserializeFrom(r)
}

// Find locates a bindings file by name across the search paths.
// It returns the first existing path, or an error when none is found.
func (l *Loader) Find(name string) (string, error) {
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("bindings file %q not found in search paths", name)
}

// LoadNamed finds and loads a bindings file by name across the search paths.
func (l *Loader) LoadNamed(name string) (*Collection, error) {
	path, err := l.Find(name)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}

// SaveFile writes a collection to a JSON file.
func SaveFile(c *Collection, path string) error {
	data, err := Serialize(c)
	if err != nil {
		return fmt.Errorf("serializing bindings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing bindings file: %w", err)
	}
	return nil
}
