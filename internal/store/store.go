// Package store loads user-supplied classifier keyword sets from YAML files.
// A missing file is not an error; the built-in defaults apply.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/logging"
)

// DefaultKeywordsFile is the filename searched for in the standard locations.
const DefaultKeywordsFile = "keywords.yaml"

// KeywordStore resolves and loads keyword set overrides.
type KeywordStore struct {
	// File is the configured keywords file; empty means DefaultKeywordsFile.
	File   string
	logger logging.Logger
}

// NewKeywordStore creates a store for the given keywords file path. An empty
// path uses the default filename and search locations.
func NewKeywordStore(file string, logger logging.Logger) *KeywordStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStore{File: file, logger: logger}
}

// findConfigFile looks for a configuration file in standard locations.
func (s *KeywordStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "bankparse", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadSets returns the classifier keyword sets: the built-in defaults with
// any non-empty list from the YAML file overriding its default counterpart.
func (s *KeywordStore) LoadSets() (classify.Sets, error) {
	sets := classify.DefaultSets()

	filename := s.File
	if filename == "" {
		filename = DefaultKeywordsFile
	}

	path, err := s.findConfigFile(filename)
	if err != nil {
		s.logger.WithField(logging.FieldFile, filename).
			Debug("No keywords file found, using built-in keyword sets")
		return sets, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config
	if err != nil {
		return sets, fmt.Errorf("error reading keywords file %s: %w", path, err)
	}

	var overrides classify.Sets
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return sets, fmt.Errorf("error parsing keywords file %s: %w", path, err)
	}

	if len(overrides.Transfer) > 0 {
		sets.Transfer = overrides.Transfer
	}
	if len(overrides.Income) > 0 {
		sets.Income = overrides.Income
	}
	if len(overrides.Expense) > 0 {
		sets.Expense = overrides.Expense
	}

	s.logger.WithField(logging.FieldFile, path).Info("Loaded classifier keyword sets")
	return sets, nil
}

// SaveSets writes keyword sets to the given path, creating the directory if
// needed. Used to bootstrap an editable keywords file for users.
func (s *KeywordStore) SaveSets(path string, sets classify.Sets) error {
	data, err := yaml.Marshal(sets)
	if err != nil {
		return fmt.Errorf("error marshaling keyword sets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing keywords file %s: %w", path, err)
	}
	return nil
}
