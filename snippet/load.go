package snippet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// collectionFile is the on-disk shape of a snippet collection.
type collectionFile struct {
	Snippets []Snippet `json:"snippets" yaml:"snippets"`
}

// Load reads a snippet collection from a file. The format is detected by
// extension (.json, .yaml, .yml). Entries with an empty or duplicate id are
// rejected.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	var file collectionFile
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON collection: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML collection: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported collection format: %s (supported: .json, .yaml, .yml)", ext)
	}

	c := make(Collection, len(file.Snippets))
	for i, s := range file.Snippets {
		if s.ID == "" {
			return nil, fmt.Errorf("snippet at index %d: %w", i, ErrEmptyID)
		}
		if _, exists := c[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		c[s.ID] = s
	}

	return c, nil
}

// Save writes the collection to a file in the format implied by its
// extension (.json, .yaml, .yml), with snippets ordered by id.
func Save(path string, c Collection) error {
	file := collectionFile{Snippets: c.Snippets()}

	var (
		data []byte
		err  error
	)
	switch ext := filepath.Ext(path); ext {
	case ".json":
		data, err = json.MarshalIndent(file, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(file)
	default:
		return fmt.Errorf("unsupported collection format: %s (supported: .json, .yaml, .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection file: %w", err)
	}
	return nil
}
