package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// DefaultTemplatesPath returns the default file path for custom guide templates.
func DefaultTemplatesPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}

// SaveTemplates saves custom guide templates to a JSON file.
func SaveTemplates(path string, templates []model.GuideTemplate) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTemplates loads custom guide templates from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadTemplates(path string) ([]model.GuideTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.GuideTemplate{}, nil
		}
		return nil, err
	}
	var templates []model.GuideTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}
	return templates, nil
}

// FindTemplate looks up a template by ID, first among the builtin templates
// and then among the given custom templates.
func FindTemplate(custom []model.GuideTemplate, id string) (model.GuideTemplate, bool) {
	if t, ok := model.GetTemplate(id); ok {
		return t, true
	}
	for _, t := range custom {
		if t.ID == id {
			return t, true
		}
	}
	return model.GuideTemplate{}, false
}
