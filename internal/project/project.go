// Package project handles JSON persistence of projects, application
// configuration, guide templates, and backups. The engine itself performs no
// I/O; everything file-shaped lives here.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// SaveProject writes the project to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the specified JSON file. The guide and
// edge configs round-trip as plain data; a zero-valued spec (older files) is
// replaced with the defaults.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Spec == (model.GlazingSpec{}) {
		p.Spec = model.DefaultGlazingSpec()
	}
	if p.Guide == nil {
		p.Guide = model.Guide{}
	}
	if p.EdgeConfigs == nil {
		p.EdgeConfigs = []model.EdgeConfig{}
	}
	return p, nil
}
