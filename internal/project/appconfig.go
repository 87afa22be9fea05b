package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "glazecut"), nil
}

// DefaultAppConfigPath returns the default file path for the app config.
func DefaultAppConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig writes the application config to the specified JSON file.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the application config from the specified JSON file.
// If the file does not exist, it returns the default config and saves it.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := model.DefaultAppConfig()
			if saveErr := SaveAppConfig(path, config); saveErr != nil {
				return config, saveErr
			}
			return config, nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}

// AddRecentProject prepends a path to the recent project list, removing
// duplicates and capping the list at ten entries.
func AddRecentProject(config *model.AppConfig, path string) {
	recents := []string{path}
	for _, r := range config.RecentProjects {
		if r != path {
			recents = append(recents, r)
		}
	}
	if len(recents) > 10 {
		recents = recents[:10]
	}
	config.RecentProjects = recents
}
