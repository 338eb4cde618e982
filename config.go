package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"snapedit/internal/editor"
)

const (
	appName        = "snapedit"
	configFileName = "config.json"
)

// Config holds user settings read from config.json. Keys missing from the
// file keep their defaults.
type Config struct {
	// DefaultFile is opened when no file is named on the command line.
	DefaultFile string `json:"default_file"`
	LogFile     string `json:"log_file"`
	RowLabels   bool   `json:"row_labels"`
	StatusBar   bool   `json:"status_bar"`
	QuitBanner  string `json:"quit_banner"`
}

func defaultConfig() Config {
	return Config{
		RowLabels:  true,
		StatusBar:  true,
		QuitBanner: editor.DefaultBanner,
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// loadConfig reads the config at path, or at the per-user location when path
// is empty. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		p, err := configPath()
		if err != nil {
			// no config dir (e.g. $HOME unset): run with defaults
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
