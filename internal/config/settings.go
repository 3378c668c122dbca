package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds persisted user-configurable settings. An empty field means
// the user never set it and the built-in default applies.
type Settings struct {
	InstallRoot    string `yaml:"install-root,omitempty"`
	HiveVersion    string `yaml:"hive-version,omitempty"`
	HadoopVersion  string `yaml:"hadoop-version,omitempty"`
	SparkVersion   string `yaml:"spark-version,omitempty"`
	IcebergVersion string `yaml:"iceberg-version,omitempty"`
}

// SettingsManager handles settings persistence.
type SettingsManager struct {
	paths *Paths
}

// NewSettingsManager creates a settings manager.
func NewSettingsManager(paths *Paths) *SettingsManager {
	return &SettingsManager{paths: paths}
}

// Path returns the settings file path.
func (sm *SettingsManager) Path() string {
	return sm.paths.SettingsFile()
}

// Load reads settings from disk. A missing file is not an error; it yields
// empty settings so defaults apply.
func (sm *SettingsManager) Load() (*Settings, error) {
	data, err := os.ReadFile(sm.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	sanitizeSettings(&settings)

	return &settings, nil
}

// Save writes settings to disk.
func (sm *SettingsManager) Save(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings required")
	}
	sanitizeSettings(settings)

	if err := os.MkdirAll(sm.paths.BaseDir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return os.WriteFile(sm.Path(), data, 0644)
}

func sanitizeSettings(settings *Settings) {
	settings.InstallRoot = strings.TrimSpace(settings.InstallRoot)
	settings.HiveVersion = strings.TrimSpace(settings.HiveVersion)
	settings.HadoopVersion = strings.TrimSpace(settings.HadoopVersion)
	settings.SparkVersion = strings.TrimSpace(settings.SparkVersion)
	settings.IcebergVersion = strings.TrimSpace(settings.IcebergVersion)
}
