package config

import (
	"os"
	"os/user"
	"path/filepath"
)

// Paths holds the filesystem layout of the sandbox. Everything lives
// under a single base directory: unpacked distributions at the top
// level, runtime state under state/, settings.yaml alongside.
type Paths struct {
	BaseDir string
}

// NewPaths creates a Paths rooted at baseDir (empty uses the default).
func NewPaths(baseDir string) *Paths {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	return &Paths{BaseDir: baseDir}
}

// DefaultBaseDir returns the default sandbox root: $HOME/.hms-sandbox
func DefaultBaseDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		// Fallback to user.Current if HOME not set
		if currentUser, err := user.Current(); err == nil {
			home = currentUser.HomeDir
		}
	}

	return filepath.Join(home, ".hms-sandbox")
}

// StateDir returns the persisted service state directory: $BASE_DIR/state.
// It survives across runs unless an explicit clean is requested.
func (p *Paths) StateDir() string {
	return filepath.Join(p.BaseDir, "state")
}

// MetastoreDBDir returns the embedded Derby database directory.
func (p *Paths) MetastoreDBDir() string {
	return filepath.Join(p.StateDir(), "metastore_db")
}

// WarehouseDir returns the table warehouse directory.
func (p *Paths) WarehouseDir() string {
	return filepath.Join(p.StateDir(), "warehouse")
}

// LogsDir returns the service log directory.
func (p *Paths) LogsDir() string {
	return filepath.Join(p.StateDir(), "logs")
}

// MetastoreLog returns the fixed log path the detached metastore
// process writes to.
func (p *Paths) MetastoreLog() string {
	return filepath.Join(p.LogsDir(), "metastore.log")
}

// SettingsFile returns the settings file path: $BASE_DIR/settings.yaml
func (p *Paths) SettingsFile() string {
	return filepath.Join(p.BaseDir, "settings.yaml")
}
