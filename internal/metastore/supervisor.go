package metastore

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/danieljhkim/hms-sandbox/internal/service"
	"github.com/danieljhkim/hms-sandbox/internal/util"
)

// ResetScope selects how much persisted state a reset removes.
type ResetScope int

const (
	// ResetNone leaves persisted state untouched.
	ResetNone ResetScope = iota
	// ResetState removes the whole state directory: database, warehouse
	// and logs.
	ResetState
	// ResetDatabase removes only the Derby database, keeping warehouse
	// data and logs.
	ResetDatabase
)

// Supervisor manages the metastore server process and its on-disk state.
type Supervisor struct {
	paths *config.Paths
	env   *env.Environment
}

// NewSupervisor creates a supervisor and makes sure the state directories
// exist. The Derby database directory is deliberately not created here;
// schematool materializes it, and its absence is how a fresh (or cleaned)
// sandbox is recognized.
func NewSupervisor(cfg *config.Config, environment *env.Environment) (*Supervisor, error) {
	paths := cfg.Paths

	if err := util.MkdirAll(paths.StateDir(), paths.WarehouseDir(), paths.LogsDir()); err != nil {
		return nil, fmt.Errorf("failed to create state directories: %w", err)
	}

	return &Supervisor{paths: paths, env: environment}, nil
}

// Stop kills whatever is listening on the metastore port.
func (s *Supervisor) Stop() *service.KillResult {
	return service.KillByPort(Port)
}

// Reset removes persisted state per scope and recreates the directory
// skeleton.
func (s *Supervisor) Reset(scope ResetScope) error {
	switch scope {
	case ResetState:
		util.Log("Removing state directory %s", s.paths.StateDir())
		if err := os.RemoveAll(s.paths.StateDir()); err != nil {
			return fmt.Errorf("failed to remove state directory: %w", err)
		}
	case ResetDatabase:
		util.Log("Removing metastore database %s", s.paths.MetastoreDBDir())
		if err := os.RemoveAll(s.paths.MetastoreDBDir()); err != nil {
			return fmt.Errorf("failed to remove metastore database: %w", err)
		}
	default:
		return nil
	}

	return util.MkdirAll(s.paths.StateDir(), s.paths.WarehouseDir(), s.paths.LogsDir())
}

// DatabaseExists reports whether the Derby database directory is present.
func (s *Supervisor) DatabaseExists() bool {
	return util.FileExists(s.paths.MetastoreDBDir())
}

// Launch starts the metastore server detached with its output going to the
// fixed log path, and returns the PID. The working directory is the state
// dir so Derby drops derby.log there.
func (s *Supervisor) Launch() (int, error) {
	hive := filepath.Join(s.env.HiveHome, "bin", "hive")

	cmd := exec.Command(hive, "--service", "metastore")
	cmd.Dir = s.paths.StateDir()
	cmd.Env = s.env.MergeWithCurrent()

	pid, err := service.StartDetached(cmd, s.paths.MetastoreLog())
	if err != nil {
		return 0, fmt.Errorf("failed to start metastore: %w", err)
	}

	return pid, nil
}
