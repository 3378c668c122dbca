package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// StartDetached starts cmd in its own session with stdout and stderr
// appended to logPath, then releases it so it outlives this process. The
// caller gets the PID back but no liveness guarantee beyond a successful
// start.
func StartDetached(cmd *exec.Cmd, logPath string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create log directory: %w", err)
	}

	logf, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}

	cmd.Stdout = logf
	cmd.Stderr = logf
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		logf.Close()
		return 0, fmt.Errorf("failed to start process: %w", err)
	}

	pid := cmd.Process.Pid

	// Close log file in parent (child has its own descriptor)
	logf.Close()

	if err := cmd.Process.Release(); err != nil {
		return pid, err
	}

	return pid, nil
}
