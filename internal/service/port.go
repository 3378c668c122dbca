package service

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// KillResult reports what KillByPort did. An empty Terminated list with
// LsofMissing false means nothing was listening on the port, which callers
// treat as a normal outcome.
type KillResult struct {
	Port        int
	Terminated  []int
	LsofMissing bool
}

// KillByPort forcibly terminates every process listening on the TCP port.
// The listeners being replaced are throwaway sandbox daemons, so no grace
// period is given.
func KillByPort(port int) *KillResult {
	result := &KillResult{Port: port}

	if _, err := exec.LookPath("lsof"); err != nil {
		result.LsofMissing = true
		return result
	}

	pids := findListeners(port)
	for _, pid := range pids {
		killProcess(pid)
	}
	result.Terminated = pids

	return result
}

// Listening returns the PIDs currently listening on the port. Empty when
// nothing listens or when lsof is unavailable.
func Listening(port int) []int {
	if _, err := exec.LookPath("lsof"); err != nil {
		return nil
	}
	return findListeners(port)
}

// findListeners finds PIDs listening on a specific port
func findListeners(port int) []int {
	cmd := exec.Command("lsof", "-nP", fmt.Sprintf("-iTCP:%d", port), "-sTCP:LISTEN")
	output, err := cmd.Output()
	if err != nil {
		// lsof returns non-zero if no matches found, which is fine
		return nil
	}
	return parsePids(string(output))
}

// parsePids extracts the PID column from lsof output, skipping the header line.
func parsePids(output string) []int {
	lines := strings.Split(output, "\n")
	pids := make([]int, 0)

	for i, line := range lines {
		if i == 0 || line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) >= 2 {
			pid, err := strconv.Atoi(fields[1])
			if err == nil {
				pids = append(pids, pid)
			}
		}
	}

	return uniquePids(pids)
}

// killProcess sends SIGKILL to a process
func killProcess(pid int) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}

	return process.Signal(syscall.SIGKILL)
}

// uniquePids returns unique PIDs from a slice
func uniquePids(pids []int) []int {
	seen := make(map[int]bool)
	result := make([]int, 0)

	for _, pid := range pids {
		if !seen[pid] {
			seen[pid] = true
			result = append(result, pid)
		}
	}

	return result
}
