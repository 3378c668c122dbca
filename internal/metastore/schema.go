package metastore

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/hms-sandbox/internal/util"
)

// InitSchema (re)creates the embedded Derby schema via the Hive
// distribution's schematool. Only called against a fresh database; running
// it against an initialized one fails, which is surfaced as-is.
func (s *Supervisor) InitSchema() error {
	util.Log("Initializing metastore schema...")

	schematool := filepath.Join(s.env.HiveHome, "bin", "schematool")

	cmd := exec.Command(schematool, "-dbType", "derby", "-initSchema")
	cmd.Dir = s.paths.StateDir()
	cmd.Env = s.env.MergeWithCurrent()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		output := stdout.String() + stderr.String()
		return fmt.Errorf("failed to initialize metastore schema: %v\nOutput: %s", err, strings.TrimSpace(output))
	}

	util.Log("Metastore schema initialized")
	return nil
}
