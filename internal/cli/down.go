package cli

import (
	"github.com/danieljhkim/hms-sandbox/internal/metastore"
	"github.com/danieljhkim/hms-sandbox/internal/service"
	"github.com/danieljhkim/hms-sandbox/internal/util"
	"github.com/spf13/cobra"
)

// NewDownCmd creates the down command
func NewDownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Stop the Hive metastore",
		Long: `Kill whatever is listening on the metastore thrift port.

The sandbox keeps no PID files; the port is the source of truth. Nothing
listening is a normal outcome, not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reportKill(service.KillByPort(metastore.Port))
			return nil
		},
	}

	return cmd
}

// reportKill logs the outcome of a port sweep.
func reportKill(result *service.KillResult) {
	switch {
	case result.LsofMissing:
		util.Warn("lsof not found; cannot inspect port %d for listeners", result.Port)
	case len(result.Terminated) > 0:
		util.Log("Terminated %d listener(s) on port %d (pids %v)", len(result.Terminated), result.Port, result.Terminated)
	default:
		util.Log("Nothing listening on port %d", result.Port)
	}
}
