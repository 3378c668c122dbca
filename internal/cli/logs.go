package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/danieljhkim/hms-sandbox/internal/util"
	"github.com/spf13/cobra"
)

// NewLogsCmd creates the logs command
func NewLogsCmd(configGetter func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent metastore log output",
		Long:  `Tail the last 120 lines of the metastore service log.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile := configGetter().Paths.MetastoreLog()
			if !util.FileExists(logFile) {
				return fmt.Errorf("no metastore log at %s (have you run 'hms-sandbox up'?)", logFile)
			}

			fmt.Printf("==> %s\n", logFile)
			tail := exec.Command("tail", "-n", "120", logFile)
			tail.Stdout = os.Stdout
			tail.Stderr = os.Stderr
			return tail.Run()
		},
	}

	return cmd
}
