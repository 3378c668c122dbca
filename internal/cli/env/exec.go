package env

import (
	envpkg "github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/spf13/cobra"
)

func newExecCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- <command> [args...]",
		Short: "Run a command with the sandbox environment",
		Long: `Execute a command with the computed environment variables set.

Note: Use '--' to separate env exec flags from the command being executed.

Examples:
  hms-sandbox env exec -- hive --version
  hms-sandbox env exec -- schematool -dbType derby -info`,
		DisableFlagParsing: true, // Don't parse flags after 'exec'
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := envpkg.Compute(configGetter())

			// Skip the first arg if it's "--"
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}

			return envpkg.Exec(environment, args)
		},
	}

	return cmd
}
