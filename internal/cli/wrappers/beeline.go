package wrappers

import (
	envpkg "github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/spf13/cobra"
)

// NewBeelineCmd creates the beeline wrapper command
func NewBeelineCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beeline [args...]",
		Short: "Run beeline from the provisioned Hive distribution",
		Long: `Run beeline with the computed sandbox environment. All arguments are
passed through untouched.

Examples:
  hms-sandbox beeline -- --help
  hms-sandbox beeline -- -u jdbc:hive2://localhost:10000`,
		DisableFlagParsing: true, // Critical: pass all args through
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := envpkg.Compute(configGetter())

			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			cmdArgs := append([]string{"beeline"}, args...)

			// Set TERM=dumb to work around JNA/JLine terminal issues on Apple Silicon
			extraEnv := map[string]string{
				"TERM": "dumb",
			}

			return envpkg.ExecWithEnv(environment, cmdArgs, extraEnv)
		},
	}

	return cmd
}
