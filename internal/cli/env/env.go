package env

import (
	"github.com/danieljhkim/hms-sandbox/internal/config"
	envpkg "github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/spf13/cobra"
)

// ConfigGetter is a function that returns the resolved configuration
type ConfigGetter func() *config.Config

// NewEnvCmd creates the env command with all subcommands
func NewEnvCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print export statements for the sandbox environment",
		Long: `Print environment variable export statements.

Output can be evaluated in your shell to point it at the sandbox stack:

  eval "$(hms-sandbox env)"

This sets JAVA_HOME, HADOOP_HOME, HIVE_HOME, SPARK_HOME (when a Spark version
is pinned), and prepends the distribution bin directories to PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := envpkg.Compute(configGetter())
			environment.PrintShell()
			return nil
		},
	}

	cmd.AddCommand(newExecCmd(configGetter))

	return cmd
}
