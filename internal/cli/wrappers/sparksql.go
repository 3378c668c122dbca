package wrappers

import (
	envpkg "github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/spf13/cobra"
)

// NewSparkSQLCmd creates the spark-sql wrapper command
func NewSparkSQLCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spark-sql [args...]",
		Short: "Run spark-sql against the sandbox catalog",
		Long: `Run spark-sql from the provisioned Spark distribution with the computed
sandbox environment. After 'hms-sandbox up --spark' the Iceberg catalog in
spark-defaults.conf points queries at the sandbox metastore.

Examples:
  hms-sandbox spark-sql -- -e 'SHOW NAMESPACES IN hms'
  hms-sandbox spark-sql -- -e 'CREATE TABLE hms.default.t (id BIGINT) USING iceberg'`,
		DisableFlagParsing: true, // Critical: pass all args through
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configGetter()
			if err := cfg.RequireSpark(); err != nil {
				return err
			}

			environment := envpkg.Compute(cfg)

			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			cmdArgs := append([]string{"spark-sql"}, args...)

			return envpkg.Exec(environment, cmdArgs)
		},
	}

	return cmd
}
