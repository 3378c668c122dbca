package setting

import (
	"fmt"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configurable user settings",
		Long: `List all configurable user settings and their persisted values.

An empty value means nothing is persisted and the environment or the built-in
default applies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sm := config.NewSettingsManager(configGetter().Paths)
			settings, err := sm.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "install-root=%s\n", settings.InstallRoot)
			fmt.Fprintf(out, "hive-version=%s\n", settings.HiveVersion)
			fmt.Fprintf(out, "hadoop-version=%s\n", settings.HadoopVersion)
			fmt.Fprintf(out, "spark-version=%s\n", settings.SparkVersion)
			fmt.Fprintf(out, "iceberg-version=%s\n", settings.IcebergVersion)
			return nil
		},
	}

	return cmd
}
