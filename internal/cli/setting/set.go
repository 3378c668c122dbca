package setting

import (
	"fmt"

	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/spf13/cobra"
)

func newSetCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configurable user setting",
		Long: `Set a configurable user setting.

Supported keys: install-root, hive-version, hadoop-version, spark-version,
iceberg-version. Environment variables still win over persisted settings at
resolution time.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			sm := config.NewSettingsManager(configGetter().Paths)
			settings, err := sm.Load()
			if err != nil {
				return err
			}

			switch key {
			case "install-root":
				settings.InstallRoot = value
			case "hive-version":
				settings.HiveVersion = value
			case "hadoop-version":
				settings.HadoopVersion = value
			case "spark-version":
				settings.SparkVersion = value
			case "iceberg-version":
				settings.IcebergVersion = value
			default:
				return fmt.Errorf("unknown setting key %q (supported: install-root, hive-version, hadoop-version, spark-version, iceberg-version)", key)
			}

			if err := sm.Save(settings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", key, sm.Path())
			return nil
		},
	}

	return cmd
}
