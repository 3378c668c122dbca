package cli

import (
	"github.com/danieljhkim/hms-sandbox/internal/cli/env"
	"github.com/danieljhkim/hms-sandbox/internal/cli/setting"
	"github.com/danieljhkim/hms-sandbox/internal/cli/wrappers"
	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/danieljhkim/hms-sandbox/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Global config instance, resolved once per invocation
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hms-sandbox",
	Short: "Manage a local, ephemeral Hive metastore sandbox",
	Long: `hms-sandbox: manage a local, ephemeral Hive metastore sandbox.

Provisions Hadoop and Hive under a private install root, runs the Hive
metastore on an embedded Derby database, and optionally wires a local Spark
installation to it through the Iceberg runtime catalog.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(NewUpCmd(getConfig))
	rootCmd.AddCommand(NewDownCmd())
	rootCmd.AddCommand(NewStatusCmd(getConfig))
	rootCmd.AddCommand(NewLogsCmd(getConfig))
	rootCmd.AddCommand(NewDoctorCmd())
	rootCmd.AddCommand(env.NewEnvCmd(getConfig))
	rootCmd.AddCommand(setting.NewSettingCmd(getConfig))

	// Add wrapper commands
	rootCmd.AddCommand(wrappers.NewBeelineCmd(getConfig))
	rootCmd.AddCommand(wrappers.NewSparkSQLCmd(getConfig))
}

// getConfig resolves the effective configuration once and caches it.
// It is passed to subcommands as a getter function; a resolution failure
// (an unreadable settings.yaml) is fatal for every command.
func getConfig() *config.Config {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			util.Die("%v", err)
		}
		cfg = loaded
	}
	return cfg
}
