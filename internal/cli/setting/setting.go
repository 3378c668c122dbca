package setting

import (
	"github.com/danieljhkim/hms-sandbox/internal/config"
	"github.com/spf13/cobra"
)

// ConfigGetter is a function that returns the resolved configuration.
type ConfigGetter func() *config.Config

// NewSettingCmd creates the setting command with all subcommands.
func NewSettingCmd(configGetter ConfigGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Manage persisted user settings",
		Long: `Manage persisted user settings for hms-sandbox.

Settings live in settings.yaml under the sandbox home and sit below
environment variables in the version resolution order.`,
	}

	cmd.AddCommand(newListCmd(configGetter))
	cmd.AddCommand(newSetCmd(configGetter))

	return cmd
}
