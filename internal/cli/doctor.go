package cli

import (
	"os"

	envpkg "github.com/danieljhkim/hms-sandbox/internal/env"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check required and optional host dependencies",
		Long: `Check that the host has what the sandbox needs.

Java is required to run the metastore. lsof powers listener cleanup on the
thrift port and tar helps when inspecting downloaded archives by hand; both
are reported as warnings when missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := envpkg.RunDoctor()
			result.Print()
			os.Exit(result.ExitCode())
			return nil
		},
	}

	return cmd
}
