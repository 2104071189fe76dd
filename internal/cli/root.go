package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/hello/internal/greeting"
)

// NewRootCommand creates the root command for the hello CLI.
//
// The command takes no input: arguments are accepted and ignored, and flag
// parsing is disabled so nothing (not even --help) changes the transcript.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "hello",
		Short:              "hello - print the welcome transcript",
		Long:               "Prints \"Hello!\" and \"Welcome to, Rust!\" on two lines and exits.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := greeting.Write(cmd.OutOrStdout()); err != nil {
				return WrapExitError(ExitFailure, "write transcript", err)
			}
			return nil
		},
	}

	return cmd
}
