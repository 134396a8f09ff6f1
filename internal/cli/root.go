package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the vignes command tree.
func NewRootCmd() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "vignes",
		Short:         "Vignes estimates binary-mixture mutual diffusion coefficients",
		Long:          `Vignes evaluates a local-composition corrected Vignes correlation for the mutual diffusivity of a binary mixture, from the command line, a web form, a JSON API or an MCP tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (default ./vignes.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newEstimateCmd(opts),
		newExplainCmd(opts),
		newConstantsCmd(opts),
		newServeCmd(opts),
		newMCPCmd(opts),
		newVersionCmd(),
	)
	return cmd
}
