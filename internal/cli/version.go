package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/vignes"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vignes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vignes version %s\n", strings.TrimSpace(vignes.Version))
		},
	}
}
