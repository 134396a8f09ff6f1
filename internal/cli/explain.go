package cli

import (
	"fmt"

	"github.com/aretw0/vignes/internal/docs"
	"github.com/aretw0/vignes/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newExplainCmd(_ *GlobalOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Describe the diffusion model",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				_, err := fmt.Fprint(out, docs.Explanation)
				return err
			}

			render, err := tui.NewRenderer("", width)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			text, err := render(docs.Explanation)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, text)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Word wrap width")
	return cmd
}
