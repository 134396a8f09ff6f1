package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/vignes/internal/presentation/tui"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type estimateOptions struct {
	Xa        float64
	T         float64
	JSON      bool
	Breakdown bool
}

func newEstimateCmd(global *GlobalOptions) *cobra.Command {
	opts := estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the diffusivity for one composition and temperature",
		Example: `  vignes estimate --xa 0.5 --t 298.15
  vignes estimate --xa 0.25 --t 313.13 --breakdown
  vignes estimate --xa 0.5 --t 298.15 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(*global)
			if err != nil {
				return err
			}

			res, b, err := app.Estimator.Explain(cmd.Context(), domain.Query{Xa: opts.Xa, T: opts.T})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.JSON || !isTerminal(out) {
				if !res.Finite() || (opts.Breakdown && !b.Finite()) {
					return fmt.Errorf("%s%w (ln D = %v, D = %v)", domain.MsgComputePrefix, domain.ErrNonFinite, res.LnD, res.D)
				}
				return writeJSON(out, res, b, opts.Breakdown)
			}

			var breakdown *domain.Breakdown
			if opts.Breakdown {
				breakdown = &b
			}
			return tui.PrintResult(out, termenv.EnvColorProfile(), res, breakdown)
		},
	}

	cmd.Flags().Float64Var(&opts.Xa, "xa", 0, "Mole fraction of component A (0 < Xa < 1)")
	cmd.Flags().Float64Var(&opts.T, "t", 0, "Absolute temperature in Kelvin (T > 0)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&opts.Breakdown, "breakdown", false, "Include the intermediate quantities of the model")
	_ = cmd.MarkFlagRequired("xa")
	_ = cmd.MarkFlagRequired("t")
	return cmd
}

func writeJSON(w io.Writer, res domain.Result, b domain.Breakdown, withBreakdown bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if withBreakdown {
		return enc.Encode(struct {
			Result    domain.Result    `json:"result"`
			Breakdown domain.Breakdown `json:"breakdown"`
		}{res, b})
	}
	return enc.Encode(res)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
