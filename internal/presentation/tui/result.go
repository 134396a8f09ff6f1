package tui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/vignes/pkg/domain"
	"github.com/muesli/termenv"
)

// Error thresholds (percent) used to color the relative error.
const (
	goodError = 5.0
	fairError = 20.0
)

// PrintResult writes a human-readable result, and the breakdown when b is not nil.
func PrintResult(w io.Writer, p termenv.Profile, res domain.Result, b *domain.Breakdown) error {
	label := func(s string) termenv.Style { return p.String(s).Foreground(p.Color("#a78bfa")) }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%v\n", label("Xa"), res.Xa)
	fmt.Fprintf(tw, "%s\t%v\n", label("T (K)"), res.T)
	fmt.Fprintf(tw, "%s\t%.6f\n", label("ln D"), res.LnD)
	fmt.Fprintf(tw, "%s\t%s\n", label("D (m²/s)"), p.String(fmt.Sprintf("%.6e", res.D)).Bold())
	fmt.Fprintf(tw, "%s\t%s\n", label("Erreur (%)"), errorStyle(p, res.RelativeErrorPercent))

	if b != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("φA / φB"), b.PhiA)
		fmt.Fprintf(tw, "\t%.6f\n", b.PhiB)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("τAB / τBA"), b.TauAB)
		fmt.Fprintf(tw, "\t%.6f\n", b.TauBA)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("θA / θB"), b.TetaA)
		fmt.Fprintf(tw, "\t%.6f\n", b.TetaB)
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("idéale"), b.Terms.Ideal)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("entropique"), b.Terms.Entropic)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("volume libre"), b.Terms.FreeVolume)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("locale (A)"), b.Terms.LocalARich)
		fmt.Fprintf(tw, "%s\t%.6f\n", label("locale (B)"), b.Terms.LocalBRich)
	}
	return tw.Flush()
}

func errorStyle(p termenv.Profile, pct float64) termenv.Style {
	s := p.String(fmt.Sprintf("%.3f", pct))
	switch {
	case pct <= goodError:
		return s.Foreground(p.Color("#22c55e"))
	case pct <= fairError:
		return s.Foreground(p.Color("#eab308"))
	default:
		return s.Foreground(p.Color("#ef4444"))
	}
}
