package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the vignes ASCII art banner to w.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Same indigo to rose gradient as the result highlights.
	lines := []struct {
		text  string
		color string
	}{
		{` __   __ _                       `, "#818cf8"},
		{` \ \ / /(_) __ _  _ __    ___  ___`, "#a78bfa"},
		{`  \ V / | |/ _' || '_ \  / _ \/ __|`, "#c084fc"},
		{`   \_/  |_|\__, ||_| |_| \___||___/`, "#f472b6"},
		{`            |___/                  `, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
