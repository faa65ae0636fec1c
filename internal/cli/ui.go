package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - explicit sizes
	colorWhite = lipgloss.Color("255") // Bright white - file names
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleInput    = lipgloss.NewStyle().Foreground(colorWhite)
	styleCanvas   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleExplicit = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
)

const iconArrow = "→"

// writeText prints one aligned line per result:
//
//	icon.svg → 512x512 (viewBox)
func writeText(w io.Writer, results []result) error {
	width := 0
	for _, r := range results {
		width = max(width, lipgloss.Width(r.Input))
	}
	name := styleInput.Width(width)

	for _, r := range results {
		source := styleDim.Render("(" + r.Source + ")")
		if r.Source == "explicit" {
			source = styleExplicit.Render("(" + r.Source + ")")
		}
		line := fmt.Sprintf("%s %s %s %s",
			name.Render(r.Input),
			styleDim.Render(iconArrow),
			styleCanvas.Render(fmt.Sprintf("%dx%d", r.Width, r.Height)),
			source)
		if b := r.Content; b != nil {
			line += styleDim.Render(fmt.Sprintf(" content [%g %g %g %g]", b.MinX, b.MinY, b.MaxX, b.MaxY))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
