// Package cli provides terminal styling for relchart output.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/relchart/internal/chart"
	"github.com/theirongolddev/relchart/internal/config"
	"github.com/theirongolddev/relchart/internal/theme"
)

// Painter colours chart lines with lipgloss styles. It implements chart.Painter.
type Painter struct {
	bar    lipgloss.Style
	barAlt lipgloss.Style
	better lipgloss.Style
	worse  lipgloss.Style
	value  lipgloss.Style
	label  lipgloss.Style
}

var _ chart.Painter = (*Painter)(nil)

// NewRenderer returns a lipgloss renderer for w honouring the colour mode.
// ColorAuto leaves profile detection to lipgloss, so pipes get plain text.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewPainter builds the styles for t on renderer r.
func NewPainter(r *lipgloss.Renderer, t theme.Theme) *Painter {
	return &Painter{
		bar:    r.NewStyle().Foreground(t.Bar),
		barAlt: r.NewStyle().Foreground(t.BarAlt),
		better: r.NewStyle().Foreground(t.Better),
		worse:  r.NewStyle().Foreground(t.Worse),
		value:  r.NewStyle().Foreground(t.Value),
		label:  r.NewStyle().Foreground(t.TextMuted),
	}
}

// Primary alternates bar shades so neighbouring rows stay distinguishable.
func (p *Painter) Primary(index int, bar string) string {
	if bar == "" {
		return ""
	}
	if index%2 == 0 {
		return p.bar.Render(bar)
	}
	return p.barAlt.Render(bar)
}

func (p *Painter) Comparison(bar string, worse bool) string {
	if bar == "" {
		return ""
	}
	if worse {
		return p.worse.Render(bar)
	}
	return p.better.Render(bar)
}

func (p *Painter) Value(text string) string {
	return p.value.Render(text)
}

func (p *Painter) Label(text string) string {
	return p.label.Render(text)
}
