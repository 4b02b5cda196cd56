// Package theme defines the colour themes used to paint relchart bars.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour roles of a chart line.
type Theme struct {
	Name      string
	Bar       lipgloss.Color // Primary bars on even rows
	BarAlt    lipgloss.Color // Primary bars on odd rows
	Better    lipgloss.Color // Comparison bar when comparison <= value
	Worse     lipgloss.Color // Comparison bar when comparison > value
	Value     lipgloss.Color // Numeric column
	TextMuted lipgloss.Color // Labels
}

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:      "flexoki-dark",
	Bar:       lipgloss.Color("#FFFCF0"),
	BarAlt:    lipgloss.Color("#B7B5AC"),
	Better:    lipgloss.Color("#A3B859"),
	Worse:     lipgloss.Color("#D14D41"),
	Value:     lipgloss.Color("#3AA99F"),
	TextMuted: lipgloss.Color("#878580"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:      "catppuccin-mocha",
	Bar:       lipgloss.Color("#CDD6F4"),
	BarAlt:    lipgloss.Color("#A6ADC8"),
	Better:    lipgloss.Color("#A6E3A1"),
	Worse:     lipgloss.Color("#F38BA8"),
	Value:     lipgloss.Color("#89B4FA"),
	TextMuted: lipgloss.Color("#7F849C"),
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:      "tokyo-night",
	Bar:       lipgloss.Color("#C0CAF5"),
	BarAlt:    lipgloss.Color("#A9B1D6"),
	Better:    lipgloss.Color("#9ECE6A"),
	Worse:     lipgloss.Color("#F7768E"),
	Value:     lipgloss.Color("#7AA2F7"),
	TextMuted: lipgloss.Color("#565F89"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:      "terminal",
	Bar:       lipgloss.Color("15"),
	BarAlt:    lipgloss.Color("7"),
	Better:    lipgloss.Color("10"),
	Worse:     lipgloss.Color("9"),
	Value:     lipgloss.Color("6"),
	TextMuted: lipgloss.Color("8"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// Names lists the available theme names.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
