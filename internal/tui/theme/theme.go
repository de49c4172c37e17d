// Package theme defines color themes for the girlmath TUI calculator.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Surface     lipgloss.Color // Panel backgrounds
	Border      lipgloss.Color // Subtle borders
	BorderFocus lipgloss.Color // Accent-colored borders for the focused panel
	TextDim     lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted   lipgloss.Color // Secondary text (labels)
	TextPrimary lipgloss.Color // Primary content text
	Accent      lipgloss.Color // Active states, the justified verdict
	Green       lipgloss.Color // Approved
	Yellow      lipgloss.Color // Questionable
	Red         lipgloss.Color // Denied
	Magenta     lipgloss.Color // Sparkle accents
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme. Warm, paper-inspired dark palette.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	BorderFocus: lipgloss.Color("#3AA99F"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Yellow:      lipgloss.Color("#D0A215"),
	Red:         lipgloss.Color("#D14D41"),
	Magenta:     lipgloss.Color("#CE5D97"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	BorderFocus: lipgloss.Color("#89B4FA"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Green:       lipgloss.Color("#A6E3A1"),
	Yellow:      lipgloss.Color("#F9E2AF"),
	Red:         lipgloss.Color("#F38BA8"),
	Magenta:     lipgloss.Color("#F5C2E7"),
}

// Terminal uses ANSI 16 colors only. Maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("6"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Yellow:      lipgloss.Color("3"),
	Red:         lipgloss.Color("1"),
	Magenta:     lipgloss.Color("5"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
