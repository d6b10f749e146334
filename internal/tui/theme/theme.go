// Package theme holds the color palettes for the finza TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette.
type Theme struct {
	Name string

	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Green        lipgloss.Color
	Yellow       lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
	Cyan         lipgloss.Color
}

var flexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#282726"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#4FC0B5"),
	Green:        lipgloss.Color("#879A39"),
	Yellow:       lipgloss.Color("#D0A215"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Cyan:         lipgloss.Color("#3AA99F"),
}

var catppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#45475A"),
	TextDim:      lipgloss.Color("#585B70"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4BEFE"),
	Green:        lipgloss.Color("#A6E3A1"),
	Yellow:       lipgloss.Color("#F9E2AF"),
	Orange:       lipgloss.Color("#FAB387"),
	Red:          lipgloss.Color("#F38BA8"),
	Cyan:         lipgloss.Color("#94E2D5"),
}

// All lists the available themes.
var All = []Theme{flexokiDark, catppuccinMocha}

// Active is the theme used by all rendering. Defaults to Flexoki Dark.
var Active = flexokiDark

// SetActive switches the active theme by name. Unknown names keep the
// current theme.
func SetActive(name string) {
	for _, t := range All {
		if t.Name == name {
			Active = t
			return
		}
	}
}
