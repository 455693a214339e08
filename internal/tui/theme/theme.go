// Package theme defines the color roles for the goalie TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Border      lipgloss.Color // subtle borders
	TextDim     lipgloss.Color // hints, disabled icons
	TextMuted   lipgloss.Color // labels, metadata
	TextPrimary lipgloss.Color // primary content text
	Accent      lipgloss.Color // focus, selected icon, buttons
	Green       lipgloss.Color // success confirmations
	Red         lipgloss.Color // failure alerts
}

// Active is the currently selected theme.
var Active = Hana

// Hana matches the web front-end's brand green on a warm dark base.
var Hana = Theme{
	Name:        "hana",
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#009178"),
	Green:       lipgloss.Color("#5EAE70"),
	Red:         lipgloss.Color("#D14D41"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Red:         lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{Hana, Terminal}

// ByName returns a theme by its name, defaulting to Hana.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Hana
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
