package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text      string
	Muted     string
	Accent    string
	Selection string // selected row background
	Header    string
	Danger    string
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Directory lipgloss.Style
	Selected  lipgloss.Style
	Header    lipgloss.Style
	Status    lipgloss.Style
	Notice    lipgloss.Style
	Danger    lipgloss.Style
}

// Styles builds the style set for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Directory: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Selection)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Header)).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}

var themes = []Theme{
	{
		Name:      "Slate",
		Text:      "#c8d3f5",
		Muted:     "#636da6",
		Accent:    "#86e1fc",
		Selection: "#2f334d",
		Header:    "#ffc777",
		Danger:    "#ff757f",
	},
	{
		Name:      "Ivory",
		Text:      "#3b4252",
		Muted:     "#9099ab",
		Accent:    "#0f766e",
		Selection: "#e5e9f0",
		Header:    "#b45309",
		Danger:    "#bf444c",
	},
	{
		Name:      "Contrast",
		Text:      "15",
		Muted:     "8",
		Accent:    "14",
		Selection: "4",
		Header:    "11",
		Danger:    "9",
	},
}

// GetTheme returns the named theme, or the first theme when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given one, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
