package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal theme. Two palettes matching the web client's light/dark setting;
// the chosen one is persisted under the theme storage key.

// Theme names
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Styles is the set of lipgloss styles the printers use
type Styles struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style
	Muted lipgloss.Style
	Gold  lipgloss.Style
}

// StylesFor returns the style set for a theme name; unknown names fall back
// to the dark palette.
func StylesFor(theme string) Styles {
	if theme == ThemeLight {
		return Styles{
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("55")),
			Key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Good:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
			Warn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")),
			Bad:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
			Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Gold:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("136")),
		}
	}
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Key:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Good:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Warn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Bad:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Gold:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
	}
}

// LabelValue renders a "Key: value" line
func (s Styles) LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", s.Key.Render(label+":"), value)
}
