// Package ux renders citymap results for the terminal with lipgloss.
package ux

import "github.com/charmbracelet/lipgloss"

// Palette: road-map greens and asphalt greys.
var (
	ColorPrimary = lipgloss.Color("#3FB950") // titles, highlights
	ColorAccent  = lipgloss.Color("#58A6FF") // city names
	ColorBorder  = lipgloss.Color("#30363D")
	ColorMuted   = lipgloss.Color("#8B949E")

	ColorSuccess = lipgloss.Color("#3FB950")
	ColorWarning = lipgloss.Color("#D29922")
	ColorError   = lipgloss.Color("#F85149")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title     lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	City      lipgloss.Style
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style

	Box lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
	City:      lipgloss.NewStyle().Foreground(ColorAccent),
	Highlight: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}

// Icon is a status glyph.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// Render returns the icon with its status color.
func (i Icon) Render() string {
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// Success formats a one-line confirmation.
func Success(msg string) string { return IconSuccess.Render() + " " + msg }

// Warning formats a one-line warning.
func Warning(msg string) string { return IconWarning.Render() + " " + Styles.Warning.Render(msg) }

// Error formats a one-line error.
func Error(msg string) string { return IconError.Render() + " " + Styles.Error.Render(msg) }
