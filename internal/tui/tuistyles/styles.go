// Package tuistyles holds the lipgloss palette and styles shared by the TUI and
// its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/twtax/internal/domain"
)

// Colors
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#E3B341"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#79C0FF"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#30363D"}
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BorderStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	ParameterLabelStyle = lipgloss.NewStyle().Bold(true)
	ParameterValueStyle = lipgloss.NewStyle()

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	TableCellStyle   = lipgloss.NewStyle()

	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
)

// OutcomeStyle colors a comparison outcome line by its level
func OutcomeStyle(level string) lipgloss.Style {
	switch level {
	case "success":
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	case "warning":
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	}
	return InfoStyle
}

// DeltaStyle colors a signed change: green when the change helps the taxpayer
func DeltaStyle(favourable bool, zero bool) lipgloss.Style {
	switch {
	case zero:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	case favourable:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger)
}

// FormatMoney renders an amount with the currency prefix
func FormatMoney(v int64) string {
	return domain.FormatMoney(v)
}
