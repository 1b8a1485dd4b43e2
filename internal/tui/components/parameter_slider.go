package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/twtax/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable money amount with a visual slider
type ParameterSlider struct {
	Label       string
	Value       int64
	Min         int64
	Max         int64
	Step        int64
	Width       int // Total width of slider bar
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a slider over [0, limit].
func NewParameterSlider(label string, value, limit int64) *ParameterSlider {
	p := &ParameterSlider{
		Label: label,
		Max:   limit,
		Step:  DefaultStep(limit),
		Width: 30,
	}
	p.SetValue(value)
	return p
}

// DefaultStep is a twentieth of the limit rounded down to a thousand, and never
// less than a thousand.
func DefaultStep(limit int64) int64 {
	step := (limit / 20 / 1000) * 1000
	if step < 1000 {
		return 1000
	}
	return step
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Disabled reports whether the slider has no range to move in
func (p *ParameterSlider) Disabled() bool {
	return p.Max <= p.Min
}

// Increment increases the value by step, stopping at the max
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement decreases the value by step, stopping at the min
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue sets the value directly, clamping to min/max. A disabled slider
// keeps whatever value it was given.
func (p *ParameterSlider) SetValue(value int64) {
	if p.Disabled() {
		p.Value = value
		return
	}
	p.Value = max(p.Min, min(p.Max, value))
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Disabled() {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

// Render returns the styled parameter slider
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("\n")

	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(valueStyle.Render(tuistyles.FormatMoney(p.Value)))
	content.WriteString("\n")

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	if p.Disabled() {
		content.WriteString(rangeStyle.Render("not adjustable under the current rules"))
		return content.String()
	}

	content.WriteString(p.renderSliderBar())
	content.WriteString("\n")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s  ─  %s",
		tuistyles.FormatMoney(p.Min), tuistyles.FormatMoney(p.Max))))

	if p.Description != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

// renderSliderBar creates the visual slider bar
func (p *ParameterSlider) renderSliderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	filled = max(0, min(p.Width, filled))
	empty := p.Width - filled

	trackStyle := tuistyles.SliderTrackStyle
	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")

	return bar.String()
}

// RenderCompact returns a compact single-line version
func (p *ParameterSlider) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Render(p.Label + ":")
	value := valueStyle.Render(tuistyles.FormatMoney(p.Value))
	return fmt.Sprintf("%s %s %s", label, value, p.renderMiniSliderBar(10))
}

// renderMiniSliderBar creates a compact slider bar
func (p *ParameterSlider) renderMiniSliderBar(width int) string {
	filled := int(math.Round(float64(width) * p.Percentage()))

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
