package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/twtax/internal/advice"
	"github.com/rgehrsitz/twtax/internal/domain"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return AppStyle.Render(InfoStyle.Render("Loading " + m.casePath + " ..."))
	}
	if m.err != nil {
		return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			ErrorStyle.Render("Error"),
			m.err.Error(),
			"",
			SubtitleStyle.Render("press q to quit"),
		))
	}

	var content string
	switch m.currentScene {
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = m.renderSimulate()
	}

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("TWTAX - Comprehensive Income Tax Simulator")
	sub := SubtitleStyle.Render(fmt.Sprintf("%s / income year %s, filed %s",
		m.currentScene, m.current.IncomeYear, m.current.FilingYear))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub)
}

func (m Model) renderSimulate() string {
	sliders := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		sliders[i] = s.Render()
	}
	left := BorderStyle.Render(strings.Join(sliders, "\n\n"))

	right := lipgloss.JoinVertical(lipgloss.Left,
		ActiveBorderStyle.Render(m.renderComparisonTable()),
		"",
		OutcomeStyle(string(m.outcome.Level)).Render(m.outcome.Message),
	)

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.JoinVertical(lipgloss.Left, top, "", m.renderAdvice())
}

// renderComparisonTable lays the current and simulated figures side by side
func (m Model) renderComparisonTable() string {
	const labelWidth, numWidth = 30, 14

	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-*s %*s %*s %*s",
		labelWidth, "Item", numWidth, "Current", numWidth, "Simulated", numWidth, "Change")))
	sb.WriteString("\n")

	current := m.current.LineItems()
	simulated := m.simulated.LineItems()
	for i, item := range current {
		delta := simulated[i].Amount - item.Amount
		sb.WriteString(TableCellStyle.Render(fmt.Sprintf("%-*s %*s %*s ",
			labelWidth, item.Label,
			numWidth, FormatMoney(item.Amount),
			numWidth, FormatMoney(simulated[i].Amount))))
		sb.WriteString(DeltaStyle(favourable(item.Key, delta), delta == 0).Render(fmt.Sprintf("%*s", numWidth, signed(delta))))
		if i < len(current)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// favourable reports whether a change in the given line item helps the taxpayer
func favourable(key string, delta int64) bool {
	switch key {
	case "net_income", "tax_payable", "final_tax", "total_income":
		return delta < 0
	}
	return delta > 0
}

func signed(v int64) string {
	if v > 0 {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

func (m Model) renderAdvice() string {
	lines := []string{TableHeaderStyle.Render("Advice for the simulated return")}
	for _, tip := range m.tips {
		lines = append(lines, fmt.Sprintf("%s %s", severityMark(tip.Severity), tip.Message))
	}
	return strings.Join(lines, "\n")
}

func severityMark(s advice.Severity) string {
	switch s {
	case advice.SeverityWarning:
		return OutcomeStyle("warning").Render("!")
	case advice.SeveritySuggestion:
		return OutcomeStyle("success").Render("+")
	}
	return InfoStyle.Render("•")
}

func (m Model) renderHelp() string {
	lines := []string{
		TableHeaderStyle.Render("How the simulator works"),
		"",
		"Each slider overrides one declared amount and is bounded by its deductible limit.",
		"Sliders start from the declared amounts held to their limits.",
		"Current figures come from the case file as declared; simulated figures update as you move.",
		"A slider marked not adjustable has no limit under the loaded rules and keeps its declared amount.",
		"",
		fmt.Sprintf("Case: %s", m.casePath),
		fmt.Sprintf("Rules: %s", m.rulesPath),
		fmt.Sprintf("Filing status: %s", m.baseline.Input.FilingStatus),
		fmt.Sprintf("Standard deduction: %s", FormatMoney(m.rules.StandardDeduction(m.baseline.Input.FilingStatus))),
	}
	return strings.Join(lines, "\n")
}

// SimulatedInput returns the input currently under simulation
func (m Model) SimulatedInput() domain.TaxInput {
	return m.simInput
}
