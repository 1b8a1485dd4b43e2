package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/twtax/internal/advice"
	"github.com/rgehrsitz/twtax/internal/compare"
	"github.com/rgehrsitz/twtax/internal/config"
	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/rgehrsitz/twtax/internal/transform"
	"github.com/rgehrsitz/twtax/internal/tui/components"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	rulesPath string
	casePath  string
	rules     *domain.RuleSet

	// baseline is the declared case with its simulation limits; current is its evaluation
	baseline *transform.Scenario
	current  *domain.TaxResult

	sliders       []*components.ParameterSlider
	fields        []transform.Field
	focusedSlider int

	simulated *domain.TaxResult
	simInput  domain.TaxInput
	outcome   compare.Outcome
	tips      []advice.Tip

	keys keyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates a model that loads the rule document and case file on start
func NewModel(rulesPath, casePath string) Model {
	return Model{
		currentScene: SceneSimulate,
		rulesPath:    rulesPath,
		casePath:     casePath,
		keys:         defaultKeyMap(),
		help:         help.New(),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadCaseCmd(m.rulesPath, m.casePath)
}

// loadCaseCmd returns a command that loads the rule document and the case file
func loadCaseCmd(rulesPath, casePath string) tea.Cmd {
	return func() tea.Msg {
		rules, err := config.LoadRules(rulesPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		c, err := config.NewCaseParser().LoadFromFile(casePath)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CaseLoadedMsg{Case: c, Rules: rules}
	}
}

// setCase evaluates the declared case and builds one slider per simulated field,
// each starting at its declared amount held to the field's limit.
func (m *Model) setCase(c *domain.Case, rules *domain.RuleSet) error {
	baseline, current, err := transform.NewBaseline(c, rules)
	if err != nil {
		return err
	}
	clamped, err := transform.ApplyTransforms(baseline, []transform.ScenarioTransform{transform.ClampToLimits{}})
	if err != nil {
		return err
	}

	m.rules = rules
	m.baseline = baseline
	m.current = current
	m.fields = transform.Fields()
	m.sliders = make([]*components.ParameterSlider, len(m.fields))
	for i, f := range m.fields {
		m.sliders[i] = components.NewParameterSlider(f.Label(), f.Get(clamped.Input), baseline.Limits.For(f)).
			WithDescription(sliderDescription(f))
	}
	m.focusedSlider = 0
	m.sliders[0].SetFocused(true)
	return m.recalculate()
}

func sliderDescription(f transform.Field) string {
	switch f {
	case transform.FieldDonation:
		return "Limit: the deductible share of total income"
	case transform.FieldInsurance:
		return "Limit: the per-person premium cap times insured persons"
	case transform.FieldMortgage:
		return "Limit: the mortgage interest cap; excludes the rent deduction"
	case transform.FieldRent:
		return "Limit: the rent special deduction cap"
	}
	return ""
}

// recalculate evaluates the simulated input built from the slider values and
// refreshes the outcome line and advice.
func (m *Model) recalculate() error {
	chain := []transform.ScenarioTransform{transform.ClampToLimits{}}
	for i, f := range m.fields {
		chain = append(chain, &transform.SetAmount{Field: f, Amount: m.sliders[i].Value})
	}
	sim, err := transform.ApplyTransforms(m.baseline, chain)
	if err != nil {
		return err
	}
	result, err := sim.Evaluate(m.rules)
	if err != nil {
		return err
	}

	m.simInput = sim.Input
	m.simulated = result
	m.outcome = compare.DescribeOutcome(m.current.TaxPayable-result.TaxPayable, result.NetIncome-m.current.NetIncome)
	m.tips = advice.Tips(sim.Input, sim.Input.FilingStatus, result, m.rules)
	return nil
}

// focus moves the slider focus by delta, wrapping around
func (m *Model) focus(delta int) {
	if len(m.sliders) == 0 {
		return
	}
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = (m.focusedSlider + delta + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focusedSlider].SetFocused(true)
}
