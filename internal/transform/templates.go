package transform

import (
	"sort"
	"strings"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common what-if scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "max_donation",
		Description: "Donate up to the deductible share of total income",
		Transforms:  []ScenarioTransform{&RaiseToLimit{Field: FieldDonation}},
	})

	registry.Register(Template{
		Name:        "max_insurance",
		Description: "Raise insurance premiums to the per-person cap for the household",
		Transforms:  []ScenarioTransform{&RaiseToLimit{Field: FieldInsurance}},
	})

	registry.Register(Template{
		Name:        "max_mortgage",
		Description: "Raise mortgage interest to the itemized cap",
		Transforms:  []ScenarioTransform{&RaiseToLimit{Field: FieldMortgage}},
	})

	registry.Register(Template{
		Name:        "max_rent",
		Description: "Raise the rent special deduction to its cap",
		Transforms:  []ScenarioTransform{&RaiseToLimit{Field: FieldRent}},
	})

	registry.Register(Template{
		Name:        "max_all",
		Description: "Raise donation, insurance and mortgage interest to their limits",
		Transforms: []ScenarioTransform{
			&RaiseToLimit{Field: FieldDonation},
			&RaiseToLimit{Field: FieldInsurance},
			&RaiseToLimit{Field: FieldMortgage},
		},
	})

	registry.Register(Template{
		Name:        "no_itemized",
		Description: "Drop all itemized expenses and take the standard deduction",
		Transforms:  []ScenarioTransform{ClearItemized{}},
	})

	registry.Register(Template{
		Name:        "clamp",
		Description: "Hold each simulated amount to its deductible limit",
		Transforms:  []ScenarioTransform{ClampToLimits{}},
	})

	return registry
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates, in name order
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		sb.WriteString("  " + name + "\n")
		sb.WriteString("    " + registry.templates[name].Description + "\n")
	}
	return sb.String()
}
