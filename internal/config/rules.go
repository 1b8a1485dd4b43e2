package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultYearLabel is shown when a rule document carries no year labels
const DefaultYearLabel = "-"

// RuleLoadError reports a rule document that is missing, unreadable or malformed.
// Loading is all-or-nothing: when this error is returned no RuleSet is.
type RuleLoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *RuleLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rule document %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("rule document %s: %s", e.Source, e.Reason)
}

func (e *RuleLoadError) Unwrap() error {
	return e.Err
}

// wholeAmount only accepts integer scalars, so 97000.5 is rejected instead of truncated.
type wholeAmount int64

func (a *wholeAmount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: %q is not a whole currency amount", node.Line, node.Value)
	}
	var v int64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*a = wholeAmount(v)
	return nil
}

// ruleDocument mirrors the on-disk layout. Pointer fields distinguish an absent
// key from an explicit zero.
type ruleDocument struct {
	Exemption  *exemptionDocument `yaml:"exemption"`
	Deduction  *deductionDocument `yaml:"deduction"`
	Special    *specialDocument   `yaml:"special"`
	Brackets   []bracketDocument  `yaml:"brackets"`
	IncomeYear *string            `yaml:"income_year"`
	Year       *string            `yaml:"year"`
}

type exemptionDocument struct {
	PerPerson *wholeAmount `yaml:"per_person"`
	Elder70   *wholeAmount `yaml:"elder70"`
}

type deductionDocument struct {
	StandardSingle     *wholeAmount     `yaml:"standard_single"`
	StandardCouple     *wholeAmount     `yaml:"standard_couple"`
	DonationLimitRate  *decimal.Decimal `yaml:"donation_limit_rate"`
	MortgageInterest   *wholeAmount     `yaml:"mortgage_interest"`
	InsurancePerPerson *wholeAmount     `yaml:"insurance_per_person"`
}

type specialDocument struct {
	Salary              *wholeAmount `yaml:"salary"`
	SavingsInvestment   *wholeAmount `yaml:"savings_investment"`
	PreschoolFirst      *wholeAmount `yaml:"preschool_first"`
	PreschoolSecondPlus *wholeAmount `yaml:"preschool_second_plus"`
	Disability          *wholeAmount `yaml:"disability"`
	LongTermCare        *wholeAmount `yaml:"long_term_care"`
	Rent                *wholeAmount `yaml:"rent"`
}

type bracketDocument struct {
	UpTo *wholeAmount     `yaml:"up_to"`
	Rate *decimal.Decimal `yaml:"rate"`
	Diff *wholeAmount     `yaml:"diff"`
}

// LoadRules reads a rule document from a YAML or JSON file and validates it
func LoadRules(path string) (*domain.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &RuleLoadError{Source: path, Reason: "failed to read file", Err: err}
	}
	return ParseRules(data, path)
}

// ParseRules decodes and validates a rule document. Unknown keys are rejected.
func ParseRules(data []byte, source string) (*domain.RuleSet, error) {
	var doc ruleDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &RuleLoadError{Source: source, Reason: "document is empty"}
		}
		return nil, &RuleLoadError{Source: source, Reason: "failed to parse document", Err: err}
	}
	if err := expectSingleDocument(dec); err != nil {
		return nil, &RuleLoadError{Source: source, Reason: "failed to parse document", Err: err}
	}

	rules, err := doc.build()
	if err != nil {
		return nil, &RuleLoadError{Source: source, Reason: "validation failed", Err: err}
	}
	return rules, nil
}

// expectSingleDocument drains the decoder and fails on any further document with content.
// A bare trailing "---" is allowed.
func expectSingleDocument(dec *yaml.Decoder) error {
	for {
		var extra yaml.Node
		err := dec.Decode(&extra)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !emptyDocument(&extra) {
			return fmt.Errorf("rule file must hold a single document, found another at line %d", extra.Line)
		}
	}
}

func emptyDocument(n *yaml.Node) bool {
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode || c.Value != "" || c.ShortTag() != "!!null" {
			return false
		}
	}
	return true
}

// fieldReader collects every problem found while converting a document so a
// single load reports all of them.
type fieldReader struct {
	errs []error
}

func (r *fieldReader) fail(format string, args ...any) {
	r.errs = append(r.errs, fmt.Errorf(format, args...))
}

func (r *fieldReader) amount(key string, v *wholeAmount) int64 {
	if v == nil {
		r.fail("%s is required", key)
		return 0
	}
	if *v < 0 {
		r.fail("%s cannot be negative", key)
	}
	return int64(*v)
}

func (r *fieldReader) optionalAmount(key string, v *wholeAmount) int64 {
	if v == nil {
		return 0
	}
	return r.amount(key, v)
}

func (r *fieldReader) fraction(key string, v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		r.fail("%s is required", key)
		return decimal.Zero
	}
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		r.fail("%s must be between 0 and 1, got %s", key, v.String())
	}
	return *v
}

func (r *fieldReader) label(v *string) string {
	if v == nil || *v == "" {
		return DefaultYearLabel
	}
	return *v
}

func (doc *ruleDocument) build() (*domain.RuleSet, error) {
	r := &fieldReader{}
	rules := &domain.RuleSet{
		IncomeYear: r.label(doc.IncomeYear),
		FilingYear: r.label(doc.Year),
	}

	if doc.Exemption == nil {
		r.fail("exemption is required")
	} else {
		rules.Exemption = domain.ExemptionRules{
			PerPerson: r.amount("exemption.per_person", doc.Exemption.PerPerson),
			Elder70:   r.amount("exemption.elder70", doc.Exemption.Elder70),
		}
		if rules.Exemption.Elder70 < rules.Exemption.PerPerson {
			r.fail("exemption.elder70 (%d) cannot be less than exemption.per_person (%d)",
				rules.Exemption.Elder70, rules.Exemption.PerPerson)
		}
	}

	if doc.Deduction == nil {
		r.fail("deduction is required")
	} else {
		d := doc.Deduction
		rules.Deduction = domain.DeductionRules{
			StandardSingle:     r.amount("deduction.standard_single", d.StandardSingle),
			StandardCouple:     r.amount("deduction.standard_couple", d.StandardCouple),
			DonationLimitRate:  r.fraction("deduction.donation_limit_rate", d.DonationLimitRate),
			MortgageInterest:   r.amount("deduction.mortgage_interest", d.MortgageInterest),
			InsurancePerPerson: r.optionalAmount("deduction.insurance_per_person", d.InsurancePerPerson),
		}
	}

	if doc.Special == nil {
		r.fail("special is required")
	} else {
		s := doc.Special
		rules.Special = domain.SpecialRules{
			Salary:              r.amount("special.salary", s.Salary),
			SavingsInvestment:   r.amount("special.savings_investment", s.SavingsInvestment),
			PreschoolFirst:      r.amount("special.preschool_first", s.PreschoolFirst),
			PreschoolSecondPlus: r.amount("special.preschool_second_plus", s.PreschoolSecondPlus),
			Disability:          r.amount("special.disability", s.Disability),
			LongTermCare:        r.amount("special.long_term_care", s.LongTermCare),
			Rent:                r.amount("special.rent", s.Rent),
		}
	}

	rules.Brackets = r.brackets(doc.Brackets)

	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	return rules, nil
}

// brackets converts the schedule and checks its ordering: up_to strictly
// ascending, exactly one no-upper-bound sentinel, and that sentinel last.
func (r *fieldReader) brackets(docs []bracketDocument) []domain.TaxBracket {
	if len(docs) == 0 {
		r.fail("brackets must contain at least one entry")
		return nil
	}

	brackets := make([]domain.TaxBracket, 0, len(docs))
	prev := int64(-1)
	for i, b := range docs {
		key := fmt.Sprintf("brackets[%d]", i)
		if b.UpTo == nil {
			r.fail("%s.up_to is required", key)
			continue
		}
		bracket := domain.TaxBracket{
			UpTo: int64(*b.UpTo),
			Rate: r.fraction(key+".rate", b.Rate),
			Diff: r.amount(key+".diff", b.Diff),
		}

		switch {
		case bracket.Unbounded():
			if i != len(docs)-1 {
				r.fail("%s: the no-upper-bound bracket must be last", key)
			}
		case bracket.UpTo < 0:
			r.fail("%s.up_to must be non-negative or %d for no upper bound", key, domain.NoUpperBound)
		case bracket.UpTo <= prev:
			r.fail("%s.up_to (%d) must be greater than the previous bracket (%d)", key, bracket.UpTo, prev)
		default:
			prev = bracket.UpTo
		}
		brackets = append(brackets, bracket)
	}

	if last := docs[len(docs)-1]; last.UpTo != nil && int64(*last.UpTo) != domain.NoUpperBound {
		r.fail("the last bracket must have up_to %d (no upper bound)", domain.NoUpperBound)
	}
	return brackets
}
