package advice

import (
	"github.com/rgehrsitz/twtax/internal/domain"
)

// Tip is one piece of advice with the rule that produced it
type Tip struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Engine evaluates an ordered rule list
type Engine struct {
	rules    []Rule
	fallback Rule
}

// NewEngine creates an engine over the given rules. With no rules it uses DefaultRules.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules, fallback: FallbackRule{}}
}

// Tips evaluates every rule in order. Each rule contributes at most one tip, and
// the fallback tip is returned alone when nothing matched.
func (e *Engine) Tips(ctx Context) []Tip {
	var tips []Tip
	for _, r := range e.rules {
		if r.Match(ctx) {
			tips = append(tips, Tip{RuleID: r.ID(), Severity: r.Severity(), Message: r.Message(ctx)})
		}
	}
	if len(tips) == 0 {
		tips = append(tips, Tip{RuleID: e.fallback.ID(), Severity: e.fallback.Severity(), Message: e.fallback.Message(ctx)})
	}
	return tips
}

// Tips runs the default rules against one evaluated return
func Tips(input domain.TaxInput, status domain.FilingStatus, result *domain.TaxResult, rules *domain.RuleSet) []Tip {
	return NewEngine().Tips(Context{Input: input, Status: status, Result: result, Rules: rules})
}

// Advise returns the default advice messages for one evaluated return, in rule order
func Advise(input domain.TaxInput, status domain.FilingStatus, result *domain.TaxResult, rules *domain.RuleSet) []string {
	return Messages(Tips(input, status, result, rules))
}

// Messages extracts the message text of each tip
func Messages(tips []Tip) []string {
	out := make([]string, len(tips))
	for i, t := range tips {
		out[i] = t.Message
	}
	return out
}
