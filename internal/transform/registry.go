package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_donation", amountFactory(FieldDonation))
	registry.Register("set_insurance", amountFactory(FieldInsurance))
	registry.Register("set_mortgage", amountFactory(FieldMortgage))
	registry.Register("set_rent", amountFactory(FieldRent))
	registry.Register("raise_to_limit", createRaiseToLimit)
	registry.Register("clamp", func(map[string]string) (ScenarioTransform, error) { return ClampToLimits{}, nil })
	registry.Register("no_itemized", func(map[string]string) (ScenarioTransform, error) { return ClearItemized{}, nil })

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"; transforms without
// parameters may omit the colon.
// Example: "set_donation:amount=50000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	name, paramsStr, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)
	if name == "" {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	params := make(map[string]string)
	if paramsStr != "" {
		// A piece without "=" continues the previous value, so "amount=24,000" stays whole.
		var lastKey string
		for _, paramPair := range strings.Split(paramsStr, ",") {
			key, value, ok := strings.Cut(paramPair, "=")
			if !ok {
				if lastKey == "" {
					return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
				}
				params[lastKey] += "," + strings.TrimSpace(paramPair)
				continue
			}
			lastKey = strings.TrimSpace(key)
			params[lastKey] = strings.TrimSpace(value)
		}
	}

	return r.Create(name, params)
}

// ParseAmount parses a whole currency amount, allowing "," and "_" separators
func ParseAmount(s string) (int64, error) {
	clean := strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}

func amountFactory(field Field) TransformFactory {
	return func(params map[string]string) (ScenarioTransform, error) {
		t := &SetAmount{Field: field}
		amountStr, ok := params["amount"]
		if !ok {
			return nil, fmt.Errorf("%s requires 'amount' parameter", t.Name())
		}
		amount, err := ParseAmount(amountStr)
		if err != nil {
			return nil, err
		}
		t.Amount = amount
		return t, nil
	}
}

func createRaiseToLimit(params map[string]string) (ScenarioTransform, error) {
	fieldStr, ok := params["field"]
	if !ok {
		return nil, fmt.Errorf("raise_to_limit requires 'field' parameter")
	}
	field, err := ParseField(fieldStr)
	if err != nil {
		return nil, err
	}
	return &RaiseToLimit{Field: field}, nil
}
