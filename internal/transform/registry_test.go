package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec string
		want ScenarioTransform
	}{
		{"set_donation:amount=50000", SetDonation(50000)},
		{"set_insurance:amount=24,000", SetInsurance(24000)},
		{" set_mortgage : amount = 100_000 ", SetMortgageInterest(100000)},
		{"set_rent:amount=0", SetRentSpecial(0)},
		{"raise_to_limit:field=rent", &RaiseToLimit{Field: FieldRent}},
		{"clamp", ClampToLimits{}},
		{"no_itemized:", ClearItemized{}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := registry.ParseTransformSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTransformSpec_Errors(t *testing.T) {
	registry := NewTransformRegistry()

	for _, spec := range []string{
		"",
		":amount=1",
		"unknown:amount=1",
		"set_donation:",
		"set_donation:amount",
		"set_donation:amount=lots",
		"raise_to_limit:field=salary",
		"raise_to_limit:",
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(spec)
			assert.Error(t, err)
		})
	}
}

func TestParseTransformSpec_ThousandsSeparators(t *testing.T) {
	registry := NewTransformRegistry()

	got, err := registry.ParseTransformSpec("set_donation:amount=1,250,000")
	require.NoError(t, err)
	assert.Equal(t, SetDonation(1250000), got)

	factoryParams := map[string]string{}
	registry.Register("capture", func(params map[string]string) (ScenarioTransform, error) {
		factoryParams = params
		return ClampToLimits{}, nil
	})
	_, err = registry.ParseTransformSpec("capture:amount=24,000,field=rent")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"amount": "24,000", "field": "rent"}, factoryParams)

	_, err = registry.ParseTransformSpec("set_donation:24,amount=1")
	assert.ErrorContains(t, err, "invalid parameter format")
}

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()
	assert.Equal(t, []string{
		"clamp", "no_itemized", "raise_to_limit",
		"set_donation", "set_insurance", "set_mortgage", "set_rent",
	}, names)
}
