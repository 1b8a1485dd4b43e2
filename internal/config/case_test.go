package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/twtax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCase_FlatDocument(t *testing.T) {
	path := writeFile(t, "case.yaml", `
name: family
filing_status: 夫妻合併
dependents: 2
elders70: 1
salary: 1200000
withheld: 30000
donation: 5000
`)
	c, err := LoadCase(path)
	require.NoError(t, err)

	assert.Equal(t, "family", c.Name)
	assert.Equal(t, domain.FilingJoint, c.Input.FilingStatus)
	assert.Equal(t, 2, c.Household.Dependents)
	assert.Equal(t, 1, c.Household.Elders70)
	assert.Equal(t, int64(1200000), c.Input.Salary)
	assert.Equal(t, int64(5000), c.Input.Donation)
	assert.Zero(t, c.Input.Insurance)
}

func TestLoadCase_JSON(t *testing.T) {
	path := writeFile(t, "case.json", `{"filing_status": "married", "salary": 800000, "ltc": 1}`)
	c, err := LoadCase(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FilingJoint, c.Input.FilingStatus)
	assert.Equal(t, 1, c.Input.LTC)
}

func TestCaseParser_Defaults(t *testing.T) {
	c, err := NewCaseParser().Parse([]byte("salary: 100\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.FilingSingle, c.Input.FilingStatus)

	empty, err := NewCaseParser().Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.FilingSingle, empty.Input.FilingStatus)
	assert.Zero(t, empty.Input.TotalIncome())
}

func TestCaseParser_LeavesRangeChecksToEngine(t *testing.T) {
	c, err := NewCaseParser().Parse([]byte("dependents: 99\nsalary: -5\n"))
	require.NoError(t, err)
	assert.Equal(t, 99, c.Household.Dependents)
	assert.Equal(t, int64(-5), c.Input.Salary)
}

func TestCaseParser_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":           "salary: 1\nbonus: 2\n",
		"unknown filing status": "filing_status: widowed\n",
		"wrong type":            "salary: plenty\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewCaseParser().Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadCase_MissingFile(t *testing.T) {
	_, err := LoadCase(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCase_Samples(t *testing.T) {
	for _, name := range []string{"case_single.yaml", "case_family.yaml"} {
		c, err := LoadCase(filepath.Join("..", "..", "samples", name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, c.Name)
		assert.Positive(t, c.Input.Salary)
	}
}
