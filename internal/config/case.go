package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rgehrsitz/twtax/internal/domain"
	"gopkg.in/yaml.v3"
)

// CaseParser handles parsing of household case files
type CaseParser struct{}

// NewCaseParser creates a new case parser
func NewCaseParser() *CaseParser {
	return &CaseParser{}
}

// LoadCase loads a case file with the default parser
func LoadCase(path string) (*domain.Case, error) {
	return NewCaseParser().LoadFromFile(path)
}

// LoadFromFile loads a household case from a YAML or JSON file
func (cp *CaseParser) LoadFromFile(path string) (*domain.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", path, err)
	}

	c, err := cp.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("case file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a case document. Absent figures stay zero and an absent filing
// status means single; range checks are left to the calculation engine.
func (cp *CaseParser) Parse(data []byte) (*domain.Case, error) {
	var c domain.Case
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse case: %w", err)
	}

	if c.Input.FilingStatus == "" {
		c.Input.FilingStatus = domain.FilingSingle
	}
	return &c, nil
}
