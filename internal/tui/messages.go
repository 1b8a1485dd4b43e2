package tui

import (
	"github.com/rgehrsitz/twtax/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSimulate Scene = iota
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneSimulate:
		return "Simulate"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// CaseLoadedMsg signals the rule document and case file have been loaded
type CaseLoadedMsg struct {
	Case  *domain.Case
	Rules *domain.RuleSet
}
