package tui

import "github.com/rgehrsitz/twtax/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	AppStyle          = tuistyles.AppStyle
	TitleStyle        = tuistyles.TitleStyle
	SubtitleStyle     = tuistyles.SubtitleStyle
	BorderStyle       = tuistyles.BorderStyle
	ActiveBorderStyle = tuistyles.ActiveBorderStyle
	TableHeaderStyle  = tuistyles.TableHeaderStyle
	TableCellStyle    = tuistyles.TableCellStyle
	ErrorStyle        = tuistyles.ErrorStyle
	InfoStyle         = tuistyles.InfoStyle
)

// Re-export helper functions
var (
	OutcomeStyle = tuistyles.OutcomeStyle
	DeltaStyle   = tuistyles.DeltaStyle
	FormatMoney  = tuistyles.FormatMoney
)
