// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/pwforge/internal/core/domain"
)

// Mode selects what the generator view produces.
type Mode int

const (
	// ModePassword produces random character passwords.
	ModePassword Mode = iota
	// ModePassphrase produces Diceware passphrases.
	ModePassphrase
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModePassword:
		return "password"
	case ModePassphrase:
		return "passphrase"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModePassword {
		return ModePassphrase
	}
	return ModePassword
}

// ReportCompleted carries the full report, including the breach lookup,
// for the value generated in round Seq. Stale rounds are discarded.
type ReportCompleted struct {
	Seq    int
	Report domain.Report
}

// CopyCompleted is sent after a clipboard write.
type CopyCompleted struct {
	Err error
}

// ErrorOccurred is sent when an operation fails.
type ErrorOccurred struct {
	Err error
}
