// Package tui provides an interactive terminal user interface for pwforge.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
)

// Ports aggregates the services required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Password generates random passwords.
	Password driving.PasswordService

	// Passphrase generates Diceware passphrases.
	Passphrase driving.PassphraseService

	// Report evaluates generated values.
	Report driving.ReportService

	// Settings supplies the initial options. Optional.
	Settings driving.SettingsService

	// Clipboard receives copied values. Optional.
	Clipboard driven.Clipboard

	// Validator rejects weak candidates during generation. Optional.
	Validator driven.Checker
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	password driving.PasswordService,
	passphrase driving.PassphraseService,
	report driving.ReportService,
) *Ports {
	return &Ports{
		Password:   password,
		Passphrase: passphrase,
		Report:     report,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Password == nil {
		return ErrMissingPasswordService
	}
	if p.Passphrase == nil {
		return ErrMissingPassphraseService
	}
	if p.Report == nil {
		return ErrMissingReportService
	}
	return nil
}
