package driving

import (
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// PasswordService generates random passwords.
type PasswordService interface {
	// GeneratePassword produces a password satisfying cfg. Configuration and
	// resource errors fail before any attempt. A nil check accepts the first
	// candidate. When every attempt is rejected the last candidate is
	// returned with CriteriaMet set to false and a nil error.
	GeneratePassword(cfg domain.GenerationConfig, check driven.Checker) (domain.Result, error)
}

// PassphraseService generates Diceware-style passphrases.
type PassphraseService interface {
	// GeneratePassphrase produces a passphrase from the loaded word source.
	// Retry and degraded-result semantics match PasswordService.
	GeneratePassphrase(cfg domain.PassphraseConfig, check driven.Checker) (domain.Result, error)

	// WordCount returns the size of the loaded word source.
	WordCount() int
}
