// Package cli provides the cobra command tree for pwforge.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// skipBootstrap marks commands that need no services.
const skipBootstrap = "pwforge/skip-bootstrap"

// ValidatorFactory builds the generation-time checker for a set of check
// toggles. A nil checker accepts every candidate.
type ValidatorFactory func(checks domain.CheckSettings) (driven.Checker, error)

// Services are the collaborators the commands call.
type Services struct {
	Password   driving.PasswordService
	Passphrase driving.PassphraseService
	Strength   driving.StrengthService
	Report     driving.ReportService
	Settings   driving.SettingsService
	Validators ValidatorFactory
	Random     driven.RandomSource
	Clipboard  driven.Clipboard
}

// Options are the root flags passed to the bootstrapper.
type Options struct {
	ConfigDir string
	Verbose   bool
	Version   string
}

// Bootstrapper builds services once flags are parsed. The returned cleanup
// runs after the command finishes and may be nil.
type Bootstrapper func(opts Options) (*Services, func(), error)

var (
	bootstrap Bootstrapper
	cleanup   func()

	passwordService   driving.PasswordService
	passphraseService driving.PassphraseService
	strengthService   driving.StrengthService
	reportService     driving.ReportService
	settingsService   driving.SettingsService
	validatorFactory  ValidatorFactory
	randomSource      driven.RandomSource
	clipboardSvc      driven.Clipboard
)

// ErrNotConfigured is returned when a command runs without its services.
var ErrNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "pwforge",
	Short: "Generate strong passwords and passphrases",
	Long: `pwforge generates random passwords and Diceware passphrases from a
cryptographically secure source, rejects weak candidates, estimates their
strength and checks them against public breach data.

Only the first five characters of a password's SHA-1 hash ever leave
your machine.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.pwforge)")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrapper) {
	bootstrap = b
}

// SetServices installs services directly, bypassing any bootstrapper.
func SetServices(s *Services) {
	bootstrap = nil
	applyServices(s)
}

func applyServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	passwordService = s.Password
	passphraseService = s.Passphrase
	strengthService = s.Strength
	reportService = s.Report
	settingsService = s.Settings
	validatorFactory = s.Validators
	randomSource = s.Random
	clipboardSvc = s.Clipboard
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil || cmd.Annotations[skipBootstrap] == "true" {
		return nil
	}

	services, done, err := bootstrap(Options{ConfigDir: configDir, Verbose: verbose, Version: version})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	applyServices(services)
	cleanup = done
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings returns stored settings or the defaults when none are
// configured.
func loadSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil {
		logger.Warn("loading settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *s
}
