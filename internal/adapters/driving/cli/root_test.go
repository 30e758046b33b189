package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pwforge/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/pwforge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/services"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// mockPasswordService records every request.
type mockPasswordService struct {
	configs []domain.GenerationConfig
	checks  []driven.Checker
	result  *domain.Result
	err     error
}

func (m *mockPasswordService) GeneratePassword(
	cfg domain.GenerationConfig, check driven.Checker,
) (domain.Result, error) {
	m.configs = append(m.configs, cfg)
	m.checks = append(m.checks, check)
	if m.err != nil {
		return domain.Result{}, m.err
	}
	if m.result != nil {
		return *m.result, nil
	}
	return domain.Result{Value: "Gen-Pass-" + string(rune('A'+len(m.configs)-1)), Attempts: 1, CriteriaMet: true}, nil
}

// mockPassphraseService records every request.
type mockPassphraseService struct {
	configs []domain.PassphraseConfig
	err     error
}

func (m *mockPassphraseService) GeneratePassphrase(
	cfg domain.PassphraseConfig, _ driven.Checker,
) (domain.Result, error) {
	m.configs = append(m.configs, cfg)
	if m.err != nil {
		return domain.Result{}, m.err
	}
	return domain.Result{Value: "apple-banana-cherry", Attempts: 1, CriteriaMet: true}, nil
}

func (m *mockPassphraseService) WordCount() int { return 3 }

// mockReportService records every request.
type mockReportService struct {
	passwords []string
	opts      []domain.ReportOptions
	report    *domain.Report
}

func (m *mockReportService) Report(_ context.Context, password string, opts domain.ReportOptions) domain.Report {
	m.passwords = append(m.passwords, password)
	m.opts = append(m.opts, opts)
	if m.report != nil {
		return *m.report
	}
	return domain.Report{
		Strength: domain.Strength{Entropy: 85.2, CrackTime: "1.23 years"},
		Breach:   domain.BreachResult{Status: domain.BreachClear},
	}
}

func (m *mockReportService) last() domain.ReportOptions {
	return m.opts[len(m.opts)-1]
}

// fixedRandom always returns the same index.
type fixedRandom struct {
	n int
}

func (r fixedRandom) Intn(n int) (int, error) {
	return r.n % n, nil
}

// testServices exposes the mocks behind the installed services.
type testServices struct {
	password   *mockPasswordService
	passphrase *mockPassphraseService
	report     *mockReportService
	store      *memory.ConfigStore
	clip       *clipboard.Memory
	validated  []domain.CheckSettings
}

func newTestServices() (*testServices, *Services) {
	ts := &testServices{
		password:   &mockPasswordService{},
		passphrase: &mockPassphraseService{},
		report:     &mockReportService{},
		store:      memory.NewConfigStore(),
		clip:       &clipboard.Memory{},
	}
	return ts, &Services{
		Password:   ts.password,
		Passphrase: ts.passphrase,
		Strength:   services.NewStrengthEstimator(),
		Report:     ts.report,
		Settings:   services.NewSettingsService(ts.store),
		Validators: func(checks domain.CheckSettings) (driven.Checker, error) {
			ts.validated = append(ts.validated, checks)
			return nil, nil
		},
		Random:    fixedRandom{n: 5},
		Clipboard: ts.clip,
	}
}

// setupTestServices installs mock services and returns a cleanup function.
func setupTestServices() (*testServices, func()) {
	ts, svc := newTestServices()
	SetServices(svc)
	return ts, func() {
		SetServices(nil)
	}
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command and returns stdout and stderr.
func executeCommand(args ...string) (string, string, error) {
	resetFlags(rootCmd)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		logger.SetVerbose(false)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "pwforge", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "passphrase", "check", "settings", "tui", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestBootstrap_ReceivesOptionsAndCleansUp(t *testing.T) {
	_, svc := newTestServices()
	var got Options
	cleaned := false
	SetBootstrap(func(opts Options) (*Services, func(), error) {
		got = opts
		return svc, func() { cleaned = true }, nil
	})
	defer SetServices(nil)

	_, _, err := executeCommand("--config-dir", "/tmp/pwforge-test", "--verbose", "settings", "keys")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/pwforge-test", got.ConfigDir)
	assert.True(t, got.Verbose)
	assert.True(t, cleaned)
}

func TestBootstrap_Error(t *testing.T) {
	SetBootstrap(func(Options) (*Services, func(), error) {
		return nil, nil, errors.New("disk on fire")
	})
	defer SetServices(nil)

	_, _, err := executeCommand("generate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestCommands_NotConfigured(t *testing.T) {
	SetServices(nil)

	for _, args := range [][]string{
		{"generate"},
		{"passphrase"},
		{"check", "secret"},
		{"settings", "show"},
	} {
		_, _, err := executeCommand(args...)
		assert.ErrorIs(t, err, ErrNotConfigured, "args %v", args)
	}
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestLoadSettings_FallsBackToDefaults(t *testing.T) {
	SetServices(nil)
	assert.Equal(t, domain.DefaultAppSettings(), loadSettings())

	ts, cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, ts.store.Set("generator.min_length", 30))
	require.NoError(t, ts.store.Set("generator.max_length", 40))

	assert.Equal(t, 30, loadSettings().Generator.MinLength)
}
