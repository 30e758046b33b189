// Package generator provides the password and passphrase view for the TUI.
package generator

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
)

// Adjustable ranges.
const (
	MinLength    = 8
	MaxLength    = 64
	MinWordCount = 3
	MaxWordCount = 10
)

// Deps are the services the view calls.
type Deps struct {
	Password   driving.PasswordService
	Passphrase driving.PassphraseService
	Report     driving.ReportService
	Clipboard  driven.Clipboard

	// Validator rejects weak candidates during generation. May be nil.
	Validator driven.Checker
}

// Defaults seed the initial options.
type Defaults struct {
	Length    int
	WordCount int
	Delimiter string
	Checks    domain.CheckSettings
}

// View renders one generated value with its strength report and lets the
// user adjust options and regenerate.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	deps      Deps
	ctx       context.Context

	mode       messages.Mode
	password   domain.GenerationConfig
	passphrase domain.PassphraseConfig
	checks     domain.CheckSettings

	seq           int
	result        domain.Result
	report        domain.Report
	reportPending bool
	err           error

	width  int
	height int
}

// NewView creates a new generator view.
func NewView(s *styles.Styles, km *keymap.KeyMap, deps Deps, defaults Defaults) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	password := domain.DefaultGenerationConfig(clamp(defaults.Length, MinLength, MaxLength))
	password.MinLower, password.MinUpper, password.MinDigits, password.MinSymbols = 1, 1, 1, 1

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		deps:      deps,
		ctx:       context.Background(),
		mode:      messages.ModePassword,
		password:  password,
		passphrase: domain.PassphraseConfig{
			WordCount: clamp(defaults.WordCount, MinWordCount, MaxWordCount),
			Delimiter: defaults.Delimiter,
		},
		checks: defaults.Checks,
		width:  80,
		height: 24,
	}
}

// WithContext sets the context for breach lookups.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init generates the first value.
func (v *View) Init() tea.Cmd {
	return v.Generate()
}

// Update handles messages for the generator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ReportCompleted:
		if msg.Seq != v.seq {
			return v, nil
		}
		v.report = msg.Report
		v.reportPending = false
		v.statusbar.Clear()
		return v, nil

	case messages.CopyCompleted:
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Copied to clipboard")
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:gocyclo // flat key dispatch
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	km := v.keymap
	passwordMode := v.mode == messages.ModePassword

	switch {
	case keymap.Matches(k, km.Generate):
		return v, v.Generate()
	case keymap.Matches(k, km.Copy):
		return v, v.copy()
	case keymap.Matches(k, km.ToggleMode):
		v.mode = v.mode.Toggle()
	case keymap.Matches(k, km.Longer):
		v.adjust(1)
	case keymap.Matches(k, km.Shorter):
		v.adjust(-1)
	case keymap.Matches(k, km.ToggleLower):
		if !passwordMode {
			return v, nil
		}
		v.password.UseLower = !v.password.UseLower
	case keymap.Matches(k, km.ToggleUpper):
		if passwordMode {
			v.password.UseUpper = !v.password.UseUpper
		} else {
			v.passphrase.Capitalize = !v.passphrase.Capitalize
		}
	case keymap.Matches(k, km.ToggleDigits):
		if passwordMode {
			v.password.UseDigits = !v.password.UseDigits
		} else {
			v.passphrase.AppendDigit = !v.passphrase.AppendDigit
		}
	case keymap.Matches(k, km.ToggleSymbols):
		if passwordMode {
			v.password.UseSymbols = !v.password.UseSymbols
		} else {
			v.passphrase.AppendSymbol = !v.passphrase.AppendSymbol
		}
	case keymap.Matches(k, km.ToggleAmbiguous):
		if !passwordMode {
			return v, nil
		}
		v.password.ExcludeAmbiguous = !v.password.ExcludeAmbiguous
	case keymap.Matches(k, km.ToggleBreach):
		v.checks.Breach = !v.checks.Breach
	default:
		return v, nil
	}

	// Any option change produces a fresh value.
	return v, v.Generate()
}

// adjust changes the length or word count within its range.
func (v *View) adjust(delta int) {
	if v.mode == messages.ModePassword {
		v.password.Length = clamp(v.password.Length+delta, MinLength, MaxLength)
		return
	}
	v.passphrase.WordCount = clamp(v.passphrase.WordCount+delta, MinWordCount, MaxWordCount)
}

// Generate produces a new value synchronously and returns the command
// that fetches its breach status.
func (v *View) Generate() tea.Cmd {
	v.seq++
	v.reportPending = false

	result, err := v.produce()
	if err != nil {
		v.err = err
		v.result = domain.Result{}
		v.report = domain.Report{}
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return nil
	}

	v.err = nil
	v.result = result
	v.statusbar.Clear()

	if v.deps.Report == nil {
		v.report = domain.Report{Breach: domain.BreachSkipped("report not available")}
		return nil
	}

	opts := v.reportOptions()
	local := opts
	local.BreachCheck = false
	v.report = v.deps.Report.Report(v.ctx, result.Value, local)

	if !opts.BreachCheck {
		return nil
	}

	v.reportPending = true
	v.statusbar.SetState(status.StateChecking)
	seq, value, report, ctx := v.seq, result.Value, v.deps.Report, v.ctx
	return func() tea.Msg {
		return messages.ReportCompleted{Seq: seq, Report: report.Report(ctx, value, opts)}
	}
}

func (v *View) produce() (domain.Result, error) {
	if v.mode == messages.ModePassword {
		if v.deps.Password == nil {
			return domain.Result{}, ErrNoPasswordService
		}
		cfg := v.password
		// Minimums only apply to enabled classes but still count toward length.
		if !cfg.UseLower {
			cfg.MinLower = 0
		}
		if !cfg.UseUpper {
			cfg.MinUpper = 0
		}
		if !cfg.UseDigits {
			cfg.MinDigits = 0
		}
		if !cfg.UseSymbols {
			cfg.MinSymbols = 0
		}
		return v.deps.Password.GeneratePassword(cfg, v.deps.Validator)
	}

	if v.deps.Passphrase == nil {
		return domain.Result{}, ErrNoPassphraseService
	}
	return v.deps.Passphrase.GeneratePassphrase(v.passphrase, v.deps.Validator)
}

func (v *View) reportOptions() domain.ReportOptions {
	exclude := v.mode == messages.ModePassword && v.password.ExcludeAmbiguous
	return v.checks.ReportOptions(exclude)
}

func (v *View) copy() tea.Cmd {
	value := v.result.Value
	clip := v.deps.Clipboard
	return func() tea.Msg {
		if clip == nil {
			return messages.CopyCompleted{Err: ErrNoClipboard}
		}
		if value == "" {
			return messages.CopyCompleted{Err: ErrNothingToCopy}
		}
		return messages.CopyCompleted{Err: clip.Copy(value)}
	}
}

// View renders the generator view.
func (v *View) View() string {
	sections := make([]string, 0, 16)

	header := v.styles.Title.Render("pwforge") + " " + v.styles.Muted.Render(v.mode.String()+" mode")
	sections = append(sections, header, "")

	value := v.result.Value
	if value == "" {
		value = v.styles.Muted.Render("(nothing generated)")
	} else {
		value = v.styles.Secret.Render(value)
	}
	sections = append(sections, v.styles.Panel.Width(max(v.width-4, 20)).Render(value), "")

	sections = append(sections, v.renderOptions()...)
	sections = append(sections, "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	} else if v.result.Value != "" {
		sections = append(sections, v.renderReport()...)
	}

	v.statusbar.SetWidth(v.width)
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderOptions() []string {
	label := v.styles.Label.Render
	var lines []string

	if v.mode == messages.ModePassword {
		lines = append(lines,
			label("Length: ")+fmt.Sprintf("%d", v.password.Length),
			strings.Join([]string{
				v.toggle("a-z", v.password.UseLower),
				v.toggle("A-Z", v.password.UseUpper),
				v.toggle("0-9", v.password.UseDigits),
				v.toggle("symbols", v.password.UseSymbols),
				v.toggle("exclude ambiguous", v.password.ExcludeAmbiguous),
			}, "  "),
		)
	} else {
		lines = append(lines,
			label("Words: ")+fmt.Sprintf("%d", v.passphrase.WordCount)+"  "+
				label("Delimiter: ")+fmt.Sprintf("%q", v.passphrase.Delimiter),
			strings.Join([]string{
				v.toggle("capitalise", v.passphrase.Capitalize),
				v.toggle("add number", v.passphrase.AppendDigit),
				v.toggle("add symbol", v.passphrase.AppendSymbol),
			}, "  "),
		)
	}
	lines = append(lines, v.toggle("breach check", v.checks.Breach))
	return lines
}

func (v *View) toggle(name string, on bool) string {
	if on {
		return v.styles.Selected.Render("[x] " + name)
	}
	return v.styles.Muted.Render("[ ] " + name)
}

func (v *View) renderReport() []string {
	label := v.styles.Label.Render
	strength := v.report.Strength
	rating, ratingStyle := v.styles.Rating(strength.Entropy)

	breach := v.styles.Breach(v.report.Breach)
	if v.reportPending {
		breach = v.styles.Muted.Render("checking...")
	}

	lines := []string{
		label("Entropy: ") + fmt.Sprintf("%.2f bits ", strength.Entropy) + ratingStyle.Render("("+rating+")"),
		label("Estimated crack time: ") + strength.CrackTime,
		label("Breach: ") + breach,
	}
	if !v.result.CriteriaMet {
		lines = append(lines, v.styles.Warning.Render("Warning: "+v.result.Err().Error()))
	}
	for _, a := range v.report.Advisories {
		lines = append(lines, v.styles.Warning.Render("Note: "+string(a)))
	}
	return lines
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
}

// Mode returns the current mode.
func (v *View) Mode() messages.Mode {
	return v.mode
}

// Value returns the current generated value.
func (v *View) Value() string {
	return v.result.Value
}

// Result returns the last generation result.
func (v *View) Result() domain.Result {
	return v.result
}

// Report returns the current report.
func (v *View) Report() domain.Report {
	return v.report
}

// ReportPending reports whether a breach lookup is in flight.
func (v *View) ReportPending() bool {
	return v.reportPending
}

// PasswordConfig returns the current password options.
func (v *View) PasswordConfig() domain.GenerationConfig {
	return v.password
}

// PassphraseConfig returns the current passphrase options.
func (v *View) PassphraseConfig() domain.PassphraseConfig {
	return v.passphrase
}

// Checks returns the current check toggles.
func (v *View) Checks() domain.CheckSettings {
	return v.checks
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
