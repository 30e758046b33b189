package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui/views/generator"
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	generatorView *generator.View
	help          help.Model
	showHelp      bool

	width  int
	height int
	ready  bool
}

// NewApp creates a new TUI application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.Styles.ShortKey = s.Help
	h.Styles.ShortDesc = s.Muted
	h.Styles.FullKey = s.Help
	h.Styles.FullDesc = s.Muted

	deps := generator.Deps{
		Password:   ports.Password,
		Passphrase: ports.Passphrase,
		Report:     ports.Report,
		Clipboard:  ports.Clipboard,
		Validator:  ports.Validator,
	}

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		generatorView: generator.NewView(s, km, deps, loadDefaults(ports)),
		help:          h,
		width:         80,
		height:        24,
	}, nil
}

// loadDefaults seeds the generator options from settings.
func loadDefaults(ports *Ports) generator.Defaults {
	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("loading settings: %v", err)
		} else {
			settings = *loaded
		}
	}
	return generator.Defaults{
		Length:    settings.Generator.MinLength,
		WordCount: settings.Generator.WordCount,
		Delimiter: settings.Generator.Delimiter,
		Checks:    settings.Checks,
	}
}

// WithContext sets the context for cancellation.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.generatorView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("pwforge"),
		a.generatorView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.generatorView, cmd = a.generatorView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	body := a.generatorView.View()
	if !a.showHelp {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", a.help.View(a.keymap))
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Generator returns the generator view.
func (a *App) Generator() *generator.View {
	return a.generatorView
}

// ShowHelp reports whether the full help is displayed.
func (a *App) ShowHelp() bool {
	return a.showHelp
}

// Ready reports whether the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the app dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
	a.generatorView.SetDimensions(width, height)
}
