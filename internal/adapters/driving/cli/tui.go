package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwforge/internal/adapters/driving/tui"
)

// runProgram runs the bubbletea program. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for pwforge.

Controls:
  enter/r  - Generate a new value
  tab      - Switch password / passphrase
  +/-      - Longer / shorter
  1-4      - Toggle character classes
  a        - Toggle ambiguous-character exclusion
  b        - Toggle breach lookup
  c        - Copy to clipboard
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	settings := loadSettings()
	validator, err := buildValidator(settings.Checks)
	if err != nil {
		return fmt.Errorf("building checks: %w", err)
	}

	ports := tui.NewPorts(passwordService, passphraseService, reportService)
	ports.Settings = settingsService
	ports.Validator = validator
	ports.Clipboard = clipboardSvc

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
