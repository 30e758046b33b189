// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
// The class toggles change meaning in passphrase mode: upper toggles
// capitalisation, digits and symbols toggle the extra token.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full help.
	Help key.Binding

	// Generate produces a new value.
	Generate key.Binding

	// ToggleMode switches between password and passphrase.
	ToggleMode key.Binding

	// Longer increases the length or word count.
	Longer key.Binding

	// Shorter decreases the length or word count.
	Shorter key.Binding

	// ToggleLower switches lowercase letters.
	ToggleLower key.Binding

	// ToggleUpper switches uppercase letters or capitalisation.
	ToggleUpper key.Binding

	// ToggleDigits switches digits or the appended number.
	ToggleDigits key.Binding

	// ToggleSymbols switches symbols or the appended symbol.
	ToggleSymbols key.Binding

	// ToggleAmbiguous switches ambiguous-character exclusion.
	ToggleAmbiguous key.Binding

	// ToggleBreach switches the online breach lookup.
	ToggleBreach key.Binding

	// Copy places the current value on the clipboard.
	Copy key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter", " ", "r"),
			key.WithHelp("enter/r", "generate"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "password/passphrase"),
		),
		Longer: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+/→", "longer"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-", "left", "h"),
			key.WithHelp("-/←", "shorter"),
		),
		ToggleLower: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "lowercase"),
		),
		ToggleUpper: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "uppercase / capitalise"),
		),
		ToggleDigits: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "digits / add number"),
		),
		ToggleSymbols: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "symbols / add symbol"),
		),
		ToggleAmbiguous: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "exclude ambiguous"),
		),
		ToggleBreach: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "breach check"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.ToggleMode, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy, k.ToggleMode},
		{k.Longer, k.Shorter},
		{k.ToggleLower, k.ToggleUpper, k.ToggleDigits, k.ToggleSymbols},
		{k.ToggleAmbiguous, k.ToggleBreach},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
