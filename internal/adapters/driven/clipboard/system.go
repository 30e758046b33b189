// Package clipboard implements driven.Clipboard on top of the
// operating system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// ErrUnsupported is returned when no clipboard utility is available,
// e.g. on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard not available on this system")

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System writes to the host clipboard.
type System struct {
	write func(string) error
}

// NewSystem creates a clipboard adapter for the host.
func NewSystem() *System {
	return &System{write: clipboard.WriteAll}
}

// Available reports whether the host has a usable clipboard.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the clipboard.
func (s *System) Copy(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Ensure Memory implements the interface.
var _ driven.Clipboard = (*Memory)(nil)

// Memory is an in-process clipboard used in tests and when the host
// clipboard is unavailable.
type Memory struct {
	last string
}

// Copy records text.
func (m *Memory) Copy(text string) error {
	m.last = text
	return nil
}

// Last returns the most recently copied text.
func (m *Memory) Last() string {
	return m.last
}
