// Package wordlist loads Diceware wordlists from line-oriented files.
//
// Each non-blank line holds one word, optionally preceded by a dice index
// and a tab (the EFF format: "11111\tabacus"). The index is not interpreted.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/logger"
)

// Ensure List implements the interface.
var _ driven.WordSource = (*List)(nil)

// ErrEmpty is returned when a wordlist contains no words.
var ErrEmpty = errors.New("wordlist is empty")

// List is an immutable word list.
type List struct {
	words []string
}

// New creates a List from words. The slice is copied.
func New(words []string) *List {
	return &List{words: append([]string(nil), words...)}
}

// Load reads a wordlist file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	return l, nil
}

// LoadOrEmpty reads a wordlist file and returns an empty List on failure.
// Passphrase generation then fails cleanly instead of the program exiting.
func LoadOrEmpty(path string) *List {
	l, err := Load(path)
	if err != nil {
		logger.Warn("wordlist unavailable: %v", err)
		return &List{}
	}
	logger.Debug("loaded %d words from %s", l.Len(), path)
	return l
}

// Read parses a wordlist from r.
func Read(r io.Reader) (*List, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, word, ok := strings.Cut(line, "\t"); ok {
			line = strings.TrimSpace(word)
		}
		if line == "" {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}

	return &List{words: words}, nil
}

// Words returns the word list. Callers must not modify it.
func (l *List) Words() []string {
	return l.words
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}
