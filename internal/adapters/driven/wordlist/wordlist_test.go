package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_EFFFormat(t *testing.T) {
	input := "11111\tabacus\n11112\tabdomen\n\n11113\tAbdominal\r\n"

	l, err := Read(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"abacus", "abdomen", "abdominal"}, l.Words())
	assert.Equal(t, 3, l.Len())
}

func TestRead_PlainFormat(t *testing.T) {
	l, err := Read(strings.NewReader("alpha\nbravo\n  charlie  \n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, l.Words())
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader("\n\n  \n"))

	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("11111\tone\n11112\ttwo\n"), 0600))

	l, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, l.Words())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}

func TestLoadOrEmpty_Missing(t *testing.T) {
	l := LoadOrEmpty(filepath.Join(t.TempDir(), "missing.txt"))

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Words())
}

func TestNew_CopiesInput(t *testing.T) {
	words := []string{"a", "b"}
	l := New(words)
	words[0] = "z"

	assert.Equal(t, []string{"a", "b"}, l.Words())
}
