package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

func TestCheckCmd_Use(t *testing.T) {
	assert.Equal(t, "check [password]", checkCmd.Use)
}

func TestCheckCmd_TooManyArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := executeCommand("check", "one", "two")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestCheckCmd_Argument(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := executeCommand("check", "Tr0ub4dor&3")

	require.NoError(t, err)
	assert.Equal(t, []string{"Tr0ub4dor&3"}, ts.report.passwords)
	assert.Contains(t, out, "Password 1:")
	assert.Contains(t, out, "Entropy: 85.20 bits")
	assert.NotContains(t, out, "Warning: criteria")

	opts := ts.report.last()
	assert.True(t, opts.PatternCheck)
	assert.True(t, opts.BreachCheck)
	assert.False(t, opts.ExcludeAmbiguous)
	assert.Empty(t, ts.password.configs)
}

func TestCheckCmd_CheckFlags(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := executeCommand("check", "--no-hibp-check", "--no-pattern-check", "secret")

	require.NoError(t, err)
	opts := ts.report.last()
	assert.False(t, opts.BreachCheck)
	assert.False(t, opts.PatternCheck)
	assert.True(t, opts.RepetitionCheck)
}

func TestCheckCmd_BreachedJSON(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.report.report = &domain.Report{
		Strength:   domain.Strength{Entropy: 26.58, CrackTime: "0.00 seconds"},
		Breach:     domain.BreachResult{Status: domain.BreachFound, Count: 3861493},
		Advisories: []domain.Advisory{domain.AdvisoryBreached, domain.AdvisoryCommonPattern},
	}

	out, _, err := executeCommand("check", "--json", "password")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "password", got[0]["value"])
	breach := got[0]["breach"].(map[string]any)
	assert.Equal(t, "found", breach["status"])
	assert.InDelta(t, 3861493, breach["count"], 0)
	assert.Len(t, got[0]["advisories"], 2)
}

func TestReadSecret(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline", "hunter2\n", "hunter2"},
		{"crlf", "hunter2\r\n", "hunter2"},
		{"no newline", "hunter2", "hunter2"},
		{"keeps inner spaces", " two words \n", " two words "},
		{"only first line", "first\nsecond\n", "first"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := checkCmd
			cmd.SetIn(strings.NewReader(tt.input))
			defer cmd.SetIn(nil)

			got, err := readSecret(cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCmd_ReadsStdin(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	resetFlags(rootCmd)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader("from-stdin\n"))
	rootCmd.SetArgs([]string{"check"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"from-stdin"}, ts.report.passwords)
}

func TestCheckCmd_EmptyInput(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := executeCommand("check")

	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, ts.report.passwords)
}
