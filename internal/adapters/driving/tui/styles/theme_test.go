package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pwforge/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_ColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	colours := []lipgloss.Color{
		theme.Primary,
		theme.Secondary,
		theme.Success,
		theme.Warning,
		theme.Error,
	}

	seen := make(map[string]bool)
	for _, c := range colours {
		s := string(c)
		assert.False(t, seen[s], "duplicate colour: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.Secret.Render("Xk#9vQ2m"), "Xk#9vQ2m")
	assert.Contains(t, styles.Label.Render("Entropy:"), "Entropy:")
}

func TestStyles_Rating(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		entropy float64
		want    string
	}{
		{0, "weak"},
		{49.9, "weak"},
		{50, "fair"},
		{79.9, "fair"},
		{80, "strong"},
		{200, "strong"},
	}

	for _, tt := range tests {
		label, _ := styles.Rating(tt.entropy)
		assert.Equal(t, tt.want, label, "entropy %.1f", tt.entropy)
	}
}

func TestStyles_Breach(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.Breach(domain.BreachResult{Status: domain.BreachFound, Count: 3}), "FOUND")
	assert.Contains(t, styles.Breach(domain.BreachResult{Status: domain.BreachFound, Count: 3}), "3 times")
	assert.Contains(t, styles.Breach(domain.BreachResult{Status: domain.BreachClear}), "not found")
	assert.Contains(t, styles.Breach(domain.BreachSkipped("disabled")), "skipped (disabled)")
	assert.Contains(t, styles.Breach(domain.BreachResult{}), "skipped (unknown)")
}
