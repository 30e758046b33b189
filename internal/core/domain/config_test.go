package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GenerationConfig
		wantErr error
	}{
		{
			name: "all classes",
			cfg:  DefaultGenerationConfig(16),
		},
		{
			name:    "zero length",
			cfg:     DefaultGenerationConfig(0),
			wantErr: ErrInvalidLength,
		},
		{
			name:    "negative length",
			cfg:     DefaultGenerationConfig(-4),
			wantErr: ErrInvalidLength,
		},
		{
			name:    "negative minimum",
			cfg:     GenerationConfig{Length: 8, UseLower: true, MinLower: -1},
			wantErr: ErrInvalidMinimum,
		},
		{
			name:    "no class",
			cfg:     GenerationConfig{Length: 8},
			wantErr: ErrNoCharacterClass,
		},
		{
			name: "minimums fill length exactly",
			cfg: GenerationConfig{
				Length: 4, UseLower: true, UseUpper: true, UseDigits: true, UseSymbols: true,
				MinLower: 1, MinUpper: 1, MinDigits: 1, MinSymbols: 1,
			},
		},
		{
			name: "minimums exceed length",
			cfg: GenerationConfig{
				Length: 3, UseLower: true, UseUpper: true,
				MinLower: 2, MinUpper: 2,
			},
			wantErr: ErrImpossibleConstraint,
		},
		{
			name: "disabled class minimum still counts toward length",
			cfg: GenerationConfig{
				Length: 4, UseLower: true,
				MinUpper: 5,
			},
			wantErr: ErrImpossibleConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerationConfig_EnabledAndMinimum(t *testing.T) {
	cfg := GenerationConfig{
		Length: 10, UseLower: true, UseDigits: true,
		MinLower: 2, MinUpper: 3, MinDigits: 1,
	}

	assert.True(t, cfg.Enabled(ClassLower))
	assert.False(t, cfg.Enabled(ClassUpper))
	assert.True(t, cfg.Enabled(ClassDigit))
	assert.False(t, cfg.Enabled(ClassSymbol))
	assert.Equal(t, 3, cfg.Minimum(ClassUpper))
	assert.Equal(t, 6, cfg.TotalMinimum())
}

func TestPassphraseConfig_Validate(t *testing.T) {
	assert.NoError(t, PassphraseConfig{WordCount: 6}.Validate())
	assert.ErrorIs(t, PassphraseConfig{WordCount: 0}.Validate(), ErrInvalidCount)
	assert.ErrorIs(t, PassphraseConfig{WordCount: -2}.Validate(), ErrInvalidCount)
}

func TestPassphraseConfig_Augmented(t *testing.T) {
	assert.False(t, PassphraseConfig{WordCount: 6, Capitalize: true}.Augmented())
	assert.True(t, PassphraseConfig{WordCount: 6, AppendDigit: true}.Augmented())
	assert.True(t, PassphraseConfig{WordCount: 6, AppendSymbol: true}.Augmented())
}

func TestDefaultAlphabets(t *testing.T) {
	a := DefaultAlphabets()

	assert.Len(t, a.Lower, 26)
	assert.Len(t, a.Upper, 26)
	assert.Len(t, a.Digits, 10)
	assert.Len(t, a.Symbols, 32)
	assert.Equal(t, "lIO01", a.Ambiguous)
	assert.Equal(t, a.Symbols, a.Of(ClassSymbol))
	assert.Empty(t, a.Of(CharClass(42)))
}

func TestCharClass_String(t *testing.T) {
	assert.Equal(t, "lowercase", ClassLower.String())
	assert.Equal(t, "uppercase", ClassUpper.String())
	assert.Equal(t, "digit", ClassDigit.String())
	assert.Equal(t, "symbol", ClassSymbol.String())
	assert.Equal(t, "unknown", CharClass(9).String())
}

func TestPolicy_Attempts(t *testing.T) {
	assert.Equal(t, 100, DefaultPolicy().Attempts())
	assert.Equal(t, 100, Policy{}.Attempts())
	assert.Equal(t, 5, Policy{MaxAttempts: 5}.Attempts())
}
