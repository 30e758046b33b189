package repetition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_DefaultThreshold(t *testing.T) {
	c := New(2)

	tests := []struct {
		candidate string
		want      bool
	}{
		{"", false},
		{"a", false},
		{"aa", false},
		{"aab", false},
		{"aaa", true},
		{"xyz111", true},
		{"ab!!!cd", true},
		{"abababab", false},
		{"aabbaabb", false},
		{"AaA", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Check(tt.candidate))
		})
	}
}

func TestChecker_Threshold(t *testing.T) {
	c := New(1)
	assert.True(t, c.Check("abb"))
	assert.False(t, c.Check("abab"))

	c = New(4)
	assert.False(t, c.Check("aaaa"))
	assert.True(t, c.Check("aaaaa"))
	assert.Equal(t, 4, c.Threshold())
}

func TestChecker_DisabledBelowOne(t *testing.T) {
	assert.False(t, New(0).Check("aaaaaa"))
	assert.False(t, New(-1).Check("aaaaaa"))
}

func TestChecker_MultiByteRunes(t *testing.T) {
	c := New(2)
	assert.True(t, c.Check("ééé"))
	assert.False(t, c.Check("éée"))
}

func TestChecker_Name(t *testing.T) {
	assert.Equal(t, "repetition", New(2).Name())
}
