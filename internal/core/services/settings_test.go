package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pwforge/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pwforge/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Generator, settings.Generator)
	assert.Equal(t, defaults.Wordlist, settings.Wordlist)
	assert.Equal(t, defaults.Breach, settings.Breach)
	assert.Equal(t, defaults.Checks.Breach, settings.Checks.Breach)
	assert.Empty(t, settings.Checks.CommonPatterns)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{
		"generator.word_count":   int64(8),
		"generator.delimiter":    "",
		"checks.breach":          false,
		"checks.common_patterns": []any{"hunter2"},
		"breach.timeout":         "3s",
		"breach.rate":            int64(2),
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 8, settings.Generator.WordCount)
	assert.Equal(t, "", settings.Generator.Delimiter, "stored empty delimiter is kept")
	assert.False(t, settings.Checks.Breach)
	assert.Equal(t, []string{"hunter2"}, settings.Checks.CommonPatterns)
	assert.Equal(t, 3*time.Second, settings.Breach.Timeout)
	assert.Equal(t, 2.0, settings.Breach.RequestsPerSecond)
}

func TestSettingsService_Get_BadDurationFallsBack(t *testing.T) {
	store := memory.NewConfigStoreFrom(map[string]any{"breach.cache_ttl": "soon"})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBreachTTL, settings.Breach.CacheTTL)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Generator.MinLength = 16
	settings.Generator.MaxLength = 32
	settings.Checks.CommonPatterns = []string{"acme"}
	settings.Breach.Timeout = 4 * time.Second

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
	assert.Equal(t, "4s", store.GetString("breach.timeout"))
}

func TestSettingsService_Save_Nil(t *testing.T) {
	err := NewSettingsService(memory.NewConfigStore()).Save(nil)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  any
	}{
		{"generator.word_count", " 7 ", 7},
		{"checks.patterns", "false", false},
		{"generator.delimiter", "", ""},
		{"checks.common_patterns", "acme, , hunter2", []string{"acme", "hunter2"}},
		{"breach.timeout", "1500ms", "1.5s"},
		{"breach.rate", "0.5", 0.5},
		{"wordlist.path", "/tmp/words.txt", "/tmp/words.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.Set(tt.key, tt.value))

			val, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, val)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.Set("generator.colour", "blue")
	assert.ErrorIs(t, err, ErrUnknownSetting)

	err = service.Set("generator.word_count", "six")
	assert.ErrorIs(t, err, domain.ErrConfig)

	err = service.Set("breach.timeout", "forever")
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 14)
	assert.Equal(t, "generator.min_length", keys[0])
	assert.Contains(t, keys, "checks.breach")
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.Validate())

	require.NoError(t, service.Set("generator.min_length", "30"))
	require.NoError(t, service.Set("generator.max_length", "20"))

	err := service.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
	assert.Contains(t, err.Error(), "generator.max_length")
}

func TestSettingsService_PathAndDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, ":memory:", service.Path())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
