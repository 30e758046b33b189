package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
	"github.com/custodia-labs/pwforge/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMinLength      = "generator.min_length"
	keyMaxLength      = "generator.max_length"
	keyWordCount      = "generator.word_count"
	keyDelimiter      = "generator.delimiter"
	keyPatterns       = "checks.patterns"
	keyRepetition     = "checks.repetition"
	keyRepetitionMax  = "checks.repetition_threshold"
	keyBreach         = "checks.breach"
	keyCommonPatterns = "checks.common_patterns"
	keyWordlistPath   = "wordlist.path"
	keyBreachURL      = "breach.api_url"
	keyBreachTimeout  = "breach.timeout"
	keyBreachCacheTTL = "breach.cache_ttl"
	keyBreachRate     = "breach.rate"
)

// settingKind determines how Set parses a value.
type settingKind int

const (
	kindInt settingKind = iota
	kindBool
	kindString
	kindStringList
	kindDuration
	kindFloat
)

// settingKeys lists every settable key in display order.
var settingKeys = []struct {
	key  string
	kind settingKind
}{
	{keyMinLength, kindInt},
	{keyMaxLength, kindInt},
	{keyWordCount, kindInt},
	{keyDelimiter, kindString},
	{keyPatterns, kindBool},
	{keyRepetition, kindBool},
	{keyRepetitionMax, kindInt},
	{keyBreach, kindBool},
	{keyCommonPatterns, kindStringList},
	{keyWordlistPath, kindString},
	{keyBreachURL, kindString},
	{keyBreachTimeout, kindDuration},
	{keyBreachCacheTTL, kindDuration},
	{keyBreachRate, kindFloat},
}

// ErrUnknownSetting is returned by Set for an unrecognised key.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Generator: domain.GeneratorSettings{
			MinLength: s.getInt(keyMinLength, defaults.Generator.MinLength),
			MaxLength: s.getInt(keyMaxLength, defaults.Generator.MaxLength),
			WordCount: s.getInt(keyWordCount, defaults.Generator.WordCount),
			Delimiter: s.getRawString(keyDelimiter, defaults.Generator.Delimiter),
		},
		Checks: domain.CheckSettings{
			Patterns:            s.getBool(keyPatterns, defaults.Checks.Patterns),
			Repetition:          s.getBool(keyRepetition, defaults.Checks.Repetition),
			RepetitionThreshold: s.getInt(keyRepetitionMax, defaults.Checks.RepetitionThreshold),
			Breach:              s.getBool(keyBreach, defaults.Checks.Breach),
			CommonPatterns:      s.configStore.GetStringSlice(keyCommonPatterns),
		},
		Wordlist: domain.WordlistSettings{
			Path: s.getString(keyWordlistPath, defaults.Wordlist.Path),
		},
		Breach: domain.BreachSettings{
			APIURL:            s.getString(keyBreachURL, defaults.Breach.APIURL),
			Timeout:           s.getDuration(keyBreachTimeout, defaults.Breach.Timeout),
			CacheTTL:          s.getDuration(keyBreachCacheTTL, defaults.Breach.CacheTTL),
			RequestsPerSecond: s.getFloat(keyBreachRate, defaults.Breach.RequestsPerSecond),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrConfig)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyMinLength, settings.Generator.MinLength},
		{keyMaxLength, settings.Generator.MaxLength},
		{keyWordCount, settings.Generator.WordCount},
		{keyDelimiter, settings.Generator.Delimiter},
		{keyPatterns, settings.Checks.Patterns},
		{keyRepetition, settings.Checks.Repetition},
		{keyRepetitionMax, settings.Checks.RepetitionThreshold},
		{keyBreach, settings.Checks.Breach},
		{keyWordlistPath, settings.Wordlist.Path},
		{keyBreachURL, settings.Breach.APIURL},
		{keyBreachTimeout, settings.Breach.Timeout.String()},
		{keyBreachCacheTTL, settings.Breach.CacheTTL.String()},
		{keyBreachRate, settings.Breach.RequestsPerSecond},
	}
	if len(settings.Checks.CommonPatterns) > 0 {
		values = append(values, struct {
			key   string
			value any
		}{keyCommonPatterns, settings.Checks.CommonPatterns})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates one setting by key.
func (s *SettingsService) Set(key, value string) error {
	for _, k := range settingKeys {
		if k.key != key {
			continue
		}
		parsed, err := parseSetting(k.kind, value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrConfig, key, err)
		}
		if err := s.configStore.Set(key, parsed); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for _, k := range settingKeys {
		keys = append(keys, k.key)
	}
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func parseSetting(kind settingKind, value string) (any, error) {
	switch kind {
	case kindInt:
		return strconv.Atoi(strings.TrimSpace(value))
	case kindBool:
		return strconv.ParseBool(strings.TrimSpace(value))
	case kindFloat:
		return strconv.ParseFloat(strings.TrimSpace(value), 64)
	case kindDuration:
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		return d.String(), nil
	case kindStringList:
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	default:
		return value, nil
	}
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getRawString keeps a stored empty string instead of falling back.
func (s *SettingsService) getRawString(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

// getFloat accepts the numeric types TOML decoding may produce.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return defaultVal
	}
}
