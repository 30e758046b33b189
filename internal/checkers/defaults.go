package checkers

import (
	"github.com/custodia-labs/pwforge/internal/checkers/pattern"
	"github.com/custodia-labs/pwforge/internal/checkers/repetition"
	"github.com/custodia-labs/pwforge/internal/core/domain"
	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// RegisterDefaults registers all built-in checkers with the registry.
// Call this during application initialisation to enable standard checkers.
func RegisterDefaults(r *Registry) {
	r.Register(pattern.Name, buildPattern)
	r.Register(repetition.Name, buildRepetition)
}

// FromSettings returns the checker names enabled by the check settings,
// in the order they run.
func FromSettings(s domain.CheckSettings) []string {
	var names []string
	if s.Patterns {
		names = append(names, pattern.Name)
	}
	if s.Repetition {
		names = append(names, repetition.Name)
	}
	return names
}

// ConfigFromPolicy builds per-checker config from a policy.
func ConfigFromPolicy(p domain.Policy) map[string]map[string]any {
	return map[string]map[string]any{
		pattern.Name:    {"patterns": p.CommonPatterns},
		repetition.Name: {"threshold": p.RepetitionThreshold},
	}
}

// buildPattern creates a pattern checker from generic config.
// Supported config keys:
//   - patterns ([]string): Weak tokens (default: built-in list)
func buildPattern(cfg map[string]any) (driven.Checker, error) {
	patterns := getStringsFromConfig(cfg, "patterns")
	if len(patterns) == 0 {
		patterns = domain.DefaultCommonPatterns()
	}
	return pattern.New(patterns), nil
}

// buildRepetition creates a repetition checker from generic config.
// Supported config keys:
//   - threshold (int): Longest allowed run (default: 2)
func buildRepetition(cfg map[string]any) (driven.Checker, error) {
	threshold := domain.DefaultRepetitionThreshold
	if t := getIntFromConfig(cfg, "threshold"); t > 0 {
		threshold = t
	}
	return repetition.New(threshold), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// getStringsFromConfig extracts a string slice from generic config map.
func getStringsFromConfig(cfg map[string]any, key string) []string {
	val, ok := cfg[key]
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
