package driven

// ConfigStore persists settings as flat dotted keys such as
// "generator.min_length" or "breach.cache_ttl". File-backed stores map
// the first segment to a table. Typed getters return the zero value for
// a missing key or a value of another type, so callers can tell "unset"
// apart from "set" only through Get.
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	// GetString returns a string value, or "".
	GetString(key string) string

	// GetInt returns an integer value, or 0. Decoded floats and int64
	// values are converted.
	GetInt(key string) int

	// GetBool returns a boolean value, or false.
	GetBool(key string) bool

	// GetStringSlice returns a list of strings, or nil.
	GetStringSlice(key string) []string

	// Set stores a value. File-backed stores write through immediately.
	Set(key string, value any) error

	// Save writes every value to storage.
	Save() error

	// Load replaces the values with those in storage.
	Load() error

	// Path describes where values are stored.
	Path() string
}
