// Package memory provides in-memory implementations of driven ports.
//
// ConfigStore holds settings for tests and for runs without a config
// file. RangeCache keeps breach-range responses for the lifetime of the
// process and is the fallback when the SQLite cache cannot be opened.
package memory
