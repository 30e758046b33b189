// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Generation is synchronous: one call owns its candidate buffer and
// shares only read-only inputs (policy, pool, word source) with other
// callers.
package services
