package tui

import "errors"

// ErrMissingPasswordService is returned when the password service is not provided.
var ErrMissingPasswordService = errors.New("tui: password service is required")

// ErrMissingPassphraseService is returned when the passphrase service is not provided.
var ErrMissingPassphraseService = errors.New("tui: passphrase service is required")

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("tui: report service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
