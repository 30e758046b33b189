package generator

import "errors"

// ErrNoPasswordService is returned when password mode has no generator.
var ErrNoPasswordService = errors.New("password generator not available")

// ErrNoPassphraseService is returned when passphrase mode has no generator.
var ErrNoPassphraseService = errors.New("passphrase generator not available")

// ErrNoClipboard is returned when copying without a clipboard.
var ErrNoClipboard = errors.New("clipboard not available")

// ErrNothingToCopy is returned when copying before anything was generated.
var ErrNothingToCopy = errors.New("nothing to copy")
