package domain

import "errors"

var (
	// ErrInvalidLength indicates a non-positive requested length, or a
	// candidate whose length differs from the requested one.
	ErrInvalidLength = errors.New("invalid length")

	// ErrNoClassEnabled indicates every character class is disabled.
	ErrNoClassEnabled = errors.New("at least one character class must be enabled")

	// ErrInvalidSpecialChars indicates an empty special set, or one that
	// overlaps letters or digits.
	ErrInvalidSpecialChars = errors.New("invalid special character set")

	// ErrEmptyAlphabet indicates an alphabet with nothing to draw from.
	ErrEmptyAlphabet = errors.New("alphabet is empty")

	// ErrMaxAttemptsExceeded indicates the watchdog ran out before a valid
	// candidate was drawn.
	ErrMaxAttemptsExceeded = errors.New("max attempts exceeded")
)

// Candidate rejection reasons.
var (
	ErrMissingSpecial = errors.New("no special chars present")
	ErrMissingUpper   = errors.New("no uppercase chars present")
	ErrMissingLower   = errors.New("no lowercase chars present")
	ErrMissingDigit   = errors.New("no number chars present")

	ErrForbiddenSpecial = errors.New("special chars present but disabled")
	ErrForbiddenUpper   = errors.New("uppercase chars present but disabled")
	ErrForbiddenLower   = errors.New("lowercase chars present but disabled")
	ErrForbiddenDigit   = errors.New("number chars present but disabled")
)
