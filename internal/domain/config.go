package domain

import (
	"fmt"
	"strings"
)

const (
	// DefaultLength is the password length used when none is requested.
	DefaultLength = 16

	// DefaultSpecialChars is the symbol set used when none is configured.
	DefaultSpecialChars = "!#$%&*][(){}+-"
)

// Config describes one generation run.
type Config struct {
	Length       int
	AllowLower   bool
	AllowUpper   bool
	AllowDigits  bool
	AllowSpecial bool
	SpecialChars string
}

// DefaultConfig returns a Config with every class enabled.
func DefaultConfig() Config {
	return Config{
		Length:       DefaultLength,
		AllowLower:   true,
		AllowUpper:   true,
		AllowDigits:  true,
		AllowSpecial: true,
		SpecialChars: DefaultSpecialChars,
	}
}

// Allows reports whether class is enabled.
func (c Config) Allows(class Class) bool {
	switch class {
	case ClassSpecial:
		return c.AllowSpecial
	case ClassUpper:
		return c.AllowUpper
	case ClassLower:
		return c.AllowLower
	case ClassDigit:
		return c.AllowDigits
	default:
		return false
	}
}

// Chars returns the character range of class.
func (c Config) Chars(class Class) string {
	switch class {
	case ClassSpecial:
		return c.SpecialChars
	case ClassUpper:
		return UppercaseChars
	case ClassLower:
		return LowercaseChars
	case ClassDigit:
		return DigitChars
	default:
		return ""
	}
}

// Validate checks the preconditions of a generation run.
func (c Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalidLength, c.Length)
	}

	if !c.AllowLower && !c.AllowUpper && !c.AllowDigits && !c.AllowSpecial {
		return ErrNoClassEnabled
	}

	if c.AllowSpecial && c.SpecialChars == "" {
		return fmt.Errorf("%w: special chars enabled but set is empty", ErrInvalidSpecialChars)
	}

	// The special set doubles as the forbidden range when disabled, so an
	// overlap would make letters or digits count as special either way.
	if strings.ContainsAny(c.SpecialChars, UppercaseChars+LowercaseChars+DigitChars) {
		return fmt.Errorf("%w: %q overlaps letters or digits", ErrInvalidSpecialChars, c.SpecialChars)
	}

	return nil
}
