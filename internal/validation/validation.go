// Package validation checks password candidates against a Config.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"randompass/internal/domain"
)

// Rule describes one character class constraint.
type Rule struct {
	Class    domain.Class
	Chars    string
	Required bool
}

// RuleFor returns the constraint cfg places on class.
func RuleFor(cfg domain.Config, class domain.Class) Rule {
	return Rule{
		Class:    class,
		Chars:    cfg.Chars(class),
		Required: cfg.Allows(class),
	}
}

// Check applies rule to candidate. A required class needs at least one
// occurrence; a forbidden class must not occur anywhere.
func Check(candidate string, rule Rule) error {
	present := strings.ContainsAny(candidate, rule.Chars)

	if rule.Required && !present {
		return rule.Class.MissingErr()
	}
	if !rule.Required && present {
		return rule.Class.ForbiddenErr()
	}
	return nil
}

// ValidateLength rejects empty candidates and candidates whose length
// differs from cfg.Length.
func ValidateLength(cfg domain.Config, candidate string) error {
	n := utf8.RuneCountInString(candidate)
	if n == 0 || n != cfg.Length {
		return fmt.Errorf("%w: want %d, got %d", domain.ErrInvalidLength, cfg.Length, n)
	}
	return nil
}

func ValidateSpecialChars(cfg domain.Config, candidate string) error {
	return Check(candidate, RuleFor(cfg, domain.ClassSpecial))
}

func ValidateUppercase(cfg domain.Config, candidate string) error {
	return Check(candidate, RuleFor(cfg, domain.ClassUpper))
}

func ValidateLowercase(cfg domain.Config, candidate string) error {
	return Check(candidate, RuleFor(cfg, domain.ClassLower))
}

func ValidateDigits(cfg domain.Config, candidate string) error {
	return Check(candidate, RuleFor(cfg, domain.ClassDigit))
}

// Validate runs the length check followed by each class check in canonical
// order and returns the first failure.
func Validate(cfg domain.Config, candidate string) error {
	if err := ValidateLength(cfg, candidate); err != nil {
		return err
	}
	for _, class := range domain.Classes {
		if err := Check(candidate, RuleFor(cfg, class)); err != nil {
			return err
		}
	}
	return nil
}
