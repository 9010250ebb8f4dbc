package service

import (
	"fmt"
	"log/slog"

	"randompass/internal/alphabet"
	"randompass/internal/domain"
	"randompass/internal/validation"
)

// DefaultMaxAttempts bounds the number of candidates drawn per password.
const DefaultMaxAttempts = 100_000

// CharSource defines the interface for drawing password characters.
type CharSource interface {
	Draw() rune
}

// Option configures a PasswordService.
type Option func(*PasswordService)

// WithMaxAttempts overrides the watchdog ceiling. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *PasswordService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// PasswordService generates passwords by rejection sampling.
type PasswordService struct {
	seeds       domain.SeedProvider
	source      CharSource
	maxAttempts int
}

// NewPasswordService creates a PasswordService that builds a fresh alphabet,
// seeded from seeds, for every Generate call.
func NewPasswordService(seeds domain.SeedProvider, opts ...Option) *PasswordService {
	s := &PasswordService{
		seeds:       seeds,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewPasswordServiceWithSource creates a PasswordService that draws from a
// fixed source instead of a config-derived alphabet (for testing).
func NewPasswordServiceWithSource(source CharSource, opts ...Option) *PasswordService {
	s := NewPasswordService(nil, opts...)
	s.source = source
	return s
}

// MaxAttempts returns the watchdog ceiling.
func (s *PasswordService) MaxAttempts() int {
	return s.maxAttempts
}

// Generate returns a password of cfg.Length characters that satisfies every
// class constraint in cfg.
// Returns a precondition error if cfg is unusable, or
// domain.ErrMaxAttemptsExceeded if no candidate passed validation in time.
func (s *PasswordService) Generate(cfg domain.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	source := s.source
	if source == nil {
		a, err := alphabet.New(cfg, s.seeds)
		if err != nil {
			return "", fmt.Errorf("building alphabet: %w", err)
		}
		source = a
	}

	candidate := make([]rune, cfg.Length)

	for remaining := s.maxAttempts; remaining > 0; remaining-- {
		for i := range candidate {
			candidate[i] = source.Draw()
		}

		pass := string(candidate)
		if validation.Validate(cfg, pass) == nil {
			slog.Debug("password accepted", "attempts", s.maxAttempts-remaining+1, "length", cfg.Length)
			return pass, nil
		}
	}

	slog.Debug("watchdog exhausted", "attempts", s.maxAttempts, "length", cfg.Length)
	return "", fmt.Errorf("%w: no valid password after %d attempts", domain.ErrMaxAttemptsExceeded, s.maxAttempts)
}
