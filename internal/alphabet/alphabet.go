// Package alphabet builds the character set a password is drawn from.
package alphabet

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"randompass/internal/domain"
)

// Alphabet draws characters uniformly from a fixed sequence.
// An Alphabet owns its RNG stream and is not safe for concurrent use.
type Alphabet struct {
	chars []rune
	rng   *rand.Rand
}

// New creates an alphabet from the classes cfg enables, concatenated in
// canonical order: special, uppercase, lowercase, digits.
func New(cfg domain.Config, seeds domain.SeedProvider) (*Alphabet, error) {
	var sb strings.Builder
	for _, class := range domain.Classes {
		if cfg.Allows(class) {
			sb.WriteString(cfg.Chars(class))
		}
	}
	return FromChars(sb.String(), seeds)
}

// FromChars creates an alphabet over exactly the given characters.
// Duplicates are kept and weigh the draw accordingly.
func FromChars(chars string, seeds domain.SeedProvider) (*Alphabet, error) {
	runes := []rune(chars)
	if len(runes) == 0 {
		return nil, domain.ErrEmptyAlphabet
	}

	seed, err := seeds.Seed()
	if err != nil {
		return nil, fmt.Errorf("seeding alphabet: %w", err)
	}

	return &Alphabet{
		chars: runes,
		rng:   rand.New(rand.NewChaCha8(seed)),
	}, nil
}

// Draw returns a uniformly random character from the alphabet.
func (a *Alphabet) Draw() rune {
	return a.chars[a.rng.IntN(len(a.chars))]
}

// Len returns the number of characters, duplicates included.
func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Chars returns the alphabet's characters in draw order.
func (a *Alphabet) Chars() string {
	return string(a.chars)
}
