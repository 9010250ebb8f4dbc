package alphabet_test

import (
	"errors"
	"strings"
	"testing"

	"randompass/internal/alphabet"
	"randompass/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSeed struct{}

func (failingSeed) Seed() ([domain.SeedSize]byte, error) {
	return [domain.SeedSize]byte{}, errors.New("entropy unavailable")
}

func TestNew_ConcatenatesClassesInCanonicalOrder(t *testing.T) {
	a, err := alphabet.New(domain.DefaultConfig(), domain.CryptoSeed{})
	require.NoError(t, err)

	want := domain.DefaultSpecialChars + domain.UppercaseChars + domain.LowercaseChars + domain.DigitChars
	assert.Equal(t, want, a.Chars())
	assert.Equal(t, 14+26+26+10, a.Len())
}

func TestNew_IncludesOnlyEnabledClasses(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.Config
		want string
	}{
		{
			name: "lowercase only",
			cfg:  domain.Config{AllowLower: true, SpecialChars: domain.DefaultSpecialChars},
			want: domain.LowercaseChars,
		},
		{
			name: "digits and special",
			cfg:  domain.Config{AllowDigits: true, AllowSpecial: true, SpecialChars: "#@"},
			want: "#@" + domain.DigitChars,
		},
		{
			name: "no special",
			cfg:  domain.Config{AllowLower: true, AllowUpper: true, AllowDigits: true, SpecialChars: "#@"},
			want: domain.UppercaseChars + domain.LowercaseChars + domain.DigitChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := alphabet.New(tt.cfg, domain.CryptoSeed{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Chars())
		})
	}
}

func TestNew_NoClassEnabledIsEmpty(t *testing.T) {
	_, err := alphabet.New(domain.Config{SpecialChars: domain.DefaultSpecialChars}, domain.CryptoSeed{})
	assert.ErrorIs(t, err, domain.ErrEmptyAlphabet)
}

func TestFromChars_Empty(t *testing.T) {
	_, err := alphabet.FromChars("", domain.CryptoSeed{})
	assert.ErrorIs(t, err, domain.ErrEmptyAlphabet)
}

func TestFromChars_SeedFailure(t *testing.T) {
	_, err := alphabet.FromChars("abc", failingSeed{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy unavailable")
}

func TestDraw_StaysWithinEnabledClasses(t *testing.T) {
	cfg := domain.Config{AllowUpper: true, AllowDigits: true, SpecialChars: domain.DefaultSpecialChars}
	a, err := alphabet.New(cfg, domain.CryptoSeed{})
	require.NoError(t, err)

	allowed := domain.UppercaseChars + domain.DigitChars
	for i := 0; i < 10000; i++ {
		c := a.Draw()
		if !strings.ContainsRune(allowed, c) {
			t.Fatalf("drew %q outside enabled classes", c)
		}
	}
}

func TestDraw_CoversWholeAlphabet(t *testing.T) {
	a, err := alphabet.New(domain.DefaultConfig(), domain.CryptoSeed{})
	require.NoError(t, err)

	seen := make(map[rune]int)
	for i := 0; i < 10000; i++ {
		seen[a.Draw()]++
	}

	// 76 characters over 10000 draws; a miss means the index range is off
	assert.Len(t, seen, a.Len())
}

func TestDraw_FixedSeedIsReproducible(t *testing.T) {
	seeds := domain.NewFixedSeed([]byte("reproducible"))

	a, err := alphabet.New(domain.DefaultConfig(), seeds)
	require.NoError(t, err)
	b, err := alphabet.New(domain.DefaultConfig(), seeds)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestDraw_CryptoSeededAlphabetsDiverge(t *testing.T) {
	a, err := alphabet.New(domain.DefaultConfig(), domain.CryptoSeed{})
	require.NoError(t, err)
	b, err := alphabet.New(domain.DefaultConfig(), domain.CryptoSeed{})
	require.NoError(t, err)

	var sa, sb strings.Builder
	for i := 0; i < 64; i++ {
		sa.WriteRune(a.Draw())
		sb.WriteRune(b.Draw())
	}

	assert.NotEqual(t, sa.String(), sb.String())
}

func TestDraw_SingleCharacter(t *testing.T) {
	a, err := alphabet.FromChars("a", domain.CryptoSeed{})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 'a', a.Draw())
	}
}

func TestFromChars_KeepsDuplicatesAndMultibyte(t *testing.T) {
	a, err := alphabet.FromChars("aa€", domain.CryptoSeed{})
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "aa€", a.Chars())
}
