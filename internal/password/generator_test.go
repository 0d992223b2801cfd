package password

import (
	"errors"
	mrand "math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"
)

func seeded(seed byte) Option {
	var key [32]byte
	key[0] = seed
	return WithReader(mrand.NewChaCha8(key))
}

func classesIn(pw string) map[Class]int {
	counts := map[Class]int{}
	for _, r := range pw {
		if c, ok := ClassOf(r); ok {
			counts[c]++
		}
	}
	return counts
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Length != 20 {
		t.Fatalf("expected length 20, got %d", cfg.Length)
	}
	if !cfg.Numbers || !cfg.Lowercase || !cfg.Uppercase || !cfg.Symbols {
		t.Fatalf("expected all four classes enabled, got %#v", cfg)
	}
	if cfg.Spaces || cfg.ExcludeSimilar {
		t.Fatalf("expected spaces and similar exclusion disabled, got %#v", cfg)
	}
	if !cfg.Strict {
		t.Fatalf("expected strict mode")
	}
}

func TestGenerateOneLength(t *testing.T) {
	for _, length := range []int{4, 5, 20, 64, 128} {
		cfg := Default()
		cfg.Length = length
		g, err := New(cfg, seeded(byte(length)))
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", length, err)
		}
		pw, err := g.GenerateOne()
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", length, err)
		}
		if len(pw) != length {
			t.Fatalf("expected %d characters, got %d (%q)", length, len(pw), pw)
		}
	}
}

func TestGenerateSingleClassLength(t *testing.T) {
	cfg := Config{Length: 12, Lowercase: true}
	g, err := New(cfg, seeded(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pw, err := g.GenerateOne()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pw) != 12 {
		t.Fatalf("expected 12 characters, got %q", pw)
	}
	if strings.Trim(pw, lowercase) != "" {
		t.Fatalf("expected only lowercase characters, got %q", pw)
	}
}

func TestStrictModeIncludesEveryClass(t *testing.T) {
	g, err := New(Default(), seeded(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	passwords, err := g.Generate(200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		counts := classesIn(pw)
		for _, class := range []Class{ClassNumber, ClassLowercase, ClassUppercase, ClassSymbol} {
			if counts[class] == 0 {
				t.Fatalf("password %q missing %s character", pw, class)
			}
		}
	}
}

func TestStrictModeMinimumLength(t *testing.T) {
	cfg := Default()
	cfg.Length = 4
	g, err := New(cfg, seeded(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 50; i++ {
		pw, err := g.GenerateOne()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts := classesIn(pw); len(counts) != 4 {
			t.Fatalf("expected one character per class in %q, got %v", pw, counts)
		}
	}
}

func TestNoSpacesWhenDisabled(t *testing.T) {
	g, err := New(Default(), seeded(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	passwords, err := g.Generate(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		if strings.ContainsRune(pw, ' ') {
			t.Fatalf("unexpected space in %q", pw)
		}
	}
}

func TestSpacesIncludedInStrictMode(t *testing.T) {
	cfg := Default()
	cfg.Spaces = true
	g, err := New(cfg, seeded(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pw, err := g.GenerateOne()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.ContainsRune(pw, ' ') {
		t.Fatalf("expected a space in strict password %q", pw)
	}
}

func TestExcludeSimilarCharacters(t *testing.T) {
	cfg := Default()
	cfg.ExcludeSimilar = true
	g, err := New(cfg, seeded(13))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	passwords, err := g.Generate(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		for _, r := range pw {
			if IsSimilar(r) {
				t.Fatalf("password %q contains similar character %q", pw, r)
			}
		}
	}
}

func TestGenerateCount(t *testing.T) {
	g, err := New(Default(), seeded(17))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	passwords, err := g.Generate(25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passwords) != 25 {
		t.Fatalf("expected 25 passwords, got %d", len(passwords))
	}
	for _, pw := range passwords {
		if len(pw) != 20 {
			t.Fatalf("expected 20 characters, got %q", pw)
		}
	}
	if _, err := g.Generate(-1); err == nil {
		t.Fatalf("expected error for negative count")
	}
}

func TestSameSeedIsReproducible(t *testing.T) {
	a, _ := New(Default(), seeded(21))
	b, _ := New(Default(), seeded(21))
	pa, err := a.GenerateOne()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pb, err := b.GenerateOne()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pa != pb {
		t.Fatalf("expected identical output for identical seeds, got %q and %q", pa, pb)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero length", Config{Length: 0, Lowercase: true}, ErrInvalidLength},
		{"negative length", Config{Length: -3, Lowercase: true}, ErrInvalidLength},
		{"no classes", Config{Length: 10}, ErrNoCharacters},
		{"strict too short", Config{Length: 3, Numbers: true, Lowercase: true, Uppercase: true, Symbols: true, Strict: true}, ErrLengthTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if _, err := New(tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("expected New to fail with %v, got %v", tt.want, err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestReaderFailurePropagates(t *testing.T) {
	boom := errors.New("entropy exhausted")
	g, err := New(Default(), WithReader(iotest.ErrReader(boom)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.GenerateOne(); !errors.Is(err, boom) {
		t.Fatalf("expected reader error, got %v", err)
	}
}

func TestClassOf(t *testing.T) {
	cases := map[rune]Class{'7': ClassNumber, 'q': ClassLowercase, 'Q': ClassUppercase, '~': ClassSymbol, ' ': ClassSpace}
	for r, want := range cases {
		got, ok := ClassOf(r)
		if !ok || got != want {
			t.Fatalf("ClassOf(%q) = %v, %v; want %v", r, got, ok, want)
		}
	}
	if _, ok := ClassOf('é'); ok {
		t.Fatalf("expected no class for non-ascii rune")
	}
}
