package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	ErrInvalidLength  = errors.New("password length must be positive")
	ErrNoCharacters   = errors.New("no character classes enabled")
	ErrLengthTooShort = errors.New("password length too short for strict mode")
)

// Config describes the shape of generated passwords.
type Config struct {
	Length         int
	Numbers        bool
	Lowercase      bool
	Uppercase      bool
	Symbols        bool
	Spaces         bool
	ExcludeSimilar bool
	Strict         bool
}

// Default returns the configuration used by the popup: 20 characters drawn
// from digits, both letter cases and symbols, with every class present.
func Default() Config {
	return Config{
		Length:    20,
		Numbers:   true,
		Lowercase: true,
		Uppercase: true,
		Symbols:   true,
		Strict:    true,
	}
}

// Validate reports whether the configuration can produce a password.
func (c Config) Validate() error {
	_, err := c.pools()
	return err
}

func (c Config) pools() ([]pool, error) {
	if c.Length <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLength, c.Length)
	}
	enabled := []struct {
		on    bool
		class Class
	}{
		{c.Numbers, ClassNumber},
		{c.Lowercase, ClassLowercase},
		{c.Uppercase, ClassUppercase},
		{c.Symbols, ClassSymbol},
		{c.Spaces, ClassSpace},
	}
	pools := make([]pool, 0, len(enabled))
	for _, e := range enabled {
		if !e.on {
			continue
		}
		chars := charsFor(e.class, c.ExcludeSimilar)
		if len(chars) == 0 {
			continue
		}
		pools = append(pools, pool{class: e.class, chars: chars})
	}
	if len(pools) == 0 {
		return nil, ErrNoCharacters
	}
	if c.Strict && c.Length < len(pools) {
		return nil, fmt.Errorf("%w: %d classes need at least %d characters (got %d)", ErrLengthTooShort, len(pools), len(pools), c.Length)
	}
	return pools, nil
}

type pool struct {
	class Class
	chars []byte
}

// Generator produces random passwords for a fixed configuration.
type Generator struct {
	cfg   Config
	pools []pool
	all   []byte
	rand  io.Reader
}

// Option customises a Generator.
type Option func(*Generator)

// WithReader replaces the randomness source. Tests use it to make output
// reproducible.
func WithReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// New validates cfg and returns a generator for it.
func New(cfg Config, opts ...Option) (*Generator, error) {
	pools, err := cfg.pools()
	if err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, pools: pools, rand: rand.Reader}
	for _, p := range pools {
		g.all = append(g.all, p.chars...)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() Config {
	return g.cfg
}

// GenerateOne returns a single password.
func (g *Generator) GenerateOne() (string, error) {
	out := make([]byte, 0, g.cfg.Length)
	if g.cfg.Strict {
		for _, p := range g.pools {
			c, err := g.pick(p.chars)
			if err != nil {
				return "", err
			}
			out = append(out, c)
		}
	}
	for len(out) < g.cfg.Length {
		c, err := g.pick(g.all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	if g.cfg.Strict {
		if err := g.shuffle(out); err != nil {
			return "", err
		}
	}
	return string(out), nil
}

// Generate returns n passwords.
func (g *Generator) Generate(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid password count %d", n)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pw, err := g.GenerateOne()
		if err != nil {
			return out, err
		}
		out = append(out, pw)
	}
	return out, nil
}

func (g *Generator) pick(chars []byte) (byte, error) {
	i, err := g.intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

// shuffle is a Fisher-Yates pass so the guaranteed characters do not always
// lead the password.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
