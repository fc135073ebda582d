package shortener

import "github.com/jaevor/go-nanoid"

// Generator produces random slug and key candidates from the lowercase
// alphanumeric alphabet. Both draw from crypto/rand: the key doubles as an
// access-control secret, so its source must be unpredictable.
type Generator struct {
	newSlug func() string
	newKey  func() string
}

// NewGenerator creates a generator for 5-character slugs and 20-character keys.
func NewGenerator() (*Generator, error) {
	newSlug, err := nanoid.CustomASCII(Alphabet, SlugLength)
	if err != nil {
		return nil, err
	}

	newKey, err := nanoid.CustomASCII(Alphabet, KeyLength)
	if err != nil {
		return nil, err
	}

	return &Generator{
		newSlug: newSlug,
		newKey:  newKey,
	}, nil
}

// Slug returns a fresh random slug candidate.
func (g *Generator) Slug() Slug {
	return Slug(g.newSlug())
}

// Key returns a fresh random key candidate.
func (g *Generator) Key() Key {
	return Key(g.newKey())
}
