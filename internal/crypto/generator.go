package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var ErrNoCharacterTypes = errors.New("at least one character type must be selected")

// CharClass identifies one of the four fixed alphabets a password can draw from.
type CharClass int

const (
	Uppercase CharClass = iota
	Lowercase
	Numbers
	Symbols
)

var classChars = [...]string{uppercaseChars, lowercaseChars, numberChars, symbolChars}

// Chars returns the alphabet of the class.
func (c CharClass) Chars() string {
	return classChars[c]
}

func (c CharClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// classOf reports the class of a character produced by the generator.
// Every generated byte belongs to exactly one class.
func classOf(ch byte) CharClass {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return Uppercase
	case ch >= 'a' && ch <= 'z':
		return Lowercase
	case ch >= '0' && ch <= '9':
		return Numbers
	}
	return Symbols
}

// Source supplies the randomness for a Generator. *math/rand/v2.Rand
// satisfies it, which lets tests use a seeded source.
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n).
func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		panic("crypto: reading random source: " + err.Error())
	}
	return int(v.Int64())
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	// LegacyPatch writes every missing class at index 0, in the fixed order
	// uppercase, lowercase, numbers, symbols. A later patch overwrites an
	// earlier one, so the result may still miss a selected class.
	LegacyPatch bool
}

// DefaultOptions returns 12 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Classes returns the selected classes in pool order.
func (o GeneratorOptions) Classes() []CharClass {
	var classes []CharClass
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Numbers {
		classes = append(classes, Numbers)
	}
	if o.Symbols {
		classes = append(classes, Symbols)
	}
	return classes
}

// Generator produces passwords from an injected random source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil source means CryptoSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password with the package-level crypto-backed generator.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate draws opts.Length characters uniformly from the union of the
// selected classes, then patches in any selected class the draw missed.
// A non-positive length yields an empty password.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	classes := opts.Classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterTypes
	}

	var pool strings.Builder
	for _, c := range classes {
		pool.WriteString(c.Chars())
	}
	alphabet := pool.String()

	if opts.Length <= 0 {
		return "", nil
	}

	result := make([]byte, opts.Length)
	for i := range result {
		result[i] = g.pick(alphabet)
	}

	if opts.LegacyPatch {
		g.patchFirst(result, classes)
	} else {
		g.patchDistinct(result, classes)
	}

	return string(result), nil
}

// patchFirst overwrites index 0 once per missing class.
func (g *Generator) patchFirst(result []byte, classes []CharClass) {
	for _, c := range classes {
		if !bytes.ContainsAny(result, c.Chars()) {
			result[0] = g.pick(c.Chars())
		}
	}
}

// patchDistinct writes each missing class at its own random position. A
// position is only reused when its character is not the last of its class,
// so with len(result) >= len(classes) every selected class ends up present.
func (g *Generator) patchDistinct(result []byte, classes []CharClass) {
	var counts [len(classChars)]int
	for _, ch := range result {
		counts[classOf(ch)]++
	}

	positions := g.perm(len(result))
	next := 0
	for _, c := range classes {
		if counts[c] > 0 {
			continue
		}
		for ; next < len(positions); next++ {
			i := positions[next]
			owner := classOf(result[i])
			if counts[owner] > 1 {
				counts[owner]--
				result[i] = g.pick(c.Chars())
				counts[c]++
				next++
				break
			}
		}
	}
}

func (g *Generator) pick(charset string) byte {
	return charset[g.src.IntN(len(charset))]
}

// perm returns a Fisher-Yates shuffled slice of [0, n).
func (g *Generator) perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
