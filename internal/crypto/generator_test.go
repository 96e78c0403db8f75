package crypto

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

// zeroSource always returns 0, so the draw is the first character of the pool
// and every Fisher-Yates swap picks index 0.
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name: "default options",
			opts: DefaultOptions(),
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
		},
		{
			name: "uppercase only",
			opts: GeneratorOptions{Length: 16, Uppercase: true},
		},
		{
			name: "single character",
			opts: GeneratorOptions{Length: 1, Lowercase: true, Numbers: true},
		},
		{
			name: "shorter than selected classes",
			opts: GeneratorOptions{Length: 2, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
		},
		{
			name: "legacy patch",
			opts: GeneratorOptions{Length: 4, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, LegacyPatch: true},
		},
		{
			name:    "no character types selected",
			opts:    GeneratorOptions{Length: 16},
			wantErr: ErrNoCharacterTypes,
		},
		{
			name:    "no character types with zero length",
			opts:    GeneratorOptions{},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := seeded(7).Generate(tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -3} {
		result, err := seeded(1).Generate(GeneratorOptions{Length: n, Uppercase: true})
		if err != nil {
			t.Fatalf("Generate(length=%d) unexpected error: %v", n, err)
		}
		if result != "" {
			t.Errorf("Generate(length=%d) = %q, want empty", n, result)
		}
	}
}

func TestGenerateDrawsFromSelectedPool(t *testing.T) {
	opts := GeneratorOptions{Lowercase: true, Symbols: true}
	pool := lowercaseChars + symbolChars

	for seed := uint64(0); seed < 50; seed++ {
		opts.Length = int(seed%32) + 1
		password, err := seeded(seed).Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != opts.Length {
			t.Fatalf("Generate() length = %d, want %d", len(password), opts.Length)
		}
		for _, ch := range password {
			if !strings.ContainsRune(pool, ch) {
				t.Errorf("password %q contains %q outside the selected pool", password, ch)
			}
		}
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		opts := DefaultOptions()
		opts.Length = int(seed%29) + 4

		password, err := seeded(seed).Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		if !strings.ContainsAny(password, uppercaseChars) {
			t.Errorf("password %q missing uppercase character", password)
		}
		if !strings.ContainsAny(password, lowercaseChars) {
			t.Errorf("password %q missing lowercase character", password)
		}
		if !strings.ContainsAny(password, numberChars) {
			t.Errorf("password %q missing number character", password)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("password %q missing symbol character", password)
		}
	}
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{"uppercase only", GeneratorOptions{Length: 32, Uppercase: true}, uppercaseChars},
		{"lowercase only", GeneratorOptions{Length: 32, Lowercase: true}, lowercaseChars},
		{"numbers only", GeneratorOptions{Length: 32, Numbers: true}, numberChars},
		{"symbols only", GeneratorOptions{Length: 32, Symbols: true}, symbolChars},
		{"legacy numbers only", GeneratorOptions{Length: 5, Numbers: true, LegacyPatch: true}, numberChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	opts := DefaultOptions()
	a, err := seeded(42).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	b, err := seeded(42).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestPatchFirstSingleMissingClass(t *testing.T) {
	g := NewGenerator(zeroSource{})
	password, err := g.Generate(GeneratorOptions{Length: 3, Uppercase: true, Numbers: true, LegacyPatch: true})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "0AA" {
		t.Errorf("Generate() = %q, want %q", password, "0AA")
	}
}

func TestPatchFirstClobbersEarlierPatches(t *testing.T) {
	g := NewGenerator(zeroSource{})
	password, err := g.Generate(GeneratorOptions{Length: 4, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, LegacyPatch: true})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	// Lowercase and numbers were written at index 0 and then overwritten.
	if password != "!AAA" {
		t.Errorf("Generate() = %q, want %q", password, "!AAA")
	}
	if strings.ContainsAny(password, lowercaseChars) {
		t.Errorf("expected lowercase patch to be clobbered in %q", password)
	}
}

func TestPatchFirstSingleCharacterEndsOnLastClass(t *testing.T) {
	opts := GeneratorOptions{Length: 1, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, LegacyPatch: true}
	for seed := uint64(0); seed < 50; seed++ {
		password, err := seeded(seed).Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("Generate() = %q, want a symbol", password)
		}
	}
}

func TestPatchDistinctUsesSeparatePositions(t *testing.T) {
	g := NewGenerator(zeroSource{})
	password, err := g.Generate(GeneratorOptions{Length: 4, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "Aa0!" {
		t.Errorf("Generate() = %q, want %q", password, "Aa0!")
	}
}

func TestPatchDistinctSingleMissingClass(t *testing.T) {
	g := NewGenerator(zeroSource{})
	password, err := g.Generate(GeneratorOptions{Length: 3, Uppercase: true, Numbers: true})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if password != "A0A" {
		t.Errorf("Generate() = %q, want %q", password, "A0A")
	}
}

func TestGeneratedSymbolsCountAsSpecial(t *testing.T) {
	for _, ch := range symbolChars {
		if !strings.ContainsRune(punctuationChars, ch) {
			t.Errorf("symbol %q is not recognised by the strength scorer", ch)
		}
	}
}

func TestGeneratedPasswordsPassClassChecks(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		opts := DefaultOptions()
		opts.Length = int(seed%29) + 4

		password, err := seeded(seed).Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		report := CheckStrength(password)
		for _, line := range report.Feedback[1:] {
			if !strings.HasPrefix(line, "✅") {
				t.Errorf("password %q failed check %q", password, line)
			}
		}
	}
}

func TestCharClassString(t *testing.T) {
	want := map[CharClass]string{
		Uppercase:     "uppercase",
		Lowercase:     "lowercase",
		Numbers:       "numbers",
		Symbols:       "symbols",
		CharClass(99): "unknown",
	}
	for c, s := range want {
		if c.String() != s {
			t.Errorf("CharClass(%d).String() = %q, want %q", int(c), c.String(), s)
		}
	}
}
