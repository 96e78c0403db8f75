package service

import (
	"context"
	"errors"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var (
	ErrLengthTooShort = errors.New("password length is below the minimum")
	ErrLengthTooLong  = errors.New("password length is above the maximum")
)

// GeneratorConfig bounds the lengths callers may request.
type GeneratorConfig struct {
	MinLength     int
	MaxLength     int
	DefaultLength int
	LegacyPatch   bool
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen   *crypto.Generator
	stats *StatsService
	cfg   GeneratorConfig
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *crypto.Generator, stats *StatsService, cfg GeneratorConfig) *GeneratorService {
	return &GeneratorService{gen: gen, stats: stats, cfg: cfg}
}

// Bounds returns the configured length limits.
func (s *GeneratorService) Bounds() GeneratorConfig {
	return s.cfg
}

// Generate produces a password based on the given request, together with
// its strength analysis.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:      req.Length,
		Uppercase:   boolOrDefault(req.Uppercase, true),
		Lowercase:   boolOrDefault(req.Lowercase, true),
		Numbers:     boolOrDefault(req.Numbers, true),
		Symbols:     boolOrDefault(req.Symbols, true),
		LegacyPatch: s.cfg.LegacyPatch,
	}

	if len(opts.Classes()) == 0 {
		s.stats.GenerationFailed("no_character_types")
		return model.GenerateResponse{}, crypto.ErrNoCharacterTypes
	}

	if opts.Length == 0 {
		opts.Length = s.cfg.DefaultLength
	}
	if opts.Length < s.cfg.MinLength {
		s.stats.GenerationFailed("length_too_short")
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if opts.Length > s.cfg.MaxLength {
		s.stats.GenerationFailed("length_too_long")
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	report := crypto.CheckStrength(password)
	s.stats.Record(ctx, model.KindGenerated, report.Label)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: toStrengthResponse(report),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
