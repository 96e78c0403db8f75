package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

// MaxCheckLength caps the passwords accepted for scoring.
const MaxCheckLength = 1024

var ErrPasswordTooLong = errors.New("password must be at most 1024 characters")

// StrengthService scores arbitrary passwords.
type StrengthService struct {
	stats *StatsService
}

// NewStrengthService creates a new StrengthService.
func NewStrengthService(stats *StatsService) *StrengthService {
	return &StrengthService{stats: stats}
}

// Check scores req.Password. An empty password is valid input and scores Weak.
func (s *StrengthService) Check(ctx context.Context, req model.StrengthRequest) (model.StrengthResponse, error) {
	if utf8.RuneCountInString(req.Password) > MaxCheckLength {
		return model.StrengthResponse{}, ErrPasswordTooLong
	}

	report := crypto.CheckStrength(req.Password)
	s.stats.Record(ctx, model.KindChecked, report.Label)

	return toStrengthResponse(report), nil
}

func toStrengthResponse(r crypto.StrengthReport) model.StrengthResponse {
	return model.StrengthResponse{
		Label:    string(r.Label),
		Color:    r.Color,
		Score:    r.Score,
		MaxScore: crypto.MaxScore,
		Feedback: r.Feedback,
	}
}
