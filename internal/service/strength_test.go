package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/passgen/passgen-go/internal/metrics"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/repository"
)

func TestCheck(t *testing.T) {
	store := repository.NewMemoryStatsRepository()
	svc := NewStrengthService(NewStatsService(store, metrics.New()))

	tests := []struct {
		password  string
		wantLabel string
		wantColor string
		wantScore int
	}{
		{"", "Weak", "red", 0},
		{"abcdefgh", "Weak", "red", 3},
		{"Abcdefg1", "Moderate", "orange", 5},
		{"Abcdefghijk1!", "Strong", "green", 7},
	}

	for _, tt := range tests {
		resp, err := svc.Check(context.Background(), model.StrengthRequest{Password: tt.password})
		if err != nil {
			t.Fatalf("Check(%q) unexpected error: %v", tt.password, err)
		}
		if resp.Label != tt.wantLabel || resp.Color != tt.wantColor || resp.Score != tt.wantScore {
			t.Errorf("Check(%q) = %s/%s/%d, want %s/%s/%d",
				tt.password, resp.Label, resp.Color, resp.Score, tt.wantLabel, tt.wantColor, tt.wantScore)
		}
		if len(resp.Feedback) != 5 {
			t.Errorf("Check(%q) feedback lines = %d, want 5", tt.password, len(resp.Feedback))
		}
	}

	counters, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var weak int64
	for _, c := range counters {
		if c.Kind == model.KindChecked && c.Label == "Weak" {
			weak = c.Total
		}
	}
	if weak != 2 {
		t.Errorf("expected 2 weak checks recorded, got %d", weak)
	}
}

func TestCheck_TooLong(t *testing.T) {
	svc := NewStrengthService(NewStatsService(repository.NewMemoryStatsRepository(), metrics.New()))

	if _, err := svc.Check(context.Background(), model.StrengthRequest{Password: strings.Repeat("a", MaxCheckLength)}); err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}

	_, err := svc.Check(context.Background(), model.StrengthRequest{Password: strings.Repeat("a", MaxCheckLength+1)})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
}
