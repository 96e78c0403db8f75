package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/metrics"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/repository"
)

// StatsService records aggregate usage in the stats store and in Prometheus.
type StatsService struct {
	store   repository.StatsStore
	metrics *metrics.Metrics
}

// NewStatsService creates a new StatsService.
func NewStatsService(store repository.StatsStore, m *metrics.Metrics) *StatsService {
	return &StatsService{store: store, metrics: m}
}

// Record counts one password of the given kind. Store failures are logged
// and never surface to the caller.
func (s *StatsService) Record(ctx context.Context, kind string, label crypto.StrengthLabel) {
	switch kind {
	case model.KindGenerated:
		s.metrics.Generated(string(label))
	case model.KindChecked:
		s.metrics.Checked(string(label))
	}

	if err := s.store.Increment(ctx, kind, string(label)); err != nil {
		slog.Warn("recording stats failed", "backend", s.store.Name(), "kind", kind, "error", err)
	}
}

// GenerationFailed counts a rejected generation request.
func (s *StatsService) GenerationFailed(reason string) {
	s.metrics.GenerationFailed(reason)
}

// Snapshot returns all counters grouped by kind and label. Every known label
// is present for both kinds, with zero when never seen.
func (s *StatsService) Snapshot(ctx context.Context) (model.StatsResponse, error) {
	counters, err := s.store.Snapshot(ctx)
	if err != nil {
		return model.StatsResponse{}, err
	}

	counts := make(map[string]map[string]int64)
	for _, kind := range []string{model.KindGenerated, model.KindChecked} {
		counts[kind] = make(map[string]int64, len(crypto.Labels))
		for _, label := range crypto.Labels {
			counts[kind][string(label)] = 0
		}
	}
	for _, c := range counters {
		if counts[c.Kind] == nil {
			counts[c.Kind] = make(map[string]int64)
		}
		counts[c.Kind][c.Label] = c.Total
	}

	return model.StatsResponse{
		Backend:     s.store.Name(),
		GeneratedAt: time.Now().UTC(),
		Counts:      counts,
	}, nil
}
