package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/passgen/passgen-go/internal/model"
)

var ErrInvalidStatsKey = errors.New("stats kind and label must not be empty")

// StatsStore keeps aggregate counters of scored passwords. Passwords
// themselves are never stored.
type StatsStore interface {
	Increment(ctx context.Context, kind, label string) error
	Snapshot(ctx context.Context) ([]model.StatsCounter, error)
	Name() string
}

// MemoryStatsRepository is a process-local StatsStore.
type MemoryStatsRepository struct {
	mu     sync.Mutex
	counts map[statsKey]int64
}

type statsKey struct {
	kind  string
	label string
}

// NewMemoryStatsRepository creates an empty MemoryStatsRepository.
func NewMemoryStatsRepository() *MemoryStatsRepository {
	return &MemoryStatsRepository{counts: make(map[statsKey]int64)}
}

func (r *MemoryStatsRepository) Name() string { return "memory" }

// Increment adds one to the counter for kind and label.
func (r *MemoryStatsRepository) Increment(_ context.Context, kind, label string) error {
	if kind == "" || label == "" {
		return ErrInvalidStatsKey
	}
	r.mu.Lock()
	r.counts[statsKey{kind, label}]++
	r.mu.Unlock()
	return nil
}

// Snapshot returns every counter ordered by kind, then label.
func (r *MemoryStatsRepository) Snapshot(_ context.Context) ([]model.StatsCounter, error) {
	r.mu.Lock()
	counters := make([]model.StatsCounter, 0, len(r.counts))
	for k, total := range r.counts {
		counters = append(counters, model.StatsCounter{Kind: k.kind, Label: k.label, Total: total})
	}
	r.mu.Unlock()

	sortCounters(counters)
	return counters, nil
}

func sortCounters(counters []model.StatsCounter) {
	sort.Slice(counters, func(i, j int) bool {
		if counters[i].Kind != counters[j].Kind {
			return counters[i].Kind < counters[j].Kind
		}
		return counters[i].Label < counters[j].Label
	})
}
