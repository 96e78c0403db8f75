package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStatsRepository(t *testing.T) {
	repo := NewMemoryStatsRepository()
	ctx := context.Background()

	require.NoError(t, repo.Increment(ctx, model.KindGenerated, "Strong"))
	require.NoError(t, repo.Increment(ctx, model.KindGenerated, "Strong"))
	require.NoError(t, repo.Increment(ctx, model.KindChecked, "Weak"))
	require.NoError(t, repo.Increment(ctx, model.KindGenerated, "Moderate"))

	counters, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.StatsCounter{
		{Kind: model.KindChecked, Label: "Weak", Total: 1},
		{Kind: model.KindGenerated, Label: "Moderate", Total: 1},
		{Kind: model.KindGenerated, Label: "Strong", Total: 2},
	}, counters)
	assert.Equal(t, "memory", repo.Name())
}

func TestMemoryStatsRepositoryRejectsEmptyKey(t *testing.T) {
	repo := NewMemoryStatsRepository()
	assert.ErrorIs(t, repo.Increment(context.Background(), "", "Weak"), ErrInvalidStatsKey)
	assert.ErrorIs(t, repo.Increment(context.Background(), model.KindChecked, ""), ErrInvalidStatsKey)
}

func TestMemoryStatsRepositoryConcurrentIncrements(t *testing.T) {
	repo := NewMemoryStatsRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Increment(ctx, model.KindChecked, "Weak")
		}()
	}
	wg.Wait()

	counters, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, counters, 1)
	assert.Equal(t, int64(50), counters[0].Total)
}
