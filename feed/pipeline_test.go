package feed

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mycostore/poradnyk/core"
	"github.com/mycostore/poradnyk/storage"
	"github.com/mycostore/poradnyk/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.ProductRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestNewPipeline(t *testing.T) {
	repo := newTestStore(t)

	t.Run("valid configuration", func(t *testing.T) {
		p, err := NewPipeline(repo, WithPoolSize(2), WithBatchSize(10))
		require.NoError(t, err)
		defer p.Release()
		assert.NotNil(t, p)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil)
		assert.Equal(t, ErrProductRepositoryRequired, err)
	})

	t.Run("invalid retry policy", func(t *testing.T) {
		_, err := NewPipeline(repo, WithRetry(0, time.Millisecond))
		assert.Equal(t, ErrInvalidMaxAttempts, err)
	})
}

func TestImport(t *testing.T) {
	repo := newTestStore(t)

	p, err := NewPipeline(repo, WithBatchSize(1))
	require.NoError(t, err)
	defer p.Release()

	stats, err := p.Import(context.Background(), strings.NewReader(ymlFeed), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Parsed)
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 0, stats.Failed)

	snapshot, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, core.ID(101), snapshot[0].Id)
	assert.Equal(t, core.ID(102), snapshot[1].Id)
}

func TestImportPreservesCuratedDescription(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	p, err := NewPipeline(repo)
	require.NoError(t, err)
	defer p.Release()

	_, err = p.Import(ctx, strings.NewReader(ymlFeed), nil)
	require.NoError(t, err)

	// Curate the description of the D3 product, which the feed leaves blank
	product, err := repo.GetProduct(ctx, core.ID(102))
	require.NoError(t, err)
	product.Description = "Авторський опис"
	_, err = repo.PutProducts(ctx, product)
	require.NoError(t, err)

	// Re-import the same feed
	_, err = p.Import(ctx, strings.NewReader(ymlFeed), nil)
	require.NoError(t, err)

	refreshed, err := repo.GetProduct(ctx, core.ID(102))
	require.NoError(t, err)
	assert.Equal(t, "Авторський опис", refreshed.Description)
}

func TestImportEmptyFeed(t *testing.T) {
	repo := newTestStore(t)

	p, err := NewPipeline(repo)
	require.NoError(t, err)
	defer p.Release()

	stats, err := p.Import(context.Background(), strings.NewReader("<offers></offers>"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Parsed)
	assert.Equal(t, 0, stats.Imported)
}

func TestImportMalformedFeed(t *testing.T) {
	repo := newTestStore(t)

	p, err := NewPipeline(repo)
	require.NoError(t, err)
	defer p.Release()

	_, err = p.Import(context.Background(), strings.NewReader("not xml at all <"), nil)
	assert.ErrorIs(t, err, ErrMalformedFeed)
}

func TestImportReportsProgress(t *testing.T) {
	repo := newTestStore(t)

	p, err := NewPipeline(repo, WithBatchSize(1))
	require.NoError(t, err)
	defer p.Release()

	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 2, 1)
	tracker.Start()

	_, err = p.Import(context.Background(), strings.NewReader(ymlFeed), tracker)
	require.NoError(t, err)
	tracker.Finish()

	assert.Contains(t, buf.String(), "2/2")
}
