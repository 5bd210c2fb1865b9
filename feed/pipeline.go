package feed

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/mycostore/poradnyk/core"
	"github.com/mycostore/poradnyk/storage"
	"github.com/panjf2000/ants/v2"
)

// ImportStats summarizes a feed import run.
type ImportStats struct {
	// Parsed is the number of offers read from the feed.
	Parsed int

	// Imported is the number of products successfully upserted.
	Imported int

	// Failed is the number of products whose batch failed after retries.
	Failed int
}

// Pipeline imports parsed feed offers into the product store.
// It processes batches concurrently on a worker pool.
type Pipeline struct {
	products    storage.ProductRepository
	pool        *ants.Pool
	batchSize   int
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many products go into one upsert batch.
// Default is 50.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithRetry sets the retry policy for failed batches.
// Defaults are 3 attempts with a 500ms base delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(products storage.ProductRepository, opts ...Option) (*Pipeline, error) {
	if products == nil {
		return nil, ErrProductRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		products:    products,
		pool:        pool,
		batchSize:   50,
		maxAttempts: 3,
		baseDelay:   500 * time.Millisecond,
		logger:      slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Import parses a feed and upserts its products in concurrent batches.
// The tracker may be nil. A batch that still fails after retries is counted
// in stats.Failed and logged; it does not abort the rest of the import.
func (p *Pipeline) Import(ctx context.Context, r io.Reader, tracker *ProgressTracker) (*ImportStats, error) {
	products, err := ParseCatalog(r)
	if err != nil {
		return nil, err
	}
	return p.ImportProducts(ctx, products, tracker)
}

// ImportProducts upserts already-parsed products in concurrent batches.
// Callers that need a progress tracker sized to the product count parse with
// ParseCatalog first and use this entry point.
func (p *Pipeline) ImportProducts(ctx context.Context, products []*core.Product, tracker *ProgressTracker) (*ImportStats, error) {
	stats := &ImportStats{Parsed: len(products)}
	if len(products) == 0 {
		p.logger.Warn("feed contained no offers")
		return stats, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for start := 0; start < len(products); start += p.batchSize {
		end := start + p.batchSize
		if end > len(products) {
			end = len(products)
		}
		batch := products[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			err := RetryWithBackoff(ctx, func() error {
				_, putErr := p.products.PutProducts(ctx, batch...)
				return putErr
			}, p.maxAttempts, p.baseDelay)

			mu.Lock()
			if err != nil {
				stats.Failed += len(batch)
				p.logger.Error("batch import failed", "size", len(batch), "err", err)
			} else {
				stats.Imported += len(batch)
			}
			mu.Unlock()

			if tracker != nil {
				tracker.Increment(len(batch))
			}
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}

	wg.Wait()

	p.logger.Info("feed import finished",
		"parsed", stats.Parsed,
		"imported", stats.Imported,
		"failed", stats.Failed)
	return stats, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
