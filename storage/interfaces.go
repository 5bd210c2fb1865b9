package storage

import (
	"context"

	"github.com/mycostore/poradnyk/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProductRepository provides operations for managing catalog items.
// The relevance engine never touches this interface directly; it receives a
// snapshot fetched per request by the caller.
type ProductRepository interface {
	Repository

	// PutProducts upserts one or more products.
	// For products with Id=0, generates new IDs from sequence.
	// On update the original InsertedAt is preserved, and an empty incoming
	// Description keeps the stored one (curated descriptions survive feed
	// refreshes). Returns the products with IDs and timestamps populated.
	PutProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// DeleteProducts removes products by their IDs.
	// Also removes associated category index entries.
	// Returns ErrNotFound if any product doesn't exist.
	DeleteProducts(ctx context.Context, ids ...core.ID) error

	// GetProduct retrieves a single product by ID.
	// Returns ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, id core.ID) (*core.Product, error)

	// GetProducts retrieves multiple products by their IDs.
	// Returns only the products that exist (no error for missing products).
	GetProducts(ctx context.Context, ids ...core.ID) ([]*core.Product, error)

	// Snapshot retrieves the full catalog as a read-only snapshot, ordered by
	// ascending ID. This is the per-request input to the relevance engine.
	Snapshot(ctx context.Context) ([]*core.Product, error)

	// GetProductsByCategory retrieves products in an exact category, ordered
	// by ascending ID.
	GetProductsByCategory(ctx context.Context, category string) ([]*core.Product, error)
}
