package ai

import (
	"context"

	"github.com/mycostore/poradnyk/core"
)

// Assistant turns a customer message and a set of ranked product cards into
// a conversational recommendation. Implementations must be thread-safe for
// concurrent use.
type Assistant interface {
	// Reply generates an answer to the customer message, recommending only
	// products from the provided cards. The cards are the output of the
	// relevance engine; the assistant must not invent products outside them.
	// Returns an error if the generation fails.
	Reply(ctx context.Context, message string, cards []core.ProductCard) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// Assistant returns the recommendation service.
	// The returned Assistant is safe for concurrent use.
	Assistant() Assistant

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
