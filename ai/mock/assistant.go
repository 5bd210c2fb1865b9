package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/mycostore/poradnyk/ai"
	"github.com/mycostore/poradnyk/core"
)

// MockAssistant is a test double for ai.Assistant.
// It allows custom behavior injection via function fields.
type MockAssistant struct {
	// ReplyFunc is called by Reply if set.
	// If nil, uses a default canned reply naming the offered products.
	ReplyFunc func(ctx context.Context, message string, cards []core.ProductCard) (string, error)

	callCount int
	lastCards []core.ProductCard
}

var _ ai.Assistant = (*MockAssistant)(nil)

// NewMockAssistant creates a mock assistant with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAssistant() *MockAssistant {
	return &MockAssistant{}
}

// Reply records the call and generates a deterministic reply.
func (m *MockAssistant) Reply(ctx context.Context, message string, cards []core.ProductCard) (string, error) {
	m.callCount++
	m.lastCards = cards

	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, message, cards)
	}

	if len(cards) == 0 {
		return "Нічого підібрати не вдалося.", nil
	}

	names := make([]string, 0, len(cards))
	for _, card := range cards {
		names = append(names, card.Name)
	}
	return fmt.Sprintf("Раджу звернути увагу на: %s.", strings.Join(names, ", ")), nil
}

// CallCount returns the number of times Reply was called.
func (m *MockAssistant) CallCount() int {
	return m.callCount
}

// LastCards returns the cards passed to the most recent Reply call.
func (m *MockAssistant) LastCards() []core.ProductCard {
	return m.lastCards
}

// Reset clears the recorded calls.
func (m *MockAssistant) Reset() {
	m.callCount = 0
	m.lastCards = nil
}
