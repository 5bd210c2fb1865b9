package chat

import (
	"context"
	"log/slog"

	"github.com/mycostore/poradnyk/ai"
	"github.com/mycostore/poradnyk/core"
	"github.com/mycostore/poradnyk/relevance"
	"github.com/mycostore/poradnyk/storage"
)

// Default texts used when the assistant cannot help.
const (
	// DefaultClarifyText is returned when the ranking comes back empty.
	DefaultClarifyText = "Підкажіть, будь ласка, що саме вас цікавить: сон, енергія, імунітет, концентрація чи щось інше?"

	// DefaultFallbackText accompanies the cards when the language model is
	// unavailable.
	DefaultFallbackText = "Вибачте, зараз не можу написати розгорнуту пораду. Ось товари, які можуть вам підійти."
)

// Advice is the advisory layer's answer to a customer message.
type Advice struct {
	// Reply is the conversational text shown to the customer.
	Reply string

	// Cards are the ranked products backing the reply, best match first.
	// Empty when the catalog had no lexical match for the message.
	Cards []core.ProductCard

	// Generated reports whether Reply came from the language model.
	// False for the clarifying and fallback texts.
	Generated bool
}

// Advisor answers customer messages with product recommendations grounded in
// the catalog.
type Advisor struct {
	products  storage.ProductRepository
	engine    *relevance.Engine
	assistant ai.Assistant

	clarifyText  string
	fallbackText string
	logger       *slog.Logger
}

// Option configures an Advisor.
type Option func(*Advisor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Advisor) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithClarifyText overrides the message returned when no products match.
func WithClarifyText(text string) Option {
	return func(a *Advisor) error {
		a.clarifyText = text
		return nil
	}
}

// WithFallbackText overrides the message that accompanies the cards when the
// language model call fails.
func WithFallbackText(text string) Option {
	return func(a *Advisor) error {
		a.fallbackText = text
		return nil
	}
}

// NewAdvisor creates a new advisor.
func NewAdvisor(
	products storage.ProductRepository,
	engine *relevance.Engine,
	assistant ai.Assistant,
	opts ...Option,
) (*Advisor, error) {
	if products == nil {
		return nil, ErrProductRepositoryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if assistant == nil {
		return nil, ErrAssistantRequired
	}

	a := &Advisor{
		products:     products,
		engine:       engine,
		assistant:    assistant,
		clarifyText:  DefaultClarifyText,
		fallbackText: DefaultFallbackText,
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Advise answers a customer message.
// It returns an error only for storage failures; language-model failures
// degrade to the fallback text with the cards intact.
func (a *Advisor) Advise(ctx context.Context, message string) (*Advice, error) {
	snapshot, err := a.products.Snapshot(ctx)
	if err != nil {
		a.logger.Error("error loading catalog snapshot", "err", err)
		return nil, err
	}

	ranking := a.engine.Rank(message, snapshot)
	if len(ranking) == 0 {
		a.logger.Debug("no lexical match for message", "catalog", len(snapshot))
		return &Advice{Reply: a.clarifyText}, nil
	}

	cards := make([]core.ProductCard, 0, len(ranking))
	for _, scored := range ranking {
		cards = append(cards, core.CardForProduct(scored.Product))
	}

	reply, err := a.assistant.Reply(ctx, message, cards)
	if err != nil {
		// The ranking is still good; only the prose failed
		a.logger.Warn("assistant unavailable, returning cards with fallback text", "err", err)
		return &Advice{Reply: a.fallbackText, Cards: cards}, nil
	}

	return &Advice{Reply: reply, Cards: cards, Generated: true}, nil
}
