package relevance

import (
	"log/slog"

	"github.com/mycostore/poradnyk/core"
)

// Engine ranks catalog items against free-text queries. All configuration is
// read-only after construction, so a single Engine is safe for concurrent use.
type Engine struct {
	stemmer      Stemmer
	weights      Weights
	thresholds   Thresholds
	boosts       map[Intent][]IntentBoost
	genericTerms []string
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithStemmer swaps the token stemmer, e.g. for a proper morphological
// implementation. The default is NewSuffixStemmer().
func WithStemmer(stemmer Stemmer) Option {
	return func(e *Engine) error {
		if stemmer == nil {
			return ErrStemmerRequired
		}
		e.stemmer = stemmer
		return nil
	}
}

// WithWeights overrides the scoring constants.
func WithWeights(weights Weights) Option {
	return func(e *Engine) error {
		e.weights = weights
		return nil
	}
}

// WithThresholds overrides the selection constants.
func WithThresholds(thresholds Thresholds) Option {
	return func(e *Engine) error {
		e.thresholds = thresholds
		return nil
	}
}

// WithIntentBoosts overrides the intent boost table.
func WithIntentBoosts(boosts map[Intent][]IntentBoost) Option {
	return func(e *Engine) error {
		e.boosts = boosts
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a relevance engine with production defaults.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		stemmer:      NewSuffixStemmer(),
		weights:      DefaultWeights(),
		thresholds:   DefaultThresholds(),
		boosts:       defaultIntentBoosts,
		genericTerms: genericTerms,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Rank scores every product in the catalog snapshot against the query and
// returns the ranked, thresholded, bounded result. It is a pure function of
// its inputs: an empty query, an all-stopword query, or an empty catalog all
// yield an empty ranking without error.
func (e *Engine) Rank(query string, catalog []*core.Product) core.Ranking {
	return e.RankWithMonitor(query, catalog, nil)
}

// RankWithMonitor ranks with observation hooks. The monitor receives
// callbacks at each pipeline stage; pass nil for no monitoring.
func (e *Engine) RankWithMonitor(query string, catalog []*core.Product, monitor RankMonitor) core.Ranking {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	normalized := Normalize(query)

	// Stem, then dedupe keeping first-occurrence order: the order feeds the
	// adjacent-pair phrase bonus.
	raw := Tokenize(query)
	stemmed := make([]string, len(raw))
	for i, token := range raw {
		stemmed[i] = e.stemmer.Stem(token)
	}
	tokens := DedupeTokens(stemmed)
	monitor.AfterTokenize(tokens)

	if len(tokens) == 0 {
		e.logger.Debug("query reduced to no tokens", "query", query)
		monitor.Finish(core.Ranking{})
		return core.Ranking{}
	}

	intents := DetectIntents(normalized)
	monitor.AfterIntentDetection(intents)

	patterns := compilePatterns(tokens)

	var candidates []core.ScoredProduct
	for _, product := range catalog {
		if product == nil {
			continue
		}
		score := e.scoreProduct(newItemText(product), patterns, tokens, intents)
		if score > 0 {
			candidates = append(candidates, core.ScoredProduct{Product: product, Score: score})
			monitor.ProductScored(product, score)
		}
	}
	monitor.AfterScoring(candidates)

	ranking := e.selectRanked(candidates, monitor)
	e.logger.Debug("ranked catalog", "query", query, "tokens", len(tokens), "intents", len(intents), "candidates", len(candidates), "ranked", len(ranking))
	monitor.Finish(ranking)
	return ranking
}
