package relevance

import "github.com/mycostore/poradnyk/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate stages during a Rank call,
// e.g. for debugging why a product did or did not surface.
type RankMonitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	AfterIntentDetection(intents []Intent)
	ProductScored(product *core.Product, score float64)
	AfterScoring(candidates []core.ScoredProduct)
	ThresholdRelaxed(threshold float64)
	Finish(ranking core.Ranking)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                           {}
func (n *noopMonitor) AfterTokenize(_ []string)                 {}
func (n *noopMonitor) AfterIntentDetection(_ []Intent)          {}
func (n *noopMonitor) ProductScored(_ *core.Product, _ float64) {}
func (n *noopMonitor) AfterScoring(_ []core.ScoredProduct)      {}
func (n *noopMonitor) ThresholdRelaxed(_ float64)               {}
func (n *noopMonitor) Finish(_ core.Ranking)                    {}
