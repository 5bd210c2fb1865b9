package relevance

import (
	"slices"

	"github.com/mycostore/poradnyk/core"
)

// Thresholds holds the adaptive cutoff constants. Like Weights, these are
// hand-tuned production values.
type Thresholds struct {
	Min          float64 // absolute floor for the initial cutoff
	TopRatio     float64 // initial cutoff as a fraction of the top score
	RelaxedMin   float64 // floor after the single relax step
	RelaxedRatio float64 // relaxed fraction of the top score
}

// DefaultThresholds returns the production selection constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Min:          10.0,
		TopRatio:     0.45,
		RelaxedMin:   8.0,
		RelaxedRatio: 0.30,
	}
}

// selectRanked ranks candidates and applies the adaptive threshold: keep
// items scoring at least max(Min, top·TopRatio); if fewer than two survive,
// refilter the full sorted list once at max(RelaxedMin, top·RelaxedRatio);
// then truncate to the ranking bound. Ties break on ascending product id so
// repeated identical queries return identical results.
func (e *Engine) selectRanked(candidates []core.ScoredProduct, monitor RankMonitor) core.Ranking {
	if len(candidates) == 0 {
		return core.Ranking{}
	}

	slices.SortFunc(candidates, func(a, b core.ScoredProduct) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		case a.Product.Id < b.Product.Id:
			return -1
		case a.Product.Id > b.Product.Id:
			return 1
		}
		return 0
	})

	top := candidates[0].Score
	threshold := max(e.thresholds.Min, top*e.thresholds.TopRatio)
	kept := keepAtLeast(candidates, threshold)

	if len(kept) < 2 {
		threshold = max(e.thresholds.RelaxedMin, top*e.thresholds.RelaxedRatio)
		monitor.ThresholdRelaxed(threshold)
		kept = keepAtLeast(candidates, threshold)
	}

	if len(kept) > core.MaxRankingSize {
		kept = kept[:core.MaxRankingSize]
	}

	ranking := make(core.Ranking, len(kept))
	copy(ranking, kept)
	return ranking
}

// keepAtLeast returns the prefix of the sorted candidates whose score is at
// least threshold.
func keepAtLeast(sorted []core.ScoredProduct, threshold float64) []core.ScoredProduct {
	for i, candidate := range sorted {
		if candidate.Score < threshold {
			return sorted[:i]
		}
	}
	return sorted
}
