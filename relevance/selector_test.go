package relevance

import (
	"testing"

	"github.com/mycostore/poradnyk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(id core.ID, score float64) core.ScoredProduct {
	return core.ScoredProduct{
		Product: &core.Product{Id: id, Name: "item"},
		Score:   score,
	}
}

func rankingIDs(r core.Ranking) []core.ID {
	ids := make([]core.ID, len(r))
	for i, s := range r {
		ids[i] = s.Product.Id
	}
	return ids
}

func TestSelectRanked(t *testing.T) {
	engine := newTestEngine(t)
	noop := &noopMonitor{}

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, engine.selectRanked(nil, noop))
	})

	t.Run("initial threshold keeps close scores", func(t *testing.T) {
		// top=20 -> threshold max(10, 9) = 10; 20 and 19 pass, 9 does not.
		ranking := engine.selectRanked([]core.ScoredProduct{
			scored(1, 20), scored(2, 19), scored(3, 9),
		}, noop)
		assert.Equal(t, []core.ID{1, 2}, rankingIDs(ranking))
	})

	t.Run("relaxes when only one survives", func(t *testing.T) {
		// top=20 -> threshold 10 keeps only the top item; relaxed threshold
		// max(8, 6) = 8 readmits the runner-up from the full sorted list.
		ranking := engine.selectRanked([]core.ScoredProduct{
			scored(1, 20), scored(2, 8.5),
		}, noop)
		assert.Equal(t, []core.ID{1, 2}, rankingIDs(ranking))
	})

	t.Run("no relaxation when two survive", func(t *testing.T) {
		relaxed := false
		monitor := &recordingMonitor{onRelax: func(float64) { relaxed = true }}
		ranking := engine.selectRanked([]core.ScoredProduct{
			scored(1, 20), scored(2, 19), scored(3, 9),
		}, monitor)
		assert.Len(t, ranking, 2)
		assert.False(t, relaxed)
	})

	t.Run("everything below the floor yields empty", func(t *testing.T) {
		ranking := engine.selectRanked([]core.ScoredProduct{
			scored(1, 5), scored(2, 3),
		}, noop)
		assert.Empty(t, ranking)
	})

	t.Run("truncates to six", func(t *testing.T) {
		candidates := make([]core.ScoredProduct, 0, 8)
		for i := 1; i <= 8; i++ {
			candidates = append(candidates, scored(core.ID(i), 50-float64(i)))
		}
		ranking := engine.selectRanked(candidates, noop)
		require.Len(t, ranking, core.MaxRankingSize)
		assert.Equal(t, []core.ID{1, 2, 3, 4, 5, 6}, rankingIDs(ranking))
	})

	t.Run("ties break on ascending id", func(t *testing.T) {
		ranking := engine.selectRanked([]core.ScoredProduct{
			scored(9, 15), scored(2, 15), scored(5, 15),
		}, noop)
		assert.Equal(t, []core.ID{2, 5, 9}, rankingIDs(ranking))
	})

	t.Run("custom thresholds respected", func(t *testing.T) {
		strict := newTestEngine(t, WithThresholds(Thresholds{
			Min: 30, TopRatio: 0.9, RelaxedMin: 25, RelaxedRatio: 0.8,
		}))
		ranking := strict.selectRanked([]core.ScoredProduct{
			scored(1, 28), scored(2, 26),
		}, noop)
		// Initial cutoff max(30, 25.2) keeps nothing; relaxed max(25, 22.4)
		// keeps both.
		assert.Equal(t, []core.ID{1, 2}, rankingIDs(ranking))
	})
}

// recordingMonitor observes threshold relaxation in selector tests.
type recordingMonitor struct {
	noopMonitor
	onRelax func(threshold float64)
}

func (m *recordingMonitor) ThresholdRelaxed(threshold float64) {
	if m.onRelax != nil {
		m.onRelax(threshold)
	}
}
