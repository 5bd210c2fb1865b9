package relevance

import (
	"fmt"
	"testing"

	"github.com/mycostore/poradnyk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := NewEngine()
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("nil stemmer rejected", func(t *testing.T) {
		_, err := NewEngine(WithStemmer(nil))
		assert.Equal(t, ErrStemmerRequired, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		engine, err := NewEngine(WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})
}

func TestRankEnergyQuery(t *testing.T) {
	engine := newTestEngine(t)
	catalog := []*core.Product{
		{Id: 1, Name: "Кордицепс Мілітаріс 100 г", Category: "Сушені гриби"},
		{Id: 2, Name: "Чага мелена 100 г", Category: "Сушені гриби"},
	}

	ranking := engine.Rank("хочу більше енергії, порадьте кордицепс", catalog)

	require.NotEmpty(t, ranking)
	assert.Equal(t, core.ID(1), ranking[0].Product.Id)
	// name word match 9 + energy intent boost 14
	assert.Equal(t, 23.0, ranking[0].Score)
}

func TestRankEmptyOutcomes(t *testing.T) {
	engine := newTestEngine(t)
	catalog := []*core.Product{
		{Id: 1, Name: "Кордицепс Мілітаріс 100 г"},
	}

	t.Run("filler-only query", func(t *testing.T) {
		assert.Empty(t, engine.Rank("допоможіть", catalog))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, engine.Rank("", catalog))
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Empty(t, engine.Rank("кордицепс", nil))
	})

	t.Run("nil products skipped", func(t *testing.T) {
		ranking := engine.Rank("кордицепс", []*core.Product{nil, catalog[0], nil})
		require.Len(t, ranking, 1)
		assert.Equal(t, core.ID(1), ranking[0].Product.Id)
	})

	t.Run("no lexical match", func(t *testing.T) {
		assert.Empty(t, engine.Rank("велосипед", catalog))
	})
}

func TestRankDeterminism(t *testing.T) {
	engine := newTestEngine(t)
	catalog := []*core.Product{
		{Id: 3, Name: "Рейші мелений", Description: "для сну та спокою"},
		{Id: 1, Name: "Кордицепс Мілітаріс", Description: "енергія"},
		{Id: 2, Name: "Мухомор червоний", Description: "мікродозинг для сну"},
	}

	first := engine.Rank("що попити для сну", catalog)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Rank("що попити для сну", catalog))
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)
	catalog := []*core.Product{
		{Id: 1, Name: "Кордицепс Мілітаріс 100 г", Category: "Сушені гриби"},
		{Id: 2, Name: "Їжовик гребінчастий 50 г", Category: "Сушені гриби"},
	}

	lower := engine.Rank("кордицепс", catalog)
	title := engine.Rank("Кордицепс", catalog)
	upper := engine.Rank("КОРДИЦЕПС", catalog)

	assert.Equal(t, lower, title)
	assert.Equal(t, lower, upper)
	require.NotEmpty(t, lower)
	assert.Equal(t, core.ID(1), lower[0].Product.Id)
}

func TestRankLetterVariantFolding(t *testing.T) {
	engine := newTestEngine(t)
	catalog := []*core.Product{
		{Id: 1, Name: "Їжовик гребінчастий 50 г"},
	}

	t.Run("и-variant matches through folding", func(t *testing.T) {
		ranking := engine.Rank("ижовик", catalog)
		require.Len(t, ranking, 1)
		assert.Equal(t, core.ID(1), ranking[0].Product.Id)
	})

	t.Run("ukrainian spelling matches", func(t *testing.T) {
		ranking := engine.Rank("їжовик", catalog)
		require.Len(t, ranking, 1)
	})

	t.Run("е-variant stays unmatched", func(t *testing.T) {
		// The folding table maps ї/і to и only. Bridging ежовик would need a
		// table extension; this fixture documents the current behavior.
		assert.Empty(t, engine.Rank("ежовик", catalog))
	})
}

func TestRankBoundedWithRelaxation(t *testing.T) {
	engine := newTestEngine(t)
	catalog := make([]*core.Product, 0, 10)
	for i := 1; i <= 10; i++ {
		catalog = append(catalog, &core.Product{
			Id:   core.ID(i),
			Name: fmt.Sprintf("Чага мелена №%d", i),
		})
	}

	relaxed := false
	monitor := &recordingMonitor{onRelax: func(float64) { relaxed = true }}
	ranking := engine.RankWithMonitor("чага", catalog, monitor)

	// Every item scores 9 (name word match); the initial cutoff max(10, 4.05)
	// keeps nothing, the relaxed cutoff max(8, 2.7) readmits all, and the
	// ranking is truncated to six with ascending-id tie-breaks.
	assert.True(t, relaxed)
	require.Len(t, ranking, core.MaxRankingSize)
	assert.Equal(t, []core.ID{1, 2, 3, 4, 5, 6}, rankingIDs(ranking))
	for _, item := range ranking {
		assert.Greater(t, item.Score, 0.0)
	}
}

func TestRankWithMonitorStages(t *testing.T) {
	engine := newTestEngine(t)
	catalog := []*core.Product{
		{Id: 1, Name: "Кордицепс Мілітаріс 100 г"},
	}

	monitor := &stageMonitor{}
	ranking := engine.RankWithMonitor("хочу енергії, порадьте кордицепс", catalog, monitor)

	require.Len(t, ranking, 1)
	assert.Equal(t, "хочу енергії, порадьте кордицепс", monitor.query)
	assert.Contains(t, monitor.tokens, "кордицепс")
	assert.Equal(t, []Intent{IntentEnergy}, monitor.intents)
	assert.Len(t, monitor.scoredIDs, 1)
	assert.Equal(t, ranking, monitor.finished)
}

type stageMonitor struct {
	noopMonitor
	query     string
	tokens    []string
	intents   []Intent
	scoredIDs []core.ID
	finished  core.Ranking
}

func (m *stageMonitor) Start(query string)            { m.query = query }
func (m *stageMonitor) AfterTokenize(tokens []string) { m.tokens = tokens }
func (m *stageMonitor) AfterIntentDetection(intents []Intent) {
	m.intents = intents
}
func (m *stageMonitor) ProductScored(p *core.Product, _ float64) {
	m.scoredIDs = append(m.scoredIDs, p.Id)
}
func (m *stageMonitor) Finish(ranking core.Ranking) { m.finished = ranking }
