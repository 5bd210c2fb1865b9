package relevance

import (
	"testing"

	"github.com/mycostore/poradnyk/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	engine, err := NewEngine(opts...)
	require.NoError(t, err)
	return engine
}

func scoreOne(e *Engine, p *core.Product, tokens []string, intents []Intent) float64 {
	return e.scoreProduct(newItemText(p), compilePatterns(tokens), tokens, intents)
}

func TestScoreFieldWeights(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("whole word in name", func(t *testing.T) {
		p := &core.Product{Name: "Чага мелена"}
		assert.Equal(t, 9.0, scoreOne(engine, p, []string{"чага"}, nil))
	})

	t.Run("substring in name when word match fails", func(t *testing.T) {
		p := &core.Product{Name: "Чагачай"}
		assert.Equal(t, 7.0, scoreOne(engine, p, []string{"чага"}, nil))
	})

	t.Run("word and substring are mutually exclusive", func(t *testing.T) {
		// A word match must not also count the substring weight.
		p := &core.Product{Name: "Чага"}
		assert.Equal(t, 9.0, scoreOne(engine, p, []string{"чага"}, nil))
	})

	t.Run("category word", func(t *testing.T) {
		p := &core.Product{Name: "Мелений порошок", Category: "Сушені гриби"}
		assert.Equal(t, 4.0, scoreOne(engine, p, []string{"гриби"}, nil))
	})

	t.Run("usage word", func(t *testing.T) {
		p := &core.Product{Name: "Порошок", Usage: "вживати до їжі"}
		assert.Equal(t, 3.0, scoreOne(engine, p, []string{"вживати"}, nil))
	})

	t.Run("description word", func(t *testing.T) {
		p := &core.Product{Name: "Порошок", Description: "для витривалості"}
		assert.Equal(t, 2.0, scoreOne(engine, p, []string{"витривалости"}, nil))
	})

	t.Run("composition word", func(t *testing.T) {
		p := &core.Product{Name: "Суміш", Composition: "екстракт чаги"}
		assert.Equal(t, 1.5, scoreOne(engine, p, []string{"екстракт"}, nil))
	})

	t.Run("weights accumulate across fields", func(t *testing.T) {
		p := &core.Product{
			Name:        "Чага мелена",
			Category:    "Чага",
			Description: "дика чага з карпат",
		}
		// name word 9 + category word 4 + description word 2
		assert.Equal(t, 15.0, scoreOne(engine, p, []string{"чага"}, nil))
	})

	t.Run("no match scores zero", func(t *testing.T) {
		p := &core.Product{Name: "Шиїтаке"}
		assert.Equal(t, 0.0, scoreOne(engine, p, []string{"чага"}, nil))
	})
}

func TestScorePhraseBonus(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("adjacent pair in name", func(t *testing.T) {
		p := &core.Product{Name: "Їжовик гребінчастий 50 г"}
		tokens := []string{"ижовик", "гребинчаст"}
		// word match 9 + name substring 7 (гребинчаст is a stem, not a whole
		// word) + phrase bonus 8
		assert.Equal(t, 24.0, scoreOne(engine, p, tokens, nil))
	})

	t.Run("adjacent pair in description", func(t *testing.T) {
		p := &core.Product{Name: "Набір", Description: "чистий мицел гриба"}
		tokens := []string{"чистий", "мицел"}
		// description word 2 + 2 + phrase-in-text 4
		assert.Equal(t, 8.0, scoreOne(engine, p, tokens, nil))
	})

	t.Run("non adjacent tokens earn no bonus", func(t *testing.T) {
		p := &core.Product{Name: "Набір", Description: "чистий сушений мицел"}
		tokens := []string{"чистий", "мицел"}
		assert.Equal(t, 4.0, scoreOne(engine, p, tokens, nil))
	})
}

func TestScoreIntentBoost(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("energy boosts cordyceps by name", func(t *testing.T) {
		p := &core.Product{Name: "Кордицепс Мілітаріс"}
		got := scoreOne(engine, p, []string{"щось"}, []Intent{IntentEnergy})
		assert.Equal(t, 14.0, got)
	})

	t.Run("boost requires active intent", func(t *testing.T) {
		p := &core.Product{Name: "Кордицепс Мілітаріс"}
		got := scoreOne(engine, p, []string{"щось"}, nil)
		assert.Equal(t, 0.0, got)
	})

	t.Run("multiple boosts stack", func(t *testing.T) {
		p := &core.Product{Name: "Рейші преміум"}
		got := scoreOne(engine, p, []string{"щось"}, []Intent{IntentSleep, IntentStress})
		// 12 for sleep + 12 for stress
		assert.Equal(t, 24.0, got)
	})
}

func TestScoreGenericPenalty(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("two vague tokens present in item text", func(t *testing.T) {
		p := &core.Product{
			Name:        "Мультивітамін",
			Description: "підтримка здоровя та тонус",
		}
		tokens := []string{"здоровя", "тонус"}
		// description word 2 + 2, penalty -4
		assert.Equal(t, 0.0, scoreOne(engine, p, tokens, nil))
	})

	t.Run("single vague token is not penalized", func(t *testing.T) {
		p := &core.Product{
			Name:        "Мультивітамін",
			Description: "підтримка здоровя",
		}
		tokens := []string{"здоровя"}
		assert.Equal(t, 2.0, scoreOne(engine, p, tokens, nil))
	})

	t.Run("penalty needs the tokens in the item text", func(t *testing.T) {
		p := &core.Product{Name: "Кордицепс", Description: "енергія"}
		tokens := []string{"здоровя", "тонус", "кордицепс"}
		assert.Equal(t, 9.0, scoreOne(engine, p, tokens, nil))
	})
}
