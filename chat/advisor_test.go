package chat

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mycostore/poradnyk/ai/mock"
	"github.com/mycostore/poradnyk/core"
	"github.com/mycostore/poradnyk/relevance"
	"github.com/mycostore/poradnyk/storage"
	"github.com/mycostore/poradnyk/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) storage.ProductRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	_, err = repo.PutProducts(context.Background(),
		&core.Product{
			Id:          1,
			Name:        "Кордицепс мілітаріс",
			Category:    "Гриби",
			Description: "Капсули з екстрактом кордицепсу для енергії та витривалості",
			Price:       540,
		},
		&core.Product{
			Id:          2,
			Name:        "Рейші екстракт",
			Category:    "Гриби",
			Description: "Підтримка спокійного сну",
			Price:       480,
		},
	)
	require.NoError(t, err)
	return repo
}

func newTestEngine(t *testing.T) *relevance.Engine {
	t.Helper()
	engine, err := relevance.NewEngine()
	require.NoError(t, err)
	return engine
}

func TestNewAdvisor(t *testing.T) {
	repo := newTestCatalog(t)
	engine := newTestEngine(t)
	assistant := mock.NewMockAssistant()

	t.Run("valid configuration", func(t *testing.T) {
		advisor, err := NewAdvisor(repo, engine, assistant)
		require.NoError(t, err)
		assert.NotNil(t, advisor)
	})

	t.Run("with custom logger", func(t *testing.T) {
		advisor, err := NewAdvisor(repo, engine, assistant, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, advisor)
	})

	t.Run("nil product repository", func(t *testing.T) {
		_, err := NewAdvisor(nil, engine, assistant)
		assert.Equal(t, ErrProductRepositoryRequired, err)
	})

	t.Run("nil engine", func(t *testing.T) {
		_, err := NewAdvisor(repo, nil, assistant)
		assert.Equal(t, ErrEngineRequired, err)
	})

	t.Run("nil assistant", func(t *testing.T) {
		_, err := NewAdvisor(repo, engine, nil)
		assert.Equal(t, ErrAssistantRequired, err)
	})
}

func TestAdviseRecommends(t *testing.T) {
	repo := newTestCatalog(t)
	engine := newTestEngine(t)
	assistant := mock.NewMockAssistant()
	assistant.ReplyFunc = func(ctx context.Context, message string, cards []core.ProductCard) (string, error) {
		return "Раджу кордицепс.", nil
	}

	advisor, err := NewAdvisor(repo, engine, assistant)
	require.NoError(t, err)

	advice, err := advisor.Advise(context.Background(), "хочу більше енергії, порадьте кордицепс")
	require.NoError(t, err)

	assert.True(t, advice.Generated)
	assert.Equal(t, "Раджу кордицепс.", advice.Reply)
	require.NotEmpty(t, advice.Cards)
	assert.Equal(t, core.ID(1), advice.Cards[0].Id)

	// The assistant must have received the same cards
	require.Equal(t, 1, assistant.CallCount())
	assert.Equal(t, advice.Cards, assistant.LastCards())
}

func TestAdviseClarifiesWhenNothingMatches(t *testing.T) {
	repo := newTestCatalog(t)
	engine := newTestEngine(t)
	assistant := mock.NewMockAssistant()

	advisor, err := NewAdvisor(repo, engine, assistant)
	require.NoError(t, err)

	advice, err := advisor.Advise(context.Background(), "допоможіть будь ласка")
	require.NoError(t, err)

	assert.False(t, advice.Generated)
	assert.Equal(t, DefaultClarifyText, advice.Reply)
	assert.Empty(t, advice.Cards)

	// No point waking the model without candidates
	assert.Equal(t, 0, assistant.CallCount())
}

func TestAdviseDegradesOnAssistantFailure(t *testing.T) {
	repo := newTestCatalog(t)
	engine := newTestEngine(t)
	assistant := mock.NewMockAssistant()
	assistant.ReplyFunc = func(ctx context.Context, message string, cards []core.ProductCard) (string, error) {
		return "", errors.New("model overloaded")
	}

	advisor, err := NewAdvisor(repo, engine, assistant)
	require.NoError(t, err)

	advice, err := advisor.Advise(context.Background(), "щось для сну, може рейші")
	require.NoError(t, err)

	assert.False(t, advice.Generated)
	assert.Equal(t, DefaultFallbackText, advice.Reply)
	require.NotEmpty(t, advice.Cards)
	assert.Equal(t, core.ID(2), advice.Cards[0].Id)
}

func TestAdviseCustomTexts(t *testing.T) {
	repo := newTestCatalog(t)
	engine := newTestEngine(t)
	assistant := mock.NewMockAssistant()
	assistant.ReplyFunc = func(ctx context.Context, message string, cards []core.ProductCard) (string, error) {
		return "", errors.New("down")
	}

	advisor, err := NewAdvisor(repo, engine, assistant,
		WithClarifyText("уточніть запит"),
		WithFallbackText("модель недоступна"))
	require.NoError(t, err)

	ctx := context.Background()

	advice, err := advisor.Advise(ctx, "дякую")
	require.NoError(t, err)
	assert.Equal(t, "уточніть запит", advice.Reply)

	advice, err = advisor.Advise(ctx, "рейші для сну")
	require.NoError(t, err)
	assert.Equal(t, "модель недоступна", advice.Reply)
	assert.NotEmpty(t, advice.Cards)
}

func TestAdviseTruncatesCardDescriptions(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	long := make([]rune, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'и')
	}
	_, err = repo.PutProducts(context.Background(), &core.Product{
		Id:          7,
		Name:        "Чага екстракт",
		Category:    "Гриби",
		Description: string(long),
		Price:       300,
	})
	require.NoError(t, err)

	advisor, err := NewAdvisor(repo, newTestEngine(t), mock.NewMockAssistant())
	require.NoError(t, err)

	advice, err := advisor.Advise(context.Background(), "чага")
	require.NoError(t, err)
	require.Len(t, advice.Cards, 1)
	assert.Len(t, []rune(advice.Cards[0].Description), core.MaxCardDescription)
}
