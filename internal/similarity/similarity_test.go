package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)
	return engine
}

func TestAdjacent_IdenticalTexts(t *testing.T) {
	texts := []string{
		"machine learning models process data",
		"machine learning models process data",
	}
	result := newEngine(t).Adjacent(texts)

	require.True(t, result.Ok())
	require.Len(t, result.Similarities, 1)
	assert.InDelta(t, 1.0, result.Similarities[0], 1e-9)
}

func TestAdjacent_DisjointTexts(t *testing.T) {
	texts := []string{
		"cats dogs animals pets veterinary",
		"quantum physics energy particles momentum",
	}
	result := newEngine(t).Adjacent(texts)

	require.True(t, result.Ok())
	require.Len(t, result.Similarities, 1)
	assert.InDelta(t, 0.0, result.Similarities[0], 1e-9)
}

func TestAdjacent_RelatedMoreSimilarThanUnrelated(t *testing.T) {
	texts := []string{
		"neural networks learn representations from training data",
		"training data drives neural networks during learning",
		"medieval castles defended kingdoms against sieges",
	}
	result := newEngine(t).Adjacent(texts)

	require.True(t, result.Ok())
	require.Len(t, result.Similarities, 2)
	assert.Greater(t, result.Similarities[0], result.Similarities[1])
}

func TestAdjacent_ValuesInRange(t *testing.T) {
	texts := []string{
		"go is a compiled language",
		"compiled languages produce binaries",
		"binaries run fast",
		"completely unrelated gardening topic",
	}
	result := newEngine(t).Adjacent(texts)

	require.True(t, result.Ok())
	for _, sim := range result.Similarities {
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestAdjacent_FewerThanTwoTexts(t *testing.T) {
	engine := newEngine(t)

	result := engine.Adjacent(nil)
	assert.True(t, result.Ok())
	assert.Empty(t, result.Similarities)

	result = engine.Adjacent([]string{"single segment text"})
	assert.True(t, result.Ok())
	assert.Empty(t, result.Similarities)
}

func TestAdjacent_DegradedOnCollapsedVocabulary(t *testing.T) {
	// stopword-only corpus leaves nothing to vectorize
	texts := []string{"the and of it", "a an the and"}
	result := newEngine(t).Adjacent(texts)

	assert.True(t, result.Degraded)
	assert.False(t, result.Ok())
	assert.NotEmpty(t, result.Reason)
	assert.Empty(t, result.Similarities)
}

func TestAdjacent_Deterministic(t *testing.T) {
	texts := []string{
		"first segment talks about databases and indexing",
		"second segment covers query planning in databases",
		"third segment is about cooking pasta",
	}
	engine := newEngine(t)

	first := engine.Adjacent(texts)
	second := engine.Adjacent(texts)
	assert.Equal(t, first, second)
}

func TestNgrams(t *testing.T) {
	got := ngrams([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c", "a b", "b c"}, got)

	assert.Equal(t, []string{"solo"}, ngrams([]string{"solo"}))
	assert.Empty(t, ngrams(nil))
}

func TestBuildVocabulary_DeterministicOrder(t *testing.T) {
	docs := [][]string{
		{"beta", "alpha", "beta"},
		{"alpha", "gamma"},
	}
	vocab := buildVocabulary(docs)

	// beta and alpha both occur twice; lexicographic tie-break
	assert.Equal(t, 0, vocab["alpha"])
	assert.Equal(t, 1, vocab["beta"])
	assert.Equal(t, 2, vocab["gamma"])
}
