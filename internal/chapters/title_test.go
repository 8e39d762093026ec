package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chapgen/chapgen/internal/keywords"
)

func kws(phrases ...string) []keywords.Keyword {
	out := make([]keywords.Keyword, len(phrases))
	for i, p := range phrases {
		out[i] = keywords.Keyword{Phrase: p, Score: 1 - float64(i)*0.1}
	}
	return out
}

func TestSynthesizeTitle_Markers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"introduction", "Welcome to the INTRODUCTION of this talk", "Introduction"},
		{"intro substring", "a quick intro before we start", "Introduction"},
		{"overview", "here is an overview of the agenda", "Introduction"},
		{"conclusion anywhere", "and so, In Conclusion, we see that", "Conclusion"},
		{"recap", "let me recap what we learned", "Conclusion"},
		{"questions", "are there any questions from the audience", "Questions & Discussion"},
		{"q&a", "now we move to the Q&A portion", "Questions & Discussion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// markers win regardless of keywords present
			got := SynthesizeTitle(tt.text, kws("some phrase", "other phrase"), 3)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeTitle_KeywordJoining(t *testing.T) {
	text := "plain segment text with no marker words"

	tests := []struct {
		name string
		kws  []keywords.Keyword
		want string
	}{
		{"single phrase", kws("data pipelines"), "Data Pipelines"},
		{"two phrases", kws("data pipelines", "stream processing"), "Data Pipelines & Stream Processing"},
		// the third phrase is computed but dropped
		{"three phrases", kws("data pipelines", "stream processing", "batch jobs"), "Data Pipelines & Stream Processing"},
		{"no keywords", nil, "New Topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeTitle(text, tt.kws, 3))
		})
	}
}

func TestSynthesizeTitle_CleansPhrases(t *testing.T) {
	text := "segment without marker words"

	// special characters stripped, short leftovers dropped
	got := SynthesizeTitle(text, kws("c++", "type-safe generics"), 3)
	assert.Equal(t, "Typesafe Generics", got)

	// everything collapses away
	got = SynthesizeTitle(text, kws("c++", "&&", "--"), 3)
	assert.Equal(t, "New Topic", got)
}

func TestSynthesizeTitle_OnlyTopPhrasesConsidered(t *testing.T) {
	text := "segment without marker words"

	// when the entire top-3 window collapses during cleaning, lower
	// ranked phrases never take its place
	got := SynthesizeTitle(text, kws("c++", "&&", "--", "garbage collection"), 3)
	assert.Equal(t, "New Topic", got)

	// a survivor inside the window still wins
	got = SynthesizeTitle(text, kws("c++", "garbage collection", "--", "heap layout"), 3)
	assert.Equal(t, "Garbage Collection", got)
}

func TestSynthesizeTitle_Deterministic(t *testing.T) {
	text := "some segment text about storage engines"
	keywords := kws("storage engines", "write amplification")

	first := SynthesizeTitle(text, keywords, 3)
	second := SynthesizeTitle(text, keywords, 3)
	assert.Equal(t, first, second)
}
