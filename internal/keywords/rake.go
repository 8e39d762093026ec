package keywords

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/chapgen/chapgen/internal/tokenize"
)

// maxPhraseWords caps candidate phrases at trigrams, matching the
// window the title synthesizer consumes.
const maxPhraseWords = 3

// phraseBreaks splits text into runs that candidate phrases may not
// cross, so punctuation ends a phrase the same way a stopword does.
var phraseBreaks = regexp.MustCompile(`[.!?;:,()\[\]"]+`)

// Rake ranks keyphrases by word co-occurrence: a word's score is its
// aggregate phrase degree over its frequency, a phrase's score the sum
// of its word scores, normalized to [0,1]. The tokenizer is loaded
// lazily once and reused across calls.
type Rake struct {
	once sync.Once
	tok  *tokenize.Tokenizer
	err  error
}

func NewRake() *Rake {
	return &Rake{}
}

func (r *Rake) load() {
	r.tok, r.err = tokenize.New()
	if r.err != nil {
		r.err = fmt.Errorf("%w: %v", ErrUnavailable, r.err)
	}
}

func (r *Rake) Extract(ctx context.Context, text string, max int) ([]Keyword, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return nil, r.err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if max <= 0 {
		return nil, nil
	}

	phrases := r.candidates(text)
	if len(phrases) == 0 {
		return nil, nil
	}

	// word scores: degree / frequency over all candidate phrases
	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		for _, word := range phrase {
			freq[word]++
			degree[word] += len(phrase)
		}
	}

	// best score per distinct phrase
	scores := make(map[string]float64)
	for _, phrase := range phrases {
		var score float64
		for _, word := range phrase {
			score += float64(degree[word]) / float64(freq[word])
		}
		key := strings.Join(phrase, " ")
		if score > scores[key] {
			scores[key] = score
		}
	}

	ranked := make([]Keyword, 0, len(scores))
	var top float64
	for phrase, score := range scores {
		ranked = append(ranked, Keyword{Phrase: phrase, Score: score})
		if score > top {
			top = score
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Phrase < ranked[j].Phrase
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	if top > 0 {
		for i := range ranked {
			ranked[i].Score /= top
		}
	}
	return ranked, nil
}

// candidates returns runs of consecutive non-stopword terms, broken at
// punctuation and stopwords, capped at maxPhraseWords.
func (r *Rake) candidates(text string) [][]string {
	var phrases [][]string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		phrases = append(phrases, current)
		current = nil
	}

	for _, chunk := range phraseBreaks.Split(text, -1) {
		for _, term := range r.tok.Terms(chunk) {
			if r.tok.IsStopWord(term) || len(term) < 2 {
				flush()
				continue
			}
			if len(current) == maxPhraseWords {
				flush()
			}
			current = append(current, term)
		}
		flush()
	}
	return phrases
}
