package tokenize

import (
	"fmt"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// Tokenizer wraps the bleve analysis chain (unicode word tokenizer,
// lowercase filter, English stopword map) so the keyword extractor and
// the similarity engine agree on what a term is.
type Tokenizer struct {
	words analysis.Tokenizer
	lower analysis.TokenFilter
	stop  analysis.TokenMap
}

func New() (*Tokenizer, error) {
	stop := analysis.NewTokenMap()
	if err := stop.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	return &Tokenizer{
		words: unicode.NewUnicodeTokenizer(),
		lower: lowercase.NewLowerCaseFilter(),
		stop:  stop,
	}, nil
}

// Terms returns all lowercased word tokens of text in order, stopwords
// included.
func (t *Tokenizer) Terms(text string) []string {
	stream := t.lower.Filter(t.words.Tokenize([]byte(text)))
	terms := make([]string, 0, len(stream))
	for _, tok := range stream {
		terms = append(terms, string(tok.Term))
	}
	return terms
}

// ContentTerms returns lowercased word tokens with stopwords removed.
func (t *Tokenizer) ContentTerms(text string) []string {
	stream := t.lower.Filter(t.words.Tokenize([]byte(text)))
	terms := make([]string, 0, len(stream))
	for _, tok := range stream {
		term := string(tok.Term)
		if t.stop[term] {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// IsStopWord reports whether the lowercased term is an English stopword.
func (t *Tokenizer) IsStopWord(term string) bool {
	return t.stop[term]
}
