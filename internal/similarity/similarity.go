package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/chapgen/chapgen/internal/tokenize"
)

// maxFeatures caps the joint vocabulary, keeping the most frequent
// corpus terms with a deterministic tie-break.
const maxFeatures = 1000

// Result is a tagged outcome: a confident similarity sequence, or a
// degraded marker telling the caller to fall back to periodic boundary
// marking. A degraded result is still structurally valid.
type Result struct {
	Similarities []float64 // Similarities[i] compares texts i and i+1
	Degraded     bool
	Reason       string
}

// Ok reports whether the similarities were computed from a real vector
// space rather than a fallback.
func (r Result) Ok() bool {
	return !r.Degraded
}

// Engine builds a TF-IDF vector space over all segment texts jointly,
// so term weights reflect corpus-wide rarity, then compares adjacent
// pairs by cosine similarity. Only local drift matters for a linear
// talk; all-pairs comparison would conflate topic recurrence with
// topic boundaries.
type Engine struct {
	tok *tokenize.Tokenizer
}

func NewEngine() (*Engine, error) {
	tok, err := tokenize.New()
	if err != nil {
		return nil, fmt.Errorf("similarity engine: %w", err)
	}
	return &Engine{tok: tok}, nil
}

// Adjacent computes the similarity between each consecutive pair of
// texts, each value in [0,1]. Fewer than two texts yields an empty,
// non-degraded result. A corpus whose vocabulary collapses to nothing
// yields a degraded result.
func (e *Engine) Adjacent(texts []string) Result {
	if len(texts) < 2 {
		return Result{}
	}

	docs := make([][]string, len(texts))
	for i, text := range texts {
		docs[i] = ngrams(e.tok.ContentTerms(text))
	}

	vocab := buildVocabulary(docs)
	if len(vocab) == 0 {
		return Result{Degraded: true, Reason: "vocabulary collapsed: no content terms in any segment"}
	}

	vectors := vectorize(docs, vocab)

	sims := make([]float64, len(texts)-1)
	for i := 0; i < len(texts)-1; i++ {
		sims[i] = cosine(vectors[i], vectors[i+1])
	}
	return Result{Similarities: sims}
}

// ngrams expands content terms into unigrams plus bigrams.
func ngrams(terms []string) []string {
	out := make([]string, 0, 2*len(terms))
	out = append(out, terms...)
	for i := 0; i+1 < len(terms); i++ {
		out = append(out, terms[i]+" "+terms[i+1])
	}
	return out
}

// buildVocabulary assigns a dense index to each retained term. When the
// corpus exceeds maxFeatures terms, the most frequent win; ties break
// lexicographically so runs are reproducible.
func buildVocabulary(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			counts[term]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// vectorize produces l2-normalized tf-idf rows with smoothed idf:
// idf = ln((1+n)/(1+df)) + 1.
func vectorize(docs [][]string, vocab map[string]int) [][]float64 {
	n := len(docs)

	df := make([]int, len(vocab))
	tf := make([][]float64, n)
	for i, doc := range docs {
		row := make([]float64, len(vocab))
		for _, term := range doc {
			if j, ok := vocab[term]; ok {
				row[j]++
			}
		}
		for j, count := range row {
			if count > 0 {
				df[j]++
			}
		}
		tf[i] = row
	}

	idf := make([]float64, len(vocab))
	for j := range idf {
		idf[j] = math.Log(float64(1+n)/float64(1+df[j])) + 1
	}

	for i := range tf {
		var norm float64
		for j := range tf[i] {
			tf[i][j] *= idf[j]
			norm += tf[i][j] * tf[i][j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range tf[i] {
				tf[i][j] /= norm
			}
		}
	}
	return tf
}

// cosine of two l2-normalized vectors, clamped into [0,1].
func cosine(a, b []float64) float64 {
	var dot float64
	for j := range a {
		dot += a[j] * b[j]
	}
	switch {
	case math.IsNaN(dot) || dot < 0:
		return 0
	case dot > 1:
		return 1
	}
	return dot
}
