package keywords

import (
	"context"
	"errors"
)

// Keyword is one ranked keyphrase for a text window.
type Keyword struct {
	Phrase string
	Score  float64 // relevance in [0,1], non-increasing in return order
}

// ErrUnavailable marks an extraction capability that could not be
// initialized or failed on a segment. Callers degrade to empty keywords
// rather than aborting segmentation.
var ErrUnavailable = errors.New("keyword extraction unavailable")

// Extractor ranks candidate phrases by relevance to text, best first,
// returning at most max phrases.
type Extractor interface {
	Extract(ctx context.Context, text string, max int) ([]Keyword, error)
}

// Adapter wraps an Extractor so failures never propagate: any error,
// cancellation, or empty text yields an empty keyword list and the
// pipeline proceeds with degraded titling.
type Adapter struct {
	inner Extractor
}

func NewAdapter(inner Extractor) *Adapter {
	return &Adapter{inner: inner}
}

// Extract never fails; it reports whether extraction degraded.
func (a *Adapter) Extract(ctx context.Context, text string, max int) ([]Keyword, bool) {
	if a.inner == nil || text == "" || max <= 0 {
		return nil, true
	}
	if err := ctx.Err(); err != nil {
		return nil, true
	}
	kws, err := a.inner.Extract(ctx, text, max)
	if err != nil {
		return nil, true
	}
	return kws, false
}
