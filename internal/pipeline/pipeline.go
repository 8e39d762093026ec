package pipeline

import (
	"context"
	"errors"

	"github.com/chapgen/chapgen/internal/chapters"
	"github.com/chapgen/chapgen/internal/keywords"
	"github.com/chapgen/chapgen/internal/segment"
	"github.com/chapgen/chapgen/internal/similarity"
	"github.com/chapgen/chapgen/internal/srt"
)

// ErrNoCues is returned when no valid cues reached the pipeline: no
// chapters are producible for this invocation.
var ErrNoCues = errors.New("no chapters producible: no valid cues")

// Options configures one pipeline run.
type Options struct {
	WindowDuration  float64 // analysis window in seconds, default 90
	MaxKeywords     int     // keyphrases extracted per segment, default 5
	TitleMaxPhrases int     // keyphrases considered per title, default 3
}

func (o *Options) setDefaults() {
	if o.WindowDuration <= 0 {
		o.WindowDuration = segment.DefaultWindow
	}
	if o.MaxKeywords <= 0 {
		o.MaxKeywords = 5
	}
	if o.TitleMaxPhrases <= 0 {
		o.TitleMaxPhrases = 3
	}
}

// Result carries the assembled summary plus the annotated segments and
// a degraded marker, so callers and tests can distinguish a confident
// result from a degraded but valid one.
type Result struct {
	Summary  *chapters.Summary
	Segments []*segment.Segment
	Degraded bool
	Reason   string
}

// Pipeline runs the segmentation and topic-change engine: cues are
// aggregated into windows, annotated with keywords and adjacent
// similarities, thresholded into boundaries, and assembled into titled
// chapters. Stages run strictly in sequence; each consumes the prior
// stage's complete output.
type Pipeline struct {
	extractor *keywords.Adapter
	opts      Options
}

// New builds a pipeline around a keyword extraction capability. The
// extractor is owned by the caller; pass the same instance across runs
// to reuse its lazily loaded state.
func New(extractor keywords.Extractor, opts Options) *Pipeline {
	opts.setDefaults()
	return &Pipeline{
		extractor: keywords.NewAdapter(extractor),
		opts:      opts,
	}
}

// Run converts ordered cues into a chapter summary. Failures are
// isolated to the narrowest unit: a failed keyword extraction degrades
// one segment's titling, a failed vectorization degrades boundary
// detection to periodic marking. Only an empty cue list is terminal.
func (p *Pipeline) Run(ctx context.Context, cues []srt.Cue) (*Result, error) {
	if len(cues) == 0 {
		return nil, ErrNoCues
	}

	segments := segment.Aggregate(cues, p.opts.WindowDuration)

	for _, s := range segments {
		s.Keywords, _ = p.extractor.Extract(ctx, s.Text, p.opts.MaxKeywords)
	}

	result := &Result{Segments: segments}
	p.detectBoundaries(segments, result)

	result.Summary = chapters.Assemble(segments, p.opts.TitleMaxPhrases)
	return result, nil
}

func (p *Pipeline) detectBoundaries(segments []*segment.Segment, result *Result) {
	engine, err := similarity.NewEngine()
	if err != nil {
		chapters.MarkPeriodic(segments)
		result.Degraded = true
		result.Reason = err.Error()
		return
	}

	outcome := engine.Adjacent(segment.Texts(segments))
	if outcome.Degraded {
		chapters.MarkPeriodic(segments)
		result.Degraded = true
		result.Reason = outcome.Reason
		return
	}

	chapters.MarkBoundaries(segments, outcome.Similarities)
}
