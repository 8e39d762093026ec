package chapters

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chapgen/chapgen/internal/keywords"
)

// Marker sets for common lecture patterns, checked before keyword
// titling. Matching is a case-insensitive substring search on the raw
// segment text.
var (
	introMarkers      = []string{"introduction", "intro", "overview", "beginning"}
	conclusionMarkers = []string{"conclusion", "summary", "recap", "ending"}
	questionMarkers   = []string{"question", "questions", "q&a", "discussion"}
)

// fallbackTitle is used when no marker matches and no keyword survives
// cleaning.
const fallbackTitle = "New Topic"

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

var titleCaser = cases.Title(language.English)

// SynthesizeTitle derives a short chapter title from a boundary
// segment's raw text and its ranked keywords. Pure and deterministic:
// identical input always yields the identical string.
//
// Up to maxPhrases keywords are cleaned, but when two or more survive
// only the first two are joined. The third is computed and dropped for
// compatibility with long-standing output.
func SynthesizeTitle(text string, kws []keywords.Keyword, maxPhrases int) string {
	lower := strings.ToLower(text)
	if containsAny(lower, introMarkers) {
		return "Introduction"
	}
	if containsAny(lower, conclusionMarkers) {
		return "Conclusion"
	}
	if containsAny(lower, questionMarkers) {
		return "Questions & Discussion"
	}

	if maxPhrases <= 0 {
		maxPhrases = 3
	}

	// only the top-ranked phrases are considered; lower ranks never
	// replace ones that collapse during cleaning
	if len(kws) > maxPhrases {
		kws = kws[:maxPhrases]
	}

	var clean []string
	for _, kw := range kws {
		phrase := nonAlphanumeric.ReplaceAllString(kw.Phrase, "")
		phrase = strings.TrimSpace(titleCaser.String(phrase))
		if len(phrase) > 2 {
			clean = append(clean, phrase)
		}
	}

	switch {
	case len(clean) == 0:
		return fallbackTitle
	case len(clean) == 1:
		return clean[0]
	default:
		return clean[0] + " & " + clean[1]
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
