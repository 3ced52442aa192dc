package emotion

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Extractor - The LLM fallback for moods the table doesn't know.
// Satisfied by *llms.Client.
type Extractor interface {
	ExtractEmotion(ctx context.Context, mood string) (string, error)
}

// Normalizer - Maps free-text mood phrases to the canonical emotion label.
// Table first (no network), extractor only for genuinely novel phrasing.
type Normalizer struct {
	extractor Extractor
	logger    *zap.Logger
}

func NewNormalizer(extractor Extractor, logger *zap.Logger) *Normalizer {
	return &Normalizer{extractor: extractor, logger: logger}
}

// Normalize - Resolve a raw mood string to an emotion label. Never fails:
// if the extractor is unreachable or talks nonsense, the lowercased input is
// the label (arbitrary free text is an acceptable fallback).
func (normalizer *Normalizer) Normalize(ctx context.Context, mood string) string {
	lowered := strings.ToLower(strings.TrimSpace(mood))

	if canonical, ok := Lookup(lowered); ok {
		return canonical
	}

	// "i feel cheated" should still hit the table, so scan for a known phrase
	// inside the mood before paying for a network call. Longest phrase wins.
	if canonical, ok := lookupContained(lowered); ok {
		return canonical
	}

	extracted, err := normalizer.extractor.ExtractEmotion(ctx, mood)
	if err != nil {
		// non-fatal, the raw mood is still a usable label
		normalizer.logger.Warn("emotion extraction failed, falling back to raw mood",
			zap.String("mood", lowered),
			zap.Error(err))
		return lowered
	}

	// Only trust the extractor when it refined the input into a word the table
	// knows; otherwise it may have "corrected" something the table handles.
	if extracted != lowered {
		if _, ok := Lookup(extracted); ok {
			return extracted
		}
	}

	return lowered
}

// lookupContained - Whole-word scan of the mood text for any table phrase.
// Multi-word phrases ("lied to", "let down") match across token boundaries.
func lookupContained(mood string) (string, bool) {
	tokens := strings.FieldsFunc(mood, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(tokens) == 0 {
		return "", false
	}

	haystack := " " + strings.Join(tokens, " ") + " "

	best := ""
	for phrase := range commonEmotions {
		if len(phrase) > len(best) && strings.Contains(haystack, " "+phrase+" ") {
			best = phrase
		}
	}

	if best == "" {
		return "", false
	}
	return commonEmotions[best], true
}
