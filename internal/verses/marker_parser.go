package verses

// Parse the marker-delimited text the verse generator asks the LLM for:
// VERSE_START ... REF_START ... REFL_START ... VERSE_END

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	// RE2 has no lookahead, so "up to the next marker or end" is an alternation
	verseRe = regexp.MustCompile(`(?s)VERSE_START(.*?)(?:REF_START|$)`)
	refRe   = regexp.MustCompile(`(?s)REF_START(.*?)(?:REFL_START|$)`)
	reflRe  = regexp.MustCompile(`(?s)REFL_START(.*)`)

	// the model misspells the reflection marker often enough to handle it
	reflTypoRe = regexp.MustCompile(`(?s)REFLE_START(.*)`)
)

type MarkerParser struct {
	logger *zap.Logger
}

func NewMarkerParser(logger *zap.Logger) *MarkerParser {
	return &MarkerParser{logger: logger}
}

// Parse - Single pass over the completion text, in source order. Blocks
// missing a verse or reference are dropped with a warning, so the result may
// hold fewer verses than were asked for. Empty input is just zero records.
func (parser *MarkerParser) Parse(content string) []RawVerseRecord {
	records := make([]RawVerseRecord, 0, 3)

	for _, block := range strings.Split(content, "VERSE_END") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		record := RawVerseRecord{
			Verse:      extractSection(verseRe, block),
			Reference:  extractSection(refRe, block),
			Reflection: extractSection(reflRe, block),
		}
		if record.Reflection == "" {
			record.Reflection = extractSection(reflTypoRe, block)
		}

		// missing reflection is tolerated, missing verse or reference is not
		if record.Verse == "" || record.Reference == "" {
			parser.logger.Warn("incomplete verse block parsed",
				zap.String("verse", record.Verse),
				zap.String("reference", record.Reference))
			continue
		}

		records = append(records, record)
	}

	return records
}

func extractSection(re *regexp.Regexp, block string) string {
	match := re.FindStringSubmatch(block)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
