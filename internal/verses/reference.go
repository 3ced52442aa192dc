package verses

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`\d+`)

	// the name run stops at the first char outside [\w\s-], so the trailing
	// "(chapter:verse)" parenthetical is NOT swallowed into the name
	surahNameRe = regexp.MustCompile(`(?i)Surah\s+([\w\s-]+)`)
)

// ParseReference - Pull surah/ayah numbers (and a surah name when the text
// carries one) out of a free-text reference. Needs at least two integers:
// first is the surah, second the ayah, the rest are ignored. Anything less
// returns nil and the verse stays unenriched but still displayable.
func ParseReference(reference string) *ParsedReference {
	numbers := numberRe.FindAllString(reference, -1)
	if len(numbers) < 2 {
		return nil
	}

	surah, _ := strconv.Atoi(numbers[0])
	ayah, _ := strconv.Atoi(numbers[1])

	surahName := ""
	if strings.Contains(reference, "Surah") {
		if match := surahNameRe.FindStringSubmatch(reference); match != nil {
			surahName = strings.TrimSpace(match[1])
		}
	}

	return &ParsedReference{
		Surah:     surah,
		Ayah:      ayah,
		SurahName: surahName,
	}
}
