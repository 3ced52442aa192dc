package verses

// RawVerseRecord - One verse block as it came out of the marker parser.
// Only kept when both Verse and Reference are non-empty.
type RawVerseRecord struct {
	Verse      string
	Reference  string
	Reflection string
}

// ParsedReference - Chapter/verse numbers pulled out of free-text reference
// like "Surah Al-Baqarah (2:45)". SurahName is empty when no name was given.
type ParsedReference struct {
	Surah     int
	Ayah      int
	SurahName string
}

// EnrichedVerse - The wire shape returned by /api/quran/verses. The optional
// fields stay null when their source couldn't be reached. Verse holds the
// fetched translation once enrichment resolves it, the LLM placeholder before.
type EnrichedVerse struct {
	Verse      string  `json:"verse"`
	Reference  string  `json:"reference"`
	Reflection string  `json:"reflection"`
	Arabic     *string `json:"arabic"`
	AudioURL   *string `json:"audioURL"`
	SurahName  *string `json:"surahName"`
}
