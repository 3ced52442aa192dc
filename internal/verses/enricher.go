package verses

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"server/internal/quranapi"
)

// MaxEnrichWorkers - Cap on concurrent verse enrichments. Each verse fans out
// into 4 lookups of its own, so effective upstream concurrency is 4x this.
const MaxEnrichWorkers = 4

// Enricher - Augments parsed verse records with arabic text, an audio link,
// the surah name and the real translation from the quran data sources.
type Enricher struct {
	sources *quranapi.Client
	logger  *zap.Logger
}

func NewEnricher(sources *quranapi.Client, logger *zap.Logger) *Enricher {
	return &Enricher{sources: sources, logger: logger}
}

// EnrichAll - Enrich every record, bounded fan-out across verses. Output order
// always matches input order no matter which lookups finish first. Never
// fails: partial data beats no response.
func (enricher *Enricher) EnrichAll(ctx context.Context, records []RawVerseRecord) []EnrichedVerse {
	enriched := make([]EnrichedVerse, len(records))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(MaxEnrichWorkers)
	for i, record := range records {
		group.Go(func() error {
			enriched[i] = enricher.Enrich(groupCtx, record)
			return nil
		})
	}
	_ = group.Wait() // workers never return errors, failures are absorbed per field

	return enriched
}

// Enrich - One record, four independent lookups run concurrently. Any lookup
// failing just leaves its field unresolved and gets logged with the reference
// text for traceability.
func (enricher *Enricher) Enrich(ctx context.Context, record RawVerseRecord) EnrichedVerse {
	verse := EnrichedVerse{
		Verse:      record.Verse,
		Reference:  record.Reference,
		Reflection: record.Reflection,
	}

	parsed := ParseReference(record.Reference)
	if parsed == nil {
		// no usable numbers, nothing to look up; the raw text still displays
		return verse
	}

	// each goroutine writes a different field of verse, so no lock is needed
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		enricher.fetchArabic(groupCtx, parsed, &verse)
		return nil
	})
	group.Go(func() error {
		enricher.fetchAudio(groupCtx, parsed, &verse)
		return nil
	})
	group.Go(func() error {
		enricher.fetchSurahName(groupCtx, parsed, &verse)
		return nil
	})
	group.Go(func() error {
		enricher.fetchTranslation(groupCtx, parsed, &verse)
		return nil
	})
	_ = group.Wait()

	return verse
}

func (enricher *Enricher) fetchArabic(ctx context.Context, parsed *ParsedReference, verse *EnrichedVerse) {
	surahDoc, err := enricher.sources.FetchSurah(ctx, parsed.Surah)
	if err != nil {
		enricher.logger.Error("failed to fetch arabic verse",
			zap.String("reference", verse.Reference),
			zap.Error(err))
		return
	}

	if arabic, ok := surahDoc.Verse[quranapi.VerseKey(parsed.Ayah)]; ok {
		verse.Arabic = &arabic
	} else {
		enricher.logger.Warn("ayah missing from surah document",
			zap.String("reference", verse.Reference),
			zap.Int("ayah", parsed.Ayah))
	}
}

func (enricher *Enricher) fetchAudio(ctx context.Context, parsed *ParsedReference, verse *EnrichedVerse) {
	index, err := enricher.sources.FetchAudioIndex(ctx, parsed.Surah)
	if err != nil {
		enricher.logger.Error("failed to fetch audio index",
			zap.String("reference", verse.Reference),
			zap.Error(err))
		return
	}

	if file := index.AudioFile(parsed.Ayah); file != "" {
		audioUrl := enricher.sources.AudioUrl(parsed.Surah, file)
		verse.AudioURL = &audioUrl
	}
}

func (enricher *Enricher) fetchSurahName(ctx context.Context, parsed *ParsedReference, verse *EnrichedVerse) {
	// the reference text usually names the surah already; only hit the network
	// when it didn't
	if parsed.SurahName != "" {
		name := parsed.SurahName
		verse.SurahName = &name
		return
	}

	surahDoc, err := enricher.sources.FetchSurah(ctx, parsed.Surah)
	if err != nil {
		enricher.logger.Error("failed to fetch surah name",
			zap.String("reference", verse.Reference),
			zap.Error(err))
		return
	}

	if surahDoc.Name != "" {
		name := surahDoc.Name
		verse.SurahName = &name
	}
}

func (enricher *Enricher) fetchTranslation(ctx context.Context, parsed *ParsedReference, verse *EnrichedVerse) {
	translation, err := enricher.sources.FetchTranslation(ctx, parsed.Surah)
	if err != nil {
		enricher.logger.Error("failed to fetch translation",
			zap.String("reference", verse.Reference),
			zap.Error(err))
		return
	}

	// overrides the LLM's placeholder verse text. some translation files key
	// by bare ayah number instead of verse_<n>, try both
	if translated, ok := translation.Verse[quranapi.VerseKey(parsed.Ayah)]; ok {
		verse.Verse = translated
	} else if translated, ok := translation.Verse[strconv.Itoa(parsed.Ayah)]; ok {
		verse.Verse = translated
	}
}
