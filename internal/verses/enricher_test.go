package verses

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"server/internal/quranapi"
)

// stub for all three data sources behind one mux
func newSourcesServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/surah/2.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"Al-Baqarah","verse":{"verse_45":"وَاسْتَعِينُوا بِالصَّبْرِ وَالصَّلَاةِ"}}`)
	})
	mux.HandleFunc("/audio/002/index.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"verse":{"verse_45":{"file":"045.mp3"}}}`)
	})
	mux.HandleFunc("/translation/en_translation_2.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"verse":{"verse_45":"And seek help through patience and prayer."}}`)
	})
	// surah 12 only exists in the translation source, keyed by bare ayah number
	mux.HandleFunc("/translation/en_translation_12.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"verse":{"18":"And they brought upon his shirt false blood."}}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestEnricher(baseUrl string) *Enricher {
	sources := quranapi.NewClient(baseUrl+"/surah/", baseUrl+"/audio/", baseUrl+"/translation/", 2*time.Second)
	return NewEnricher(sources, zap.NewNop())
}

func TestEnrichResolvesAllFields(t *testing.T) {
	server := newSourcesServer(t)
	enricher := newTestEnricher(server.URL)

	verse := enricher.Enrich(context.Background(), RawVerseRecord{
		Verse:      "Translation will be fetched",
		Reference:  "Surah Al-Baqarah (2:45)",
		Reflection: "Patience and prayer.",
	})

	// placeholder overridden by the fetched translation
	assert.Equal(t, "And seek help through patience and prayer.", verse.Verse)
	assert.Equal(t, "Surah Al-Baqarah (2:45)", verse.Reference)
	assert.Equal(t, "Patience and prayer.", verse.Reflection)

	require.NotNil(t, verse.Arabic)
	assert.Contains(t, *verse.Arabic, "بِالصَّبْرِ")

	require.NotNil(t, verse.AudioURL)
	assert.Equal(t, server.URL+"/audio/002/045.mp3", *verse.AudioURL)

	// name came from the reference text, not the surah document
	require.NotNil(t, verse.SurahName)
	assert.Equal(t, "Al-Baqarah", *verse.SurahName)
}

func TestEnrichFetchesSurahNameWhenReferenceHasNone(t *testing.T) {
	server := newSourcesServer(t)
	enricher := newTestEnricher(server.URL)

	verse := enricher.Enrich(context.Background(), RawVerseRecord{
		Verse:     "placeholder",
		Reference: "2:45",
	})

	require.NotNil(t, verse.SurahName)
	assert.Equal(t, "Al-Baqarah", *verse.SurahName)
}

func TestEnrichTranslationBareNumberKeyFallback(t *testing.T) {
	server := newSourcesServer(t)
	enricher := newTestEnricher(server.URL)

	verse := enricher.Enrich(context.Background(), RawVerseRecord{
		Verse:     "placeholder",
		Reference: "Surah Yusuf (12:18)",
	})

	assert.Equal(t, "And they brought upon his shirt false blood.", verse.Verse)
	// the other sources 404 for surah 12, non-fatal
	assert.Nil(t, verse.Arabic)
	assert.Nil(t, verse.AudioURL)
}

func TestEnrichUnparseableReferenceReturnsRecordUntouched(t *testing.T) {
	server := newSourcesServer(t)
	enricher := newTestEnricher(server.URL)

	verse := enricher.Enrich(context.Background(), RawVerseRecord{
		Verse:      "some text",
		Reference:  "no numbers here",
		Reflection: "reflection",
	})

	assert.Equal(t, "some text", verse.Verse)
	assert.Equal(t, "no numbers here", verse.Reference)
	assert.Nil(t, verse.Arabic)
	assert.Nil(t, verse.AudioURL)
	assert.Nil(t, verse.SurahName)
}

func TestEnrichAllSourcesDownKeepsPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	enricher := newTestEnricher(server.URL)

	verse := enricher.Enrich(context.Background(), RawVerseRecord{
		Verse:     "Translation will be fetched",
		Reference: "Surah Al-Baqarah (2:45)",
	})

	assert.Equal(t, "Translation will be fetched", verse.Verse)
	assert.Nil(t, verse.Arabic)
	assert.Nil(t, verse.AudioURL)
	// name still resolves, it was in the reference text all along
	require.NotNil(t, verse.SurahName)
	assert.Equal(t, "Al-Baqarah", *verse.SurahName)
}

func TestEnrichAllPreservesOrder(t *testing.T) {
	server := newSourcesServer(t)
	enricher := newTestEnricher(server.URL)

	records := []RawVerseRecord{
		{Verse: "a", Reference: "Surah Al-Baqarah (2:45)"},
		{Verse: "b", Reference: "no numbers here"},
		{Verse: "c", Reference: "Surah Yusuf (12:18)"},
		{Verse: "d", Reference: "2:45"},
	}

	enriched := enricher.EnrichAll(context.Background(), records)
	require.Len(t, enriched, len(records))

	for i, record := range records {
		assert.Equal(t, record.Reference, enriched[i].Reference)
	}
}

func TestEnrichAllEmptyInput(t *testing.T) {
	server := newSourcesServer(t)
	enricher := newTestEnricher(server.URL)

	enriched := enricher.EnrichAll(context.Background(), nil)
	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}
