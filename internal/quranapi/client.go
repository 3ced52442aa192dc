package quranapi

// All about FETCHING the static quran data sources (arabic text, audio index,
// translation). Each source is a dumb JSON GET; the enricher decides what a
// failure means.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"server/internal/utils"
)

// Client - The three quran data sources behind one http.Client with a bounded
// timeout. Base URLs end wherever the per-surah suffix begins (e.g. the surah
// base ends in "surah_" and FetchSurah appends "2.json").
type Client struct {
	surahBaseUrl       string
	audioBaseUrl       string
	translationBaseUrl string
	client             *http.Client
}

func NewClient(surahBaseUrl string, audioBaseUrl string, translationBaseUrl string, timeout time.Duration) *Client {
	return &Client{
		surahBaseUrl:       surahBaseUrl,
		audioBaseUrl:       audioBaseUrl,
		translationBaseUrl: translationBaseUrl,
		client:             &http.Client{Timeout: timeout},
	}
}

// SurahDocument - Per-surah document: arabic text keyed by "verse_<n>" plus
// the surah's name.
type SurahDocument struct {
	Name  string            `json:"name"`
	Verse map[string]string `json:"verse"`
}

type audioEntry struct {
	File string `json:"file"`
}

// AudioIndex - Per-surah audio index, file names keyed by "verse_<n>"
type AudioIndex struct {
	Verse map[string]audioEntry `json:"verse"`
}

// TranslationDocument - Per-surah english translation, keyed by "verse_<n>"
// or in some files by the bare number
type TranslationDocument struct {
	Verse map[string]string `json:"verse"`
}

func (c *Client) FetchSurah(ctx context.Context, surah int) (*SurahDocument, error) {
	var document SurahDocument
	if err := c.getJSON(ctx, fmt.Sprintf("%s%d.json", c.surahBaseUrl, surah), &document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (c *Client) FetchAudioIndex(ctx context.Context, surah int) (*AudioIndex, error) {
	var index AudioIndex
	if err := c.getJSON(ctx, fmt.Sprintf("%s%03d/index.json", c.audioBaseUrl, surah), &index); err != nil {
		return nil, err
	}
	return &index, nil
}

// AudioUrl - Resolved audio file location: base + 3-digit surah dir + file
func (c *Client) AudioUrl(surah int, file string) string {
	return fmt.Sprintf("%s%03d/%s", c.audioBaseUrl, surah, file)
}

func (c *Client) FetchTranslation(ctx context.Context, surah int) (*TranslationDocument, error) {
	// %01d padding is a no-op for surahs 1-114; kept because the translation
	// files are named unpadded, unlike the 3-digit audio dirs
	var document TranslationDocument
	if err := c.getJSON(ctx, fmt.Sprintf("%sen_translation_%01d.json", c.translationBaseUrl, surah), &document); err != nil {
		return nil, err
	}
	return &document, nil
}

// AudioFile - File name for an ayah, "" when the index has no entry
func (index *AudioIndex) AudioFile(ayah int) string {
	if index == nil {
		return ""
	}
	return index.Verse[VerseKey(ayah)].File
}

// VerseKey - The "verse_<n>" key convention shared by all three sources
func VerseKey(ayah int) string {
	return fmt.Sprintf("verse_%d", ayah)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := utils.MakeHeadersRequest(ctx, http.MethodGet, url, nil, c.client)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
