package handlers

import (
	"go.uber.org/zap"

	"server/internal/config"
	"server/internal/emotion"
	"server/internal/llms"
	"server/internal/quranapi"
	"server/internal/verses"
)

// Handler - Wires the whole mood -> verses pipeline for the quran routes.
type Handler struct {
	Normalizer *emotion.Normalizer
	Llm        *llms.Client
	Parser     *verses.MarkerParser
	Enricher   *verses.Enricher
	NumVerses  int
	logger     *zap.Logger
}

func NewHandler(cfg *config.Config, logger *zap.Logger) *Handler {
	llmClient := llms.NewClient(cfg.LlmApiUrl, cfg.LlmApiKey, llms.Model(cfg.LlmModel), cfg.UpstreamTimeout, logger)
	sources := quranapi.NewClient(cfg.QuranApiUrl, cfg.AudioBaseUrl, cfg.TranslationBaseUrl, cfg.UpstreamTimeout)

	return &Handler{
		Normalizer: emotion.NewNormalizer(llmClient, logger),
		Llm:        llmClient,
		Parser:     verses.NewMarkerParser(logger),
		Enricher:   verses.NewEnricher(sources, logger),
		NumVerses:  cfg.NumVerses,
		logger:     logger,
	}
}
