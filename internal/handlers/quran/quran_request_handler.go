package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"server/internal/handlers"
	"server/internal/llms"
)

type extractEmotionBody struct {
	Mood string `json:"mood"`
}

type versesBody struct {
	Emotion string `json:"emotion"`
}

// PostExtractEmotion - POST /api/quran/extract-emotion. Reduces free mood text
// to a single lowercase emotion word via the completion API. Upstream failures
// propagate their status code, this call has no fallback.
func (handler *Handler) PostExtractEmotion(c echo.Context) error {
	var body extractEmotionBody
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Mood) == "" {
		return c.JSON(http.StatusBadRequest, handlers.ErrorReturnType{Error: "Mood is required"})
	}

	emotionLabel, err := handler.Llm.ExtractEmotion(c.Request().Context(), body.Mood)
	if err != nil {
		return handler.completionError(c, err, "Failed to extract emotion")
	}

	return c.JSON(http.StatusOK, handlers.EmotionReturnType{Emotion: emotionLabel})
}

// PostVerses - POST /api/quran/verses. Runs the full pipeline: normalize the
// emotion, generate marker-delimited verses, parse them, enrich each one.
// Only the generator call is fatal; enrichment failures just leave fields null.
func (handler *Handler) PostVerses(c echo.Context) error {
	var body versesBody
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Emotion) == "" {
		return c.JSON(http.StatusBadRequest, handlers.ErrorReturnType{Error: "Emotion is required"})
	}

	ctx := c.Request().Context()
	emotionLabel := handler.Normalizer.Normalize(ctx, body.Emotion)

	content, err := handler.Llm.GenerateVerses(ctx, emotionLabel, handler.NumVerses)
	if err != nil {
		return handler.completionError(c, err, "Failed to fetch verses")
	}

	records := handler.Parser.Parse(content)
	enriched := handler.Enricher.EnrichAll(ctx, records)

	return c.JSON(http.StatusOK, handlers.VersesReturnType{Verses: enriched})
}

// completionError - Map a failed core LLM call onto the response. Provider
// status codes pass through (a 429 stays a 429), bad payload shapes and
// anything else are a 500.
func (handler *Handler) completionError(c echo.Context, err error, message string) error {
	var upstream *llms.UpstreamError
	if errors.As(err, &upstream) {
		return c.JSON(upstream.StatusCode, handlers.ErrorReturnType{
			Error:  message,
			Status: upstream.StatusCode,
		})
	}

	if errors.Is(err, llms.ErrInvalidResponse) {
		return c.JSON(http.StatusInternalServerError, handlers.ErrorReturnType{Error: "Invalid API response"})
	}

	handler.logger.Error("unexpected error handling quran request", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, handlers.ErrorReturnType{Error: "An unexpected error occurred"})
}
