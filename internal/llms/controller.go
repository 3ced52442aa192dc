package llms

// All about SENDING api requests to the completion provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"server/internal/utils"
)

// Client - One OpenAI-compatible chat-completions endpoint. Safe for
// concurrent use, the underlying http.Client does the pooling.
type Client struct {
	apiUrl string
	apiKey string
	model  Model
	client *http.Client
	logger *zap.Logger
}

func NewClient(apiUrl string, apiKey string, model Model, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		apiUrl: apiUrl,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// SendPrompt - Fire a system+user message pair at the provider and parse the
// full response. Non-2xx comes back as *UpstreamError with the body captured
// for logs; a timed-out call surfaces as a plain transport error.
func (llm *Client) SendPrompt(ctx context.Context, sysPrompt string, userPrompt string, temperature float64) (*CompleteAIResponse, error) {
	request := promptRequest{
		Model: llm.model,
		Messages: []AIMessage{
			{Role: SystemRole, Content: sysPrompt},
			{Role: UserRole, Content: userPrompt},
		},
		Temperature: temperature,
	}

	parsedRequest, _ := json.Marshal(request)
	resp, err := utils.MakeHeadersRequest(ctx, http.MethodPost, llm.apiUrl, bytes.NewReader(parsedRequest), llm.client, utils.Header{
		Key:   "Authorization",
		Value: "Bearer " + llm.apiKey,
	}, utils.Header{
		Key:   "Content-Type",
		Value: "application/json",
	})
	if err != nil {
		llm.logger.Error("completion request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		llm.logger.Error("completion request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return ParseResponse(resp.Body)
}

// ExtractEmotion - Reduce arbitrary mood text to one canonical lowercase
// emotion word. No retries; the caller decides whether failure is fatal.
func (llm *Client) ExtractEmotion(ctx context.Context, mood string) (string, error) {
	response, err := llm.SendPrompt(ctx, emotionSystemPrompt, mood, EmotionTemperature)
	if err != nil {
		return "", err
	}

	content, err := response.Content()
	if err != nil {
		llm.logger.Error("unexpected completion response while extracting emotion", zap.Error(err))
		return "", err
	}

	return strings.ToLower(strings.TrimSpace(content)), nil
}

// GenerateVerses - Ask for numVerses marker-delimited verse blocks for the
// emotion. Returns the raw completion text, the marker parser takes it from here.
func (llm *Client) GenerateVerses(ctx context.Context, emotion string, numVerses int) (string, error) {
	response, err := llm.SendPrompt(ctx, BuildVerseSystemPrompt(emotion, numVerses), BuildVerseUserPrompt(emotion, numVerses), VerseTemperature)
	if err != nil {
		return "", err
	}

	content, err := response.Content()
	if err != nil {
		llm.logger.Error("unexpected completion response while generating verses", zap.Error(err))
		return "", err
	}

	return content, nil
}
