package llms

// Parse responses returned from controller.go

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidResponse - The provider said 200 but the payload is missing the
// message content. Always a 500 for the caller, there is nothing to propagate.
var ErrInvalidResponse = errors.New("invalid completion response: no message content")

// UpstreamError - Non-success status from the completion provider. Keeps the
// status so handlers can propagate it (429s especially) and the body for logs.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed with status %d", e.StatusCode)
}

// completeAIChoice - Returned in choices{} JSON object by the provider
type completeAIChoice struct {
	Index        int       `json:"index"`
	FinishReason string    `json:"finish_reason"`
	Message      AIMessage `json:"message"`
}

// CompleteAIResponse - Full (non-streamed) API response
type CompleteAIResponse struct {
	Choices []completeAIChoice `json:"choices"`
}

// ParseResponse - Decode the non-streamed response body from the completion API
func ParseResponse(body io.Reader) (*CompleteAIResponse, error) {
	var response CompleteAIResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Content - The first choice's message content, trimmed. Empty or absent
// content means the provider sent us something we can't use.
func (response *CompleteAIResponse) Content() (string, error) {
	if len(response.Choices) == 0 {
		return "", ErrInvalidResponse
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", ErrInvalidResponse
	}

	return content, nil
}
