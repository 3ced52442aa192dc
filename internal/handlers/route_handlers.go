package handlers

import "server/internal/verses"

// ErrorReturnType - Error envelope for every non-2xx response. Status is only
// set when we're propagating an upstream provider's status code.
type ErrorReturnType struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

type EmotionReturnType struct {
	Emotion string `json:"emotion"`
}

type VersesReturnType struct {
	Verses []verses.EnrichedVerse `json:"verses"`
}
