package llms

import (
	"fmt"
	"strings"
)

const (
	UserRole   Role = "user"
	SystemRole Role = "system"

	// low temp for the extractor so the same mood keeps giving the same word,
	// a bit higher for verse generation so the selection isn't always identical
	EmotionTemperature = 0.1
	VerseTemperature   = 0.5
)

type Role string
type Model string

// AIMessage - Message API format for a message (`messages` in the request, `message` inside response choices)
type AIMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// promptRequest - Request format for the API
type promptRequest struct {
	Model       Model       `json:"model"`
	Messages    []AIMessage `json:"messages"`
	Temperature float64     `json:"temperature"`
}

// emotionSystemPrompt - Forces the EXACT emotion word back, not a category.
// The normalizer relies on this staying one lowercase token.
const emotionSystemPrompt = "You are a knowledgeable Islamic scholar specializing in Quranic exegesis.\n\n" +
	"Your task is to analyze the user's input and identify the EXACT emotion being expressed.\n" +
	"DO NOT generalize or categorize the emotion - preserve the specific emotion the user has mentioned.\n\n" +
	"For example:\n" +
	"- If the user says \"cheated\", return \"cheated\" not \"anger\"\n" +
	"- If the user says \"betrayed\", return \"betrayed\" not \"hurt\"\n" +
	"- If the user says \"anxious\", return \"anxious\" not \"fear\"\n\n" +
	"Return ONLY the emotion keyword in lowercase. Do not include any other text or explanation and respond in one word.\n" +
	"Do not include backticks or any special characters."

// BuildVerseSystemPrompt - Fixes the four-marker format the marker parser understands.
// The verse text is a placeholder on purpose, the real translation is fetched during enrichment.
func BuildVerseSystemPrompt(emotion string, numVerses int) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString(fmt.Sprintf("You are a knowledgeable Islamic scholar who specializes in the Quran. "+
		"Your task is to provide %d relevant verses from the Quran that address the provided emotion: \"%s\".\n\n", numVerses, emotion))
	promptBuilder.WriteString("It's important to find verses that are SPECIFICALLY relevant to the exact emotion provided, not a generalized category.\n\n")
	promptBuilder.WriteString("Format each verse exactly as follows:\n")
	promptBuilder.WriteString("1. Start with \"VERSE_START\" followed by a placeholder like \"Translation will be fetched\".\n")
	promptBuilder.WriteString("2. Then \"REF_START\" followed by the surah name and verse number in format \"Surah Name (chapter:verse)\".\n")
	promptBuilder.WriteString(fmt.Sprintf("3. Then \"REFL_START\" followed by a brief reflection (2-3 sentences) on how this verse helps "+
		"with the specific emotion of \"%s\". Please reference this exact emotion when doing the reflection.\n", emotion))
	promptBuilder.WriteString("4. End with \"VERSE_END\".\n\n")
	promptBuilder.WriteString("Use plain text only. Be accurate with verse references, always including the numerical chapter and verse numbers.")
	return promptBuilder.String()
}

// BuildVerseUserPrompt - The user half of the verse request
func BuildVerseUserPrompt(emotion string, numVerses int) string {
	return fmt.Sprintf("Emotion: %s. Please provide %d relevant verses that specifically address the feeling of %s.", emotion, numVerses, emotion)
}
