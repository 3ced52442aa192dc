package llms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseValid(t *testing.T) {
	body := `{"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"betrayed"}}]}`
	response, err := ParseResponse(strings.NewReader(body))
	require.NoError(t, err)

	content, err := response.Content()
	require.NoError(t, err)
	assert.Equal(t, "betrayed", content)
}

func TestParseResponseMalformedJSON(t *testing.T) {
	_, err := ParseResponse(strings.NewReader("<html>not json</html>"))
	assert.Error(t, err)
}

func TestContentNoChoices(t *testing.T) {
	response, err := ParseResponse(strings.NewReader(`{"choices":[]}`))
	require.NoError(t, err)

	_, err = response.Content()
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestContentEmptyMessage(t *testing.T) {
	response, err := ParseResponse(strings.NewReader(`{"choices":[{"message":{"role":"assistant","content":"  \n"}}]}`))
	require.NoError(t, err)

	_, err = response.Content()
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestContentTrimsWhitespace(t *testing.T) {
	response, err := ParseResponse(strings.NewReader(`{"choices":[{"message":{"content":"  anxious \n"}}]}`))
	require.NoError(t, err)

	content, err := response.Content()
	require.NoError(t, err)
	assert.Equal(t, "anxious", content)
}
