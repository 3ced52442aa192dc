package verses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReferenceWithSurahName(t *testing.T) {
	parsed := ParseReference("Surah Al-Baqarah (2:45)")
	require.NotNil(t, parsed)

	assert.Equal(t, 2, parsed.Surah)
	assert.Equal(t, 45, parsed.Ayah)
	// the name capture stops at the "(" so the parenthetical stays out
	assert.Equal(t, "Al-Baqarah", parsed.SurahName)
}

func TestParseReferenceNumbersOnly(t *testing.T) {
	parsed := ParseReference("2:45")
	require.NotNil(t, parsed)

	assert.Equal(t, 2, parsed.Surah)
	assert.Equal(t, 45, parsed.Ayah)
	assert.Empty(t, parsed.SurahName)
}

func TestParseReferenceNoNumbers(t *testing.T) {
	assert.Nil(t, ParseReference("no numbers here"))
}

func TestParseReferenceOneNumber(t *testing.T) {
	assert.Nil(t, ParseReference("chapter 2"))
}

func TestParseReferenceEmpty(t *testing.T) {
	assert.Nil(t, ParseReference(""))
}

func TestParseReferenceExtraNumbersIgnored(t *testing.T) {
	parsed := ParseReference("Surah An-Nisa (4:103) revealed in 614")
	require.NotNil(t, parsed)

	assert.Equal(t, 4, parsed.Surah)
	assert.Equal(t, 103, parsed.Ayah)
	assert.Equal(t, "An-Nisa", parsed.SurahName)
}

func TestParseReferenceLowercaseSurahKeywordSkipsName(t *testing.T) {
	// the "Surah" containment check is case-sensitive, numbers still parse
	parsed := ParseReference("surah al-fatiha (1:1)")
	require.NotNil(t, parsed)

	assert.Equal(t, 1, parsed.Surah)
	assert.Equal(t, 1, parsed.Ayah)
	assert.Empty(t, parsed.SurahName)
}

func TestParseReferenceMultilineNameStopsAtWordRun(t *testing.T) {
	parsed := ParseReference("Surah Ya-Sin 36:58")
	require.NotNil(t, parsed)

	assert.Equal(t, 36, parsed.Surah)
	assert.Equal(t, 58, parsed.Ayah)
	assert.Equal(t, "Ya-Sin 36", parsed.SurahName)
}
