package listing

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_UnderLimit(t *testing.T) {
	chunks := Split("short text", 4000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplit_PrefersEntryBoundaries(t *testing.T) {
	entry := strings.Repeat("x", 30)
	text := entry + "\n\n\n" + entry + "\n\n\n" + entry

	chunks := Split(text, 70)

	require.Len(t, chunks, 2)
	assert.Equal(t, entry+"\n\n\n"+entry, chunks[0])
	assert.Equal(t, entry, chunks[1])
}

func TestSplit_OversizedEntryHardSplit(t *testing.T) {
	text := strings.Repeat("а", 95) // cyrillic, multi-byte runes

	chunks := Split(text, 40)

	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 40)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplit_ReassemblesLosslessly(t *testing.T) {
	entries := []string{
		strings.Repeat("a", 50),
		strings.Repeat("б", 50),
		strings.Repeat("c", 50),
		strings.Repeat("d", 50),
	}
	text := strings.Join(entries, "\n\n\n")

	chunks := Split(text, 120)
	assert.Equal(t, text, strings.Join(chunks, "\n\n\n"))
}

func TestLocationExtractors(t *testing.T) {
	text := "🍽️ <b>Place</b>\n" +
		"📍 <a href='https://maps.google.com/?q=1,2'>Brooklyn NY</a>\n" +
		"some details\n" +
		"📍 <a href='https://maps.app.goo.gl/xyz'>Newark NJ</a>\n"

	assert.Equal(t, []string{"https://maps.google.com/?q=1,2", "https://maps.app.goo.gl/xyz"},
		LocationLinks(text))
	assert.Equal(t, []string{"Brooklyn NY", "Newark NJ"}, LocationNames(text))
}

func TestLocationExtractors_None(t *testing.T) {
	assert.Empty(t, LocationLinks("no anchors here"))
	assert.Empty(t, LocationNames("no anchors here"))
}
