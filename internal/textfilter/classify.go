// Package textfilter holds stateless heuristics that decide whether an
// incoming message is worth treating as a location query. All predicates
// are pure functions of their input.
package textfilter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Lang is the coarse language bucket of an input text.
type Lang string

const (
	// LangRussian means the text is mostly Cyrillic.
	LangRussian Lang = "ru"
	// LangEnglish is the default bucket for everything else.
	LangEnglish Lang = "en"
)

const cyrillicAlphabet = "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"

var cyrillicSet = func() map[rune]bool {
	set := make(map[rune]bool, len(cyrillicAlphabet))
	for _, r := range cyrillicAlphabet {
		set[r] = true
	}
	return set
}()

// DetectLanguage classifies text by script ratio: if at least 30% of the
// alphabetic characters (Cyrillic + ASCII letters, case-folded) are
// Cyrillic, the text is Russian. Texts with no alphabetic characters fall
// through to English.
func DetectLanguage(text string) Lang {
	var cyr, lat int
	for _, r := range strings.ToLower(text) {
		switch {
		case cyrillicSet[r]:
			cyr++
		case r < 128 && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			lat++
		}
	}
	total := cyr + lat
	if total < 1 {
		total = 1
	}
	if float64(cyr)/float64(total) >= 0.30 {
		return LangRussian
	}
	return LangEnglish
}

var nonASCIIAlpha = regexp.MustCompile(`[^a-z]`)

// IsGibberish flags keyboard-mash input ("asdasd", "qwerty"). Words are
// stripped to ASCII letters; if more than 10 letters remain and fewer than
// 15% of them are vowels, the text is considered gibberish. Empty input is
// gibberish. This is a ratio heuristic, not a dictionary check.
func IsGibberish(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return true
	}
	words := strings.Fields(t)
	if len(words) == 0 {
		return true
	}

	var totalChars, totalVowels int
	for _, word := range words {
		clean := nonASCIIAlpha.ReplaceAllString(word, "")
		totalChars += len(clean)
		for _, c := range clean {
			switch c {
			case 'a', 'e', 'i', 'o', 'u', 'y':
				totalVowels++
			}
		}
	}

	return totalChars > 10 && float64(totalVowels)/float64(totalChars) < 0.15
}

var (
	adLinkPattern   = regexp.MustCompile(`https?://|t\.me/|@`)
	adMarkerPattern = regexp.MustCompile(`^\s*(🍽|📍|📞|⏰|🚗|📃|📱|✨|•)`)
)

// IsAdvertisement decides whether a message is an unsolicited listing
// rather than a location query. Rules apply in order, first match wins:
//
//  1. one or two words: a city or state query, never an ad
//  2. a link, t.me reference or @handle: an ad
//  3. three or more non-empty lines that all open with a listing marker: an ad
//  4. longer than 300 characters: an ad
func IsAdvertisement(text string) bool {
	if text == "" {
		return false
	}

	t := strings.TrimSpace(text)

	if len(strings.Fields(t)) <= 2 {
		return false
	}

	if adLinkPattern.MatchString(t) {
		return true
	}

	var lines []string
	for _, ln := range strings.Split(t, "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, strings.TrimSpace(ln))
		}
	}
	if len(lines) >= 3 {
		allMarked := true
		for _, ln := range lines {
			if !adMarkerPattern.MatchString(ln) {
				allMarked = false
				break
			}
		}
		if allMarked {
			return true
		}
	}

	// Character count, not bytes: Cyrillic queries are two bytes a rune.
	return utf8.RuneCountInString(t) > 300
}
