package listing

import (
	"strings"
	"unicode/utf8"
)

// DefaultMessageLimit matches the message size cap of the delivery channel.
const DefaultMessageLimit = 4000

// Split chunks text into pieces of at most limit runes, preferring entry
// boundaries (a triple newline) over mid-entry cuts. A single oversized
// entry is hard-split on rune boundaries as a last resort.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	const sep = "\n\n\n"
	var chunks []string
	cur := ""
	for _, block := range strings.Split(text, sep) {
		candidate := block
		if cur != "" {
			candidate = cur + sep + block
		}
		if utf8.RuneCountInString(candidate) <= limit {
			cur = candidate
			continue
		}
		if cur != "" {
			chunks = append(chunks, cur)
			cur = ""
		}
		for utf8.RuneCountInString(block) > limit {
			runes := []rune(block)
			chunks = append(chunks, string(runes[:limit]))
			block = string(runes[limit:])
		}
		cur = block
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}
