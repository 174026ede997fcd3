// Package normalize turns free-form location text into canonical
// "City, State, USA" geocoding queries. The heuristic path recognizes
// two-letter state codes; the assisted path delegates to a language model.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StateCodes maps two-letter USPS codes to full state names (lower case).
var StateCodes = map[string]string{
	"id": "idaho", "ca": "california", "tx": "texas", "fl": "florida",
	"wa": "washington", "co": "colorado", "tn": "tennessee", "oh": "ohio",
	"pa": "pennsylvania", "il": "illinois", "ny": "new york", "nc": "north carolina",
	"nv": "nevada", "ut": "utah", "az": "arizona", "or": "oregon",
	"mo": "missouri", "mn": "minnesota", "ks": "kansas", "ky": "kentucky",
	"va": "virginia", "md": "maryland", "ms": "mississippi", "al": "alabama",
	"ga": "georgia", "sc": "south carolina", "la": "louisiana", "ar": "arkansas",
	"ok": "oklahoma", "nm": "new mexico", "ne": "nebraska", "ia": "iowa",
	"wi": "wisconsin", "mi": "michigan", "in": "indiana", "wv": "west virginia",
	"nj": "new jersey", "ct": "connecticut", "ri": "rhode island", "ma": "massachusetts",
	"vt": "vermont", "nh": "new hampshire", "me": "maine", "de": "delaware",
	"dc": "district of columbia", "ak": "alaska", "hi": "hawaii", "mt": "montana",
	"nd": "north dakota", "sd": "south dakota", "wy": "wyoming",
}

var (
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
	greetingPrefix  = regexp.MustCompile(`(?i)^\s*(assalomu alaykum|asss?alom|hello|hi|привет|салом|assalom|aleykum|alaykum)\s*`)
	questionSuffix  = regexp.MustCompile(`(?i)[.?]*(bormi|есть|exist|available)\s*$`)
	titleCaser      = cases.Title(language.English)
	countrySuffix   = "USA"
	countryLowered  = "usa"
)

// StripGreeting removes multilingual greeting prefixes and trailing
// interrogatives so only the location phrase remains.
func StripGreeting(text string) string {
	t := greetingPrefix.ReplaceAllString(text, "")
	t = questionSuffix.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// Normalize converts free text into a "City, State, USA" query. The first
// recognized state code selects the state; the code token and every token
// of length ≤2 are dropped, the rest become the title-cased locality.
// Returns ok=false when no locality term survives (state-only input).
func Normalize(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "", false
	}

	// First state code in input order wins (map iteration would be
	// nondeterministic when the text names two states).
	words := wordPattern.FindAllString(t, -1)
	var stateName string
	for _, w := range words {
		if full, ok := StateCodes[w]; ok {
			stateName = titleCaser.String(full)
			break
		}
	}

	var cityWords []string
	for _, w := range words {
		if _, isCode := StateCodes[w]; isCode {
			continue
		}
		if len(w) <= 2 {
			continue
		}
		cityWords = append(cityWords, w)
	}

	city := titleCaser.String(strings.Join(cityWords, " "))
	if city == "" {
		return "", false
	}

	if stateName != "" {
		return city + ", " + stateName + ", " + countrySuffix, true
	}
	return city + ", " + countrySuffix, true
}

// EnsureCountry appends the country suffix when a canonical location string
// lacks it.
func EnsureCountry(location string) string {
	if strings.Contains(strings.ToLower(location), countryLowered) {
		return location
	}
	return location + ", " + countrySuffix
}
