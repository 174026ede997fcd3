// Package listing edits the rich-text representations of catalog entries.
// Every mutable field has a marker in the text (an emoji prefix or an HTML
// anchor); edits locate the marker with a pattern and substitute in place,
// so the surrounding text never has to be re-rendered.
package listing

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/myhalal/directory/internal/model"
)

// Field names a mutable part of a listing.
type Field string

const (
	FieldName         Field = "name"
	FieldLocationName Field = "location_name"
	FieldLocationLink Field = "location_link"
	FieldDetails      Field = "details"
	FieldMenu         Field = "menu"
	FieldPhone        Field = "phone"
	FieldHandle       Field = "handle"
	FieldNote         Field = "note"
)

var (
	// ErrUnknownField reports a field name outside the set above.
	ErrUnknownField = eris.New("listing: unknown field")
	// ErrNoMarker reports that no representation contained the field's marker.
	ErrNoMarker = eris.New("listing: field marker not found")
	// ErrBadIndex reports an out-of-range location index.
	ErrBadIndex = eris.New("listing: location index out of range")
	// ErrBadValue reports a value that fails the field's validation.
	ErrBadValue = eris.New("listing: invalid value for field")
)

var (
	locNameRe     = regexp.MustCompile(`(📍 <a\s+href\s*=\s*["'][^"']*["']\s*>)[^<]*?(</a>)`)
	locLinkRe     = regexp.MustCompile(`(📍\s*<a\s+href\s*=\s*["'])[^"']*(["'][^>]*>[^<]*</a>)`)
	detailsRe     = regexp.MustCompile(`(?s)(📍.*?</a>)[ \t]*\n.*?\n(📋)`)
	detailsAltRe  = regexp.MustCompile(`(?s)(📍.*?</a>)[ \t]*\n.*?\n(🌐)`)
	menuRe        = regexp.MustCompile(`(<a\s+href\s*=\s*["']https://t\.me/myhalalmenu/)[^"']+(["']\s*>Меню</a>)`)
	phoneRe       = regexp.MustCompile(`📞[ \t]*[+\d \t()–-]+`)
	handleLineRe  = regexp.MustCompile(`📱 Telegram:\s*@\w+(?:,\s*@\w+)*`)
	handleValueRe = regexp.MustCompile(`^@\w{3,}$`)
	noteRe        = regexp.MustCompile(`(?m)^📝 Q.*?shimcha:.*$`)
	noteLineRe    = regexp.MustCompile(`(?m)^📝 Q.*?shimcha:.*\n?`)
	menuNumRe     = regexp.MustCompile(`^\d+$`)
)

// Edit applies a field substitution to every representation of p. The edit
// succeeds if at least one representation contained the marker; a
// representation without the marker is left untouched. Index is the 1-based
// position of the 📍 line for the location fields and is ignored elsewhere.
func Edit(p *model.Place, field Field, value string, index int) error {
	switch field {
	case FieldHandle:
		if !handleValueRe.MatchString(value) {
			return eris.Wrapf(ErrBadValue, "handle %q must match @name", value)
		}
	case FieldMenu:
		if !menuNumRe.MatchString(value) {
			return eris.Wrapf(ErrBadValue, "menu reference %q must be numeric", value)
		}
	case FieldLocationName, FieldLocationLink:
		if index < 1 {
			return ErrBadIndex
		}
	case FieldName, FieldDetails, FieldPhone, FieldNote:
	default:
		return eris.Wrapf(ErrUnknownField, "%q", field)
	}

	foundAny := false
	maxMarkers := 0
	for _, rep := range p.Representations() {
		if *rep == "" {
			continue
		}
		next, markers, found := applyField(*rep, p.Name, field, value, index)
		if markers > maxMarkers {
			maxMarkers = markers
		}
		if found {
			foundAny = true
		}
		if next != *rep {
			*rep = next
		}
	}
	if !foundAny {
		if (field == FieldLocationName || field == FieldLocationLink) && maxMarkers > 0 && index > maxMarkers {
			return ErrBadIndex
		}
		return ErrNoMarker
	}
	if field == FieldName {
		p.Name = value
	}
	return nil
}

// applyField rewrites one representation. It returns the new text, how many
// markers the text contains (indexed location fields only), and whether the
// field's marker was present. Found is independent of whether the text
// actually changed: re-applying the current value is a success, not a
// missing marker.
func applyField(text, oldName string, field Field, value string, index int) (string, int, bool) {
	switch field {
	case FieldName:
		return applyName(text, oldName, value)
	case FieldLocationName:
		next, markers := replaceNth(locNameRe, text, value, index)
		return next, markers, index >= 1 && index <= markers
	case FieldLocationLink:
		next, markers := replaceNth(locLinkRe, text, value, index)
		return next, markers, index >= 1 && index <= markers
	case FieldDetails:
		// The span ends at the menu marker; the site marker bounds it
		// only when no menu line exists.
		re := detailsRe
		if !re.MatchString(text) {
			re = detailsAltRe
		}
		return re.ReplaceAllString(text, "${1}\n"+escapeRepl(value)+"\n${2}"), 0, re.MatchString(text)
	case FieldMenu:
		return menuRe.ReplaceAllString(text, "${1}"+escapeRepl(value)+"${2}"), 0, menuRe.MatchString(text)
	case FieldPhone:
		return phoneRe.ReplaceAllString(text, "📞 "+escapeRepl(value)), 0, phoneRe.MatchString(text)
	case FieldHandle:
		return handleLineRe.ReplaceAllString(text, "📱 Telegram: "+escapeRepl(value)), 0, handleLineRe.MatchString(text)
	case FieldNote:
		// Appending a note always succeeds; removing an absent one does not.
		return applyNote(text, value), 0, value != "" || noteRe.MatchString(text)
	}
	return text, 0, false
}

func applyName(text, oldName, value string) (string, int, bool) {
	if oldName == "" {
		return text, 0, false
	}
	tagRe := regexp.MustCompile(`(?i)<b>\s*` + regexp.QuoteMeta(oldName) + `\s*</b>`)
	lineRe := regexp.MustCompile(`(?im)^🍽️\s*` + regexp.QuoteMeta(oldName))
	found := tagRe.MatchString(text) || lineRe.MatchString(text)
	text = tagRe.ReplaceAllString(text, "<b>"+escapeRepl(value)+"</b>")
	return lineRe.ReplaceAllString(text, "🍽️ "+escapeRepl(value)), 0, found
}

// applyNote replaces the trailing note line, or appends one. An empty value
// removes the line.
func applyNote(text, value string) string {
	if noteRe.MatchString(text) {
		if value == "" {
			return noteLineRe.ReplaceAllString(text, "")
		}
		return noteRe.ReplaceAllString(text, "📝 Qo'shimcha: "+escapeRepl(value))
	}
	if value == "" {
		return text
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + "📝 Qo'shimcha: " + value + "\n"
}

// replaceNth substitutes the inner capture span of the 1-based nth match.
// The pattern must have exactly two capture groups bracketing the span.
func replaceNth(re *regexp.Regexp, text, value string, n int) (string, int) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if n < 1 || n > len(matches) {
		return text, len(matches)
	}
	m := matches[n-1]
	// m[3] is the end of group 1, m[4] the start of group 2.
	return text[:m[3]] + value + text[m[4]:], len(matches)
}

// escapeRepl makes a literal value safe for Regexp.ReplaceAllString.
func escapeRepl(value string) string {
	return strings.ReplaceAll(value, "$", "$$")
}
