package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

var (
	// English is the default display language.
	English = language.English
	// Spanish is the second supported display language.
	Spanish = language.Spanish

	supported = []language.Tag{English, Spanish}
	matcher   = language.NewMatcher(supported)
)

var monthAbbrev = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
}

var toBeAnnounced = map[string]string{
	"en": "TBA",
	"es": "Por anunciar",
}

// Supported lists the languages the site renders.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Resolve maps a raw language segment (e.g. "es", "es-AR", "EN") onto a
// supported tag. Unknown or malformed input yields fallback.
func Resolve(raw string, fallback language.Tag) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return fallback
	}
	return supported[idx]
}

// Code returns the two-letter base code used in URLs and lookups.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	code := base.String()
	if _, ok := monthAbbrev[code]; !ok {
		return "en"
	}
	return code
}

// FormatDate renders t as "2 Jan 2006" using the month names of tag.
func FormatDate(t time.Time, tag language.Tag) string {
	t = t.UTC()
	months := monthAbbrev[Code(tag)]
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// TBA returns the placeholder shown for an unknown date.
func TBA(tag language.Tag) string {
	return toBeAnnounced[Code(tag)]
}
