package presskit

import (
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"presskit/internal/locale"
)

// SortDirection selects ascending or descending date order.
type SortDirection int

const (
	// Ascending puts the earliest date first.
	Ascending SortDirection = iota
	// Descending puts the latest date first.
	Descending
)

const maxKeyLength = 64

var (
	youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

	dateLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
)

// TrimString returns v trimmed when it is a string and "" for anything else.
func TrimString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// TrimStrings collects the non-blank strings of a JSON array, trimmed and in
// source order. A single string is treated as a one-element list.
func TrimStrings(v any) []string {
	var raw []any
	switch typed := v.(type) {
	case []any:
		raw = typed
	case []string:
		raw = make([]any, len(typed))
		for i, s := range typed {
			raw[i] = s
		}
	case string:
		raw = []any{typed}
	default:
		return []string{}
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := TrimString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SafeURL returns the trimmed value when it is an absolute http(s) URL with a
// host, otherwise "".
func SafeURL(v any) string {
	s := TrimString(v)
	if s == "" || !utf8.ValidString(s) || strings.ContainsAny(s, " \t\r\n") {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return ""
	}
	if u.Hostname() == "" {
		return ""
	}
	return s
}

// ParseDate parses ISO-8601-like strings. Values without an offset are UTC.
// Anything else, including the zero time, yields nil.
func ParseDate(v any) *time.Time {
	switch typed := v.(type) {
	case time.Time:
		if typed.IsZero() {
			return nil
		}
		t := typed.UTC()
		return &t
	case *time.Time:
		if typed == nil || typed.IsZero() {
			return nil
		}
		t := typed.UTC()
		return &t
	}

	s := TrimString(v)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// FormatDate renders t for display in tag, or the "to be announced"
// placeholder when t is nil.
func FormatDate(t *time.Time, tag language.Tag) string {
	if t == nil {
		return locale.TBA(tag)
	}
	return locale.FormatDate(*t, tag)
}

// IsPastDate reports whether t lies before now. A nil date is never past.
func IsPastDate(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	return t.Before(now)
}

// SortByDate returns a stably sorted copy of items. Items whose key is nil are
// placed last in either direction.
func SortByDate[T any](items []T, key func(T) *time.Time, dir SortDirection) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		ta, tb := key(a), key(b)
		switch {
		case ta == nil && tb == nil:
			return 0
		case ta == nil:
			return 1
		case tb == nil:
			return -1
		case dir == Descending:
			return tb.Compare(*ta)
		default:
			return ta.Compare(*tb)
		}
	})
	return out
}

// ClampArray returns at most max leading items of items as a new slice.
func ClampArray[T any](items []T, max int) []T {
	if max <= 0 || len(items) == 0 {
		return []T{}
	}
	if len(items) > max {
		items = items[:max]
	}
	return slices.Clone(items)
}

// DedupeByID drops every item whose id was already seen, keeping the first.
func DedupeByID[T any](items []T, id func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := id(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// GenerateStableKey derives a deterministic identifier from the non-blank
// seeds, falling back to "item-<index>" when none are usable.
func GenerateStableKey(index int, seeds ...string) string {
	parts := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		if slug := slugify(seed); slug != "" {
			parts = append(parts, slug)
		}
	}
	key := strings.Join(parts, "-")
	if key == "" {
		return "item-" + strconv.Itoa(index)
	}
	if len(key) > maxKeyLength {
		// Keep long keys distinct by suffixing a digest of the full slug.
		digest := uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()[:8]
		key = strings.TrimRight(key[:maxKeyLength-len(digest)-1], "-") + "-" + digest
	}
	return key
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFKD.String(strings.ToLower(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ExtractYoutubeID returns the 11 character video id of a YouTube watch,
// share, embed, shorts or live URL, or of a bare id. Unrecognized input
// yields "".
func ExtractYoutubeID(v any) string {
	s := TrimString(v)
	if s == "" {
		return ""
	}
	if youtubeIDPattern.MatchString(s) {
		return s
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "m.", "music."} {
		host = strings.TrimPrefix(host, prefix)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) >= 2 && isYoutubePathPrefix(segments[0]):
			id = segments[1]
		}
	}

	if !youtubeIDPattern.MatchString(id) {
		return ""
	}
	return id
}

func isYoutubePathPrefix(segment string) bool {
	switch segment {
	case "embed", "shorts", "live", "v":
		return true
	}
	return false
}

// ToInt converts JSON numbers and numeric strings into an int. Fractional,
// non-finite and out-of-range values are rejected.
func ToInt(v any) (int, bool) {
	switch typed := v.(type) {
	case int:
		return typed, true
	case int32:
		return int(typed), true
	case int64:
		if typed > math.MaxInt32 || typed < math.MinInt32 {
			return 0, false
		}
		return int(typed), true
	case float64:
		return floatToInt(typed)
	case float32:
		return floatToInt(float64(typed))
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		s := strings.TrimSpace(typed)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// idString turns an upstream identifier (string or number) into a string.
func idString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	if n, ok := ToInt(v); ok {
		return strconv.Itoa(n)
	}
	return ""
}
