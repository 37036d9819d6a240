package presskit

import (
	"github.com/mitchellh/mapstructure"
)

// Raw payload shapes. Every field is left as any so that a wrongly typed
// value never fails the surrounding object; the normalizers coerce each
// field individually.

type rawPresskit struct {
	Slug           any `json:"slug"`
	ArtistName     any `json:"artistName"`
	Profile        any `json:"profile"`
	Media          any `json:"media"`
	Events         any `json:"events"`
	Releases       any `json:"releases"`
	Youtube        any `json:"youtube"`
	TechnicalRider any `json:"technicalRider"`
	Contact        any `json:"contact"`
	DriveURL       any `json:"driveUrl"`
}

type rawMedia struct {
	About   any `json:"about"`
	Gallery any `json:"gallery"`
}

type rawProfile struct {
	ArtistName        any `json:"artistName"`
	ShortBio          any `json:"shortBio"`
	LongBio           any `json:"longBio"`
	Bio               any `json:"bio"`
	Genres            any `json:"genres"`
	EventTypes        any `json:"eventTypes"`
	Location          any `json:"location"`
	City              any `json:"city"`
	Country           any `json:"country"`
	YearsOfExperience any `json:"yearsOfExperience"`
	TotalEvents       any `json:"totalEvents"`
	AboutImage        any `json:"aboutImage"`
}

type rawAboutMedia struct {
	ImageURL any `json:"imageUrl"`
	URL      any `json:"url"`
	Image    any `json:"image"`
}

type rawLocation struct {
	City    any `json:"city"`
	Region  any `json:"region"`
	Country any `json:"country"`
}

type rawBuckets struct {
	Upcoming any `json:"upcoming"`
	Past     any `json:"past"`
}

type rawEvent struct {
	ID         any `json:"id"`
	Title      any `json:"title"`
	Date       any `json:"date"`
	Venue      any `json:"venue"`
	City       any `json:"city"`
	Country    any `json:"country"`
	TicketsURL any `json:"ticketsUrl"`
	TicketURL  any `json:"ticketUrl"`
	IsFeatured any `json:"isFeatured"`
	EventType  any `json:"eventType"`
}

type rawVenue struct {
	Name    any `json:"name"`
	City    any `json:"city"`
	Country any `json:"country"`
}

type rawRelease struct {
	ID          any `json:"id"`
	Title       any `json:"title"`
	ReleaseDate any `json:"releaseDate"`
	Date        any `json:"date"`
	Label       any `json:"label"`
	URL         any `json:"url"`
	CoverURL    any `json:"coverUrl"`
}

type rawImage struct {
	ID      any `json:"id"`
	URL     any `json:"url"`
	Src     any `json:"src"`
	Alt     any `json:"alt"`
	Caption any `json:"caption"`
	Width   any `json:"width"`
	Height  any `json:"height"`
}

type rawRider struct {
	Items       any `json:"items"`
	DownloadURL any `json:"downloadUrl"`
	PdfURL      any `json:"pdfUrl"`
}

type rawRiderItem struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	Title       any `json:"title"`
	ImageURL    any `json:"imageUrl"`
	CustomTitle any `json:"customTitle"`
	Note        any `json:"note"`
	SortOrder   any `json:"sortOrder"`
	Item        any `json:"item"`
}

type rawContact struct {
	PrimaryEmail    any `json:"primaryEmail"`
	PrimaryWhatsapp any `json:"primaryWhatsapp"`
	Email           any `json:"email"`
	Whatsapp        any `json:"whatsapp"`
	Channels        any `json:"channels"`
}

type rawChannel struct {
	ID       any `json:"id"`
	Platform any `json:"platform"`
	Type     any `json:"type"`
	Name     any `json:"name"`
	URL      any `json:"url"`
	Label    any `json:"label"`
	Handle   any `json:"handle"`
}

type rawYoutube struct {
	Videos any `json:"videos"`
}

type rawVideo struct {
	ID      any `json:"id"`
	URL     any `json:"url"`
	VideoID any `json:"videoId"`
}

// decodeObject fills out from a JSON object. It reports false when raw is
// not an object, in which case out is left at its zero value.
func decodeObject(raw any, out any) bool {
	m, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    out,
		TagName:   "json",
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return false
	}
	return decoder.Decode(m) == nil
}

// asArray returns raw as a JSON array, or nil for any other shape.
func asArray(raw any) []any {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	return items
}

// firstNonEmpty returns the first non-blank trimmed string among values.
func firstNonEmpty(values ...any) string {
	for _, v := range values {
		if s := TrimString(v); s != "" {
			return s
		}
	}
	return ""
}

// asBool accepts JSON booleans and the strings "true"/"false".
func asBool(v any) bool {
	switch typed := v.(type) {
	case bool:
		return typed
	case string:
		return TrimString(typed) == "true"
	}
	return false
}
