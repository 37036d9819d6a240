package presskit

import (
	"time"

	"golang.org/x/text/language"

	"presskit/internal/locale"
)

// Caps that mirror hard limits of the page layout.
const (
	MaxGenres        = 5
	MaxGalleryImages = 20
	MaxYoutubeVideos = 6
)

// Normalizer converts raw presskit payloads into view models. The zero value
// is ready to use: it reads the wall clock and formats dates in English.
// A Normalizer holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	// Now returns the reference time for past/upcoming flags.
	Now func() time.Time
	// Language selects the locale of formatted dates.
	Language language.Tag
}

// NewNormalizer returns a Normalizer formatting dates in lang.
func NewNormalizer(lang language.Tag) Normalizer {
	return Normalizer{Language: lang}
}

func (n Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n Normalizer) lang() language.Tag {
	if n.Language == language.Und {
		return locale.English
	}
	return n.Language
}

// NormalizeAbout normalizes the about section using the default Normalizer.
func NormalizeAbout(profile, aboutMedia any) AboutView {
	return Normalizer{}.NormalizeAbout(profile, aboutMedia)
}

// NormalizeContact normalizes the contact block using the default Normalizer.
func NormalizeContact(contact, driveURL any) ContactView {
	return Normalizer{}.NormalizeContact(contact, driveURL)
}

// NormalizeEvents normalizes events using the default Normalizer.
func NormalizeEvents(events any) EventsView {
	return Normalizer{}.NormalizeEvents(events)
}

// NormalizeGallery normalizes the gallery using the default Normalizer.
func NormalizeGallery(gallery any) GalleryView {
	return Normalizer{}.NormalizeGallery(gallery)
}

// NormalizeReleases normalizes releases using the default Normalizer.
func NormalizeReleases(releases any) ReleasesView {
	return Normalizer{}.NormalizeReleases(releases)
}

// NormalizeRider normalizes the technical rider using the default Normalizer.
func NormalizeRider(rider any) RiderView {
	return Normalizer{}.NormalizeRider(rider)
}

// NormalizeSocials normalizes social channels using the default Normalizer.
func NormalizeSocials(contact any) SocialsView {
	return Normalizer{}.NormalizeSocials(contact)
}

// NormalizeYoutube normalizes videos using the default Normalizer.
func NormalizeYoutube(youtube any) YoutubeView {
	return Normalizer{}.NormalizeYoutube(youtube)
}

// GetPresskitData builds the page view using the default Normalizer.
func GetPresskitData(raw any) PresskitPageView {
	return Normalizer{}.GetPresskitData(raw)
}
