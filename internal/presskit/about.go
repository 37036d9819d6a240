package presskit

import "strings"

// NormalizeAbout builds the about section from the profile object and the
// media.about object.
func (n Normalizer) NormalizeAbout(profile, aboutMedia any) AboutView {
	var p rawProfile
	decodeObject(profile, &p)
	var m rawAboutMedia
	decodeObject(aboutMedia, &m)

	view := AboutView{
		ShortBio:   TrimString(p.ShortBio),
		LongBio:    firstNonEmpty(p.LongBio, p.Bio),
		Genres:     dedupeFold(ClampArray(TrimStrings(p.Genres), MaxGenres)),
		EventTypes: dedupeFold(TrimStrings(p.EventTypes)),
		Location:   normalizeLocation(p.Location, p.City, p.Country),
		AboutImage: firstSafeURL(m.ImageURL, m.URL, m.Image, p.AboutImage),
	}
	view.YearsOfExperience = nonNegative(p.YearsOfExperience)
	view.TotalEvents = nonNegative(p.TotalEvents)

	view.HasContent = view.ShortBio != "" ||
		view.LongBio != "" ||
		len(view.Genres) > 0 ||
		len(view.EventTypes) > 0 ||
		view.Location != "" ||
		view.YearsOfExperience > 0 ||
		view.TotalEvents > 0 ||
		view.AboutImage != ""

	return view
}

// normalizeLocation accepts "City, Country", a {city, region, country}
// object, or loose city/country fields on the profile.
func normalizeLocation(location, city, country any) string {
	if s := TrimString(location); s != "" {
		return s
	}
	var loc rawLocation
	if decodeObject(location, &loc) {
		if s := joinNonEmpty(loc.City, loc.Region, loc.Country); s != "" {
			return s
		}
	}
	return joinNonEmpty(city, country)
}

func joinNonEmpty(values ...any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s := TrimString(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func nonNegative(v any) int {
	i, ok := ToInt(v)
	if !ok || i < 0 {
		return 0
	}
	return i
}

func firstSafeURL(values ...any) string {
	for _, v := range values {
		if u := SafeURL(v); u != "" {
			return u
		}
	}
	return ""
}

// dedupeFold removes case-insensitive duplicates, keeping the first spelling.
func dedupeFold(values []string) []string {
	return DedupeByID(values, strings.ToLower)
}
