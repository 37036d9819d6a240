package presskit

import "time"

// NormalizeReleases accepts either {upcoming, past} buckets or a bare array
// and returns a single list ordered newest first.
func (n Normalizer) NormalizeReleases(releases any) ReleasesView {
	var raw []any
	if items := asArray(releases); items != nil {
		raw = items
	} else {
		var buckets rawBuckets
		if decodeObject(releases, &buckets) {
			raw = append(raw, asArray(buckets.Upcoming)...)
			raw = append(raw, asArray(buckets.Past)...)
		}
	}

	items := make([]ReleaseView, 0, len(raw))
	for i, item := range raw {
		var r rawRelease
		if !decodeObject(item, &r) {
			continue
		}
		title := TrimString(r.Title)
		if title == "" {
			continue
		}

		rawDate := firstNonEmpty(r.ReleaseDate, r.Date)
		date := ParseDate(rawDate)

		id := idString(r.ID)
		if id == "" {
			id = GenerateStableKey(i, title, rawDate)
		}

		items = append(items, ReleaseView{
			ID:                   id,
			Title:                title,
			ReleaseDate:          date,
			ReleaseDateFormatted: FormatDate(date, n.lang()),
			Label:                TrimString(r.Label),
			URL:                  SafeURL(r.URL),
			CoverURL:             SafeURL(r.CoverURL),
		})
	}

	items = DedupeByID(items, func(r ReleaseView) string { return r.ID })
	view := ReleasesView{
		Items: SortByDate(items, func(r ReleaseView) *time.Time { return r.ReleaseDate }, Descending),
	}
	view.HasReleases = len(view.Items) > 0
	return view
}
