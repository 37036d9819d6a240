package presskit

import "time"

// NormalizeEvents builds the upcoming and past event lists. Events stay in
// the bucket the payload put them in; IsPast is derived from the date alone.
func (n Normalizer) NormalizeEvents(events any) EventsView {
	var buckets rawBuckets
	decodeObject(events, &buckets)

	now := n.now()
	upcoming := DedupeByID(n.eventList(buckets.Upcoming, now), eventID)
	past := DedupeByID(n.eventList(buckets.Past, now), eventID)

	view := EventsView{
		Upcoming: SortByDate(upcoming, eventDate, Ascending),
		Past:     SortByDate(past, eventDate, Descending),
	}
	view.HasUpcoming = len(view.Upcoming) > 0
	view.HasPast = len(view.Past) > 0
	view.HasEvents = view.HasUpcoming || view.HasPast
	return view
}

func (n Normalizer) eventList(raw any, now time.Time) []EventView {
	items := asArray(raw)
	out := make([]EventView, 0, len(items))
	for i, item := range items {
		var e rawEvent
		if !decodeObject(item, &e) {
			continue
		}
		title := TrimString(e.Title)
		if title == "" {
			continue
		}

		venue, city, country := eventPlace(e)
		date := ParseDate(e.Date)

		id := idString(e.ID)
		if id == "" {
			id = GenerateStableKey(i, title, TrimString(e.Date), venue)
		}

		out = append(out, EventView{
			ID:            id,
			Title:         title,
			Date:          date,
			DateFormatted: FormatDate(date, n.lang()),
			Venue:         venue,
			City:          city,
			Country:       country,
			TicketsURL:    firstSafeURL(e.TicketsURL, e.TicketURL),
			IsFeatured:    asBool(e.IsFeatured),
			EventType:     TrimString(e.EventType),
			IsPast:        IsPastDate(date, now),
		})
	}
	return out
}

// eventPlace reads the venue either as a plain name or as an object carrying
// its own city and country. Top-level city/country win when present.
func eventPlace(e rawEvent) (venue, city, country string) {
	venue = TrimString(e.Venue)
	var v rawVenue
	if venue == "" && decodeObject(e.Venue, &v) {
		venue = TrimString(v.Name)
	}
	city = firstNonEmpty(e.City, v.City)
	country = firstNonEmpty(e.Country, v.Country)
	return venue, city, country
}

func eventID(e EventView) string { return e.ID }

func eventDate(e EventView) *time.Time { return e.Date }
