package presskit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presskit/internal/locale"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNormalizer() Normalizer {
	return Normalizer{Now: func() time.Time { return fixedNow }, Language: locale.English}
}

func eventIDs(events []EventView) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestNormalizeEventsOrdersAndFilters(t *testing.T) {
	raw := map[string]any{
		"upcoming": []any{
			map[string]any{"id": "e2", "title": "Later", "date": "2025-08-01"},
			map[string]any{"id": "e1", "title": "Sooner", "date": "2025-07-01T23:00:00Z"},
			map[string]any{"title": "", "date": "2025-07-02"},
			map[string]any{"title": "   "},
			map[string]any{"date": "2025-07-03"},
			map[string]any{"id": "e3", "title": "Unknown date", "date": "soon"},
			map[string]any{"id": "e1", "title": "Duplicate", "date": "2025-06-15"},
			"not-an-object",
			map[string]any{"id": "e4", "title": "Stale", "date": "2025-01-01"},
		},
		"past": []any{
			map[string]any{"id": "p1", "title": "A", "date": "2024-01-01"},
			map[string]any{"id": "p2", "title": "B", "date": "2024-06-01"},
			map[string]any{"id": "p3", "title": "C"},
			map[string]any{"id": 7.0, "title": "Numeric id", "date": "2023-01-01"},
		},
	}

	view := fixedNormalizer().NormalizeEvents(raw)

	assert.Equal(t, []string{"e4", "e1", "e2", "e3"}, eventIDs(view.Upcoming))
	assert.Equal(t, []string{"p2", "p1", "7", "p3"}, eventIDs(view.Past))
	assert.True(t, view.HasUpcoming)
	assert.True(t, view.HasPast)
	assert.True(t, view.HasEvents)

	sooner := view.Upcoming[1]
	assert.Equal(t, "Sooner", sooner.Title)
	assert.False(t, sooner.IsPast)
	assert.Equal(t, "1 Jul 2025", sooner.DateFormatted)

	unknown := view.Upcoming[3]
	assert.Nil(t, unknown.Date)
	assert.False(t, unknown.IsPast)
	assert.Equal(t, "TBA", unknown.DateFormatted)
}

func TestNormalizeEventsKeepsUpstreamBucket(t *testing.T) {
	raw := map[string]any{
		"upcoming": []any{map[string]any{"id": "x", "title": "Already happened", "date": "2025-05-01"}},
	}

	view := fixedNormalizer().NormalizeEvents(raw)

	require.Len(t, view.Upcoming, 1)
	assert.True(t, view.Upcoming[0].IsPast)
	assert.Empty(t, view.Past)
	assert.False(t, view.HasPast)
}

func TestNormalizeEventsFields(t *testing.T) {
	raw := map[string]any{
		"upcoming": []any{
			map[string]any{
				"title":      "  Warehouse  ",
				"date":       "2025-09-12",
				"venue":      map[string]any{"name": "Tresor", "city": "Berlin", "country": "DE"},
				"ticketsUrl": "javascript:alert(1)",
				"ticketUrl":  "https://tickets.example.com/tresor",
				"isFeatured": true,
				"eventType":  "club",
			},
			map[string]any{
				"title":   "Open Air",
				"venue":   "Parque",
				"city":    "Buenos Aires",
				"country": "AR",
			},
		},
	}

	view := fixedNormalizer().NormalizeEvents(raw)
	require.Len(t, view.Upcoming, 2)

	first := view.Upcoming[0]
	assert.Equal(t, "warehouse-2025-09-12-tresor", first.ID)
	assert.Equal(t, "Warehouse", first.Title)
	assert.Equal(t, "Tresor", first.Venue)
	assert.Equal(t, "Berlin", first.City)
	assert.Equal(t, "DE", first.Country)
	assert.Equal(t, "https://tickets.example.com/tresor", first.TicketsURL)
	assert.True(t, first.IsFeatured)
	assert.Equal(t, "club", first.EventType)

	second := view.Upcoming[1]
	assert.Equal(t, "Parque", second.Venue)
	assert.Equal(t, "Buenos Aires", second.City)
	assert.Empty(t, second.TicketsURL)
}

func TestNormalizeEventsSpanishDates(t *testing.T) {
	n := fixedNormalizer()
	n.Language = locale.Spanish

	view := n.NormalizeEvents(map[string]any{
		"upcoming": []any{
			map[string]any{"title": "Fiesta", "date": "2025-08-20"},
			map[string]any{"title": "Sin fecha"},
		},
	})

	require.Len(t, view.Upcoming, 2)
	assert.Equal(t, "20 ago 2025", view.Upcoming[0].DateFormatted)
	assert.Equal(t, "Por anunciar", view.Upcoming[1].DateFormatted)
}

func TestNormalizeEventsEmptyShapes(t *testing.T) {
	for _, in := range []any{nil, map[string]any{}, []any{}, "events", map[string]any{"upcoming": "x", "past": 12}} {
		view := fixedNormalizer().NormalizeEvents(in)
		assert.NotNil(t, view.Upcoming)
		assert.NotNil(t, view.Past)
		assert.Empty(t, view.Upcoming)
		assert.Empty(t, view.Past)
		assert.False(t, view.HasEvents)
	}
}
