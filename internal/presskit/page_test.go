package presskit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPresskitDataEndToEnd(t *testing.T) {
	raw := map[string]any{
		"slug": "dj-x",
		"events": map[string]any{
			"upcoming": []any{map[string]any{"title": "Show A", "date": "2099-01-01"}},
			"past":     []any{},
		},
	}

	page := GetPresskitData(raw)

	assert.Equal(t, "dj-x", page.Slug)
	assert.Equal(t, "", page.ArtistName)

	require.Len(t, page.Events.Upcoming, 1)
	assert.Equal(t, "Show A", page.Events.Upcoming[0].Title)
	assert.False(t, page.Events.Upcoming[0].IsPast)
	assert.True(t, page.Events.HasUpcoming)
	assert.False(t, page.Events.HasPast)
	assert.True(t, page.Events.HasEvents)

	assert.False(t, page.About.HasContent)
	assert.False(t, page.Contact.HasContact)
	assert.False(t, page.Gallery.HasImages)
	assert.Zero(t, page.Gallery.TotalCount)
	assert.False(t, page.Releases.HasReleases)
	assert.False(t, page.Rider.HasItems)
	assert.False(t, page.Socials.HasLinks)
	assert.False(t, page.Socials.HasContact)
	assert.False(t, page.Youtube.HasVideos)
}

func TestGetPresskitDataFullDocument(t *testing.T) {
	raw := map[string]any{
		"slug":     " dj-y ",
		"profile":  map[string]any{"artistName": "DJ Y", "shortBio": "Hi", "genres": []any{"House"}},
		"media":    map[string]any{"about": map[string]any{"imageUrl": "https://cdn.example.com/a.jpg"}, "gallery": rawImages(3)},
		"releases": map[string]any{"upcoming": []any{map[string]any{"title": "EP"}}},
		"youtube":  map[string]any{"videos": []any{"dQw4w9WgXcQ"}},
		"technicalRider": map[string]any{
			"items": []any{map[string]any{"name": "CDJ"}},
		},
		"contact": map[string]any{
			"primaryEmail": "y@example.com",
			"channels":     []any{map[string]any{"platform": "instagram", "url": "https://instagram.com/y"}},
		},
		"driveUrl": "https://drive.example.com/y",
	}

	page := fixedNormalizer().GetPresskitData(raw)

	assert.Equal(t, "dj-y", page.Slug)
	assert.Equal(t, "DJ Y", page.ArtistName)
	assert.True(t, page.About.HasContent)
	assert.Equal(t, "https://cdn.example.com/a.jpg", page.About.AboutImage)
	assert.Equal(t, 3, page.Gallery.TotalCount)
	assert.True(t, page.Releases.HasReleases)
	assert.True(t, page.Youtube.HasVideos)
	assert.True(t, page.Rider.HasItems)
	assert.True(t, page.Socials.HasLinks)
	assert.Equal(t, "y@example.com", page.Contact.Email)
	assert.Equal(t, "https://drive.example.com/y", page.Contact.DriveURL)
}

func TestGetPresskitDataArtistNamePrecedence(t *testing.T) {
	page := GetPresskitData(map[string]any{"artistName": "Top", "profile": map[string]any{"artistName": "Nested"}})
	assert.Equal(t, "Top", page.ArtistName)
}

func TestGetPresskitDataMatchesKeysExactly(t *testing.T) {
	page := GetPresskitData(map[string]any{
		"Slug":       "upper",
		"ARTISTNAME": "Shouting",
		"artistName": "DJ X",
	})

	assert.Empty(t, page.Slug)
	assert.Equal(t, "DJ X", page.ArtistName)
}

func TestNormalizersAreTotal(t *testing.T) {
	inputs := []any{
		nil,
		map[string]any{},
		[]any{},
		"presskit",
		42.0,
		true,
		[]any{map[string]any{"slug": "array-instead-of-object"}},
		map[string]any{
			"slug":           5.0,
			"artistName":     []any{"x"},
			"profile":        []any{1.0},
			"media":          "media",
			"events":         map[string]any{"upcoming": "nope", "past": map[string]any{}},
			"releases":       3.0,
			"youtube":        map[string]any{"videos": map[string]any{}},
			"technicalRider": []any{},
			"contact":        map[string]any{"channels": "x", "primaryEmail": 12.0},
			"driveUrl":       map[string]any{},
		},
		map[string]any{
			"profile": map[string]any{"genres": map[string]any{}, "location": []any{}, "yearsOfExperience": "many"},
			"media": map[string]any{
				"about":   []any{},
				"gallery": []any{nil, 1.0, []any{}, map[string]any{"url": map[string]any{}}, map[string]any{"width": "wide"}},
			},
			"events": map[string]any{
				"upcoming": []any{nil, []any{}, map[string]any{"title": map[string]any{}, "date": []any{}}},
				"past":     []any{map[string]any{"title": "ok", "date": 1e300, "venue": []any{1.0}}},
			},
			"technicalRider": map[string]any{"items": []any{map[string]any{"item": "string", "sortOrder": map[string]any{}}}},
			"youtube":        []any{map[string]any{"url": []any{}}, nil},
		},
	}

	for i, in := range inputs {
		var page PresskitPageView
		require.NotPanics(t, func() { page = fixedNormalizer().GetPresskitData(in) }, "input %d", i)
		assert.NotNil(t, page.Events.Upcoming)
		assert.NotNil(t, page.Gallery.Images)
		assert.NotNil(t, page.Youtube.Videos)
	}
}

func TestGetPresskitDataIsDeterministic(t *testing.T) {
	raw := map[string]any{
		"slug":    "dj-z",
		"events":  map[string]any{"upcoming": []any{map[string]any{"title": "A"}, map[string]any{"title": "B", "date": "2025-07-01"}}},
		"media":   map[string]any{"gallery": rawImages(7)},
		"contact": map[string]any{"channels": []any{map[string]any{"platform": "x", "url": "https://x.com/z"}}},
	}
	n := fixedNormalizer()

	assert.Equal(t, n.GetPresskitData(raw), n.GetPresskitData(raw))
}

func TestEmptyPageSerializesWithoutNulls(t *testing.T) {
	data, err := json.Marshal(GetPresskitData(nil))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "null"), string(data))
}
