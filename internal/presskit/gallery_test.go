package presskit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawImages(n int) []any {
	out := make([]any, n)
	for i := range n {
		out[i] = map[string]any{
			"id":  fmt.Sprintf("img-%02d", i),
			"url": fmt.Sprintf("https://cdn.example.com/%02d.jpg", i),
		}
	}
	return out
}

func TestNormalizeGalleryFiltersAndShapes(t *testing.T) {
	raw := []any{
		map[string]any{"id": "a", "url": "https://cdn.example.com/a.jpg", "alt": "Booth", "width": 1200.0, "height": "800"},
		map[string]any{"id": "b", "url": "javascript:alert(1)"},
		map[string]any{"id": "c", "src": "https://cdn.example.com/c.jpg", "caption": "Crowd", "width": -5.0, "height": 12.5},
		"https://cdn.example.com/bare.jpg",
		"/relative.jpg",
		nil,
		42,
		map[string]any{"id": "d"},
	}

	view := NormalizeGallery(raw)

	require.Len(t, view.Images, 3)
	assert.Equal(t, GalleryImageView{ID: "a", URL: "https://cdn.example.com/a.jpg", Alt: "Booth", Width: 1200, Height: 800}, view.Images[0])
	assert.Equal(t, GalleryImageView{ID: "c", URL: "https://cdn.example.com/c.jpg", Alt: "Crowd"}, view.Images[1])
	assert.Equal(t, "https://cdn.example.com/bare.jpg", view.Images[2].URL)
	assert.NotEmpty(t, view.Images[2].ID)
	assert.True(t, view.HasImages)
	assert.Equal(t, 3, view.TotalCount)
}

func TestNormalizeGalleryCapsAtTwenty(t *testing.T) {
	view := NormalizeGallery(rawImages(25))

	require.Len(t, view.Images, MaxGalleryImages)
	assert.Equal(t, "img-00", view.Images[0].ID)
	assert.Equal(t, "img-19", view.Images[19].ID)
	assert.Equal(t, MaxGalleryImages, view.TotalCount)
}

func TestNormalizeGalleryDedupesAfterCap(t *testing.T) {
	raw := rawImages(22)
	raw[1] = map[string]any{"id": "img-00", "url": "https://cdn.example.com/dup.jpg"}

	view := NormalizeGallery(raw)

	assert.Len(t, view.Images, 19)
	assert.Equal(t, 19, view.TotalCount)
	seen := map[string]bool{}
	for _, img := range view.Images {
		assert.False(t, seen[img.ID], "duplicate id %s", img.ID)
		seen[img.ID] = true
	}
}

func TestNormalizeGalleryEmpty(t *testing.T) {
	for _, in := range []any{nil, map[string]any{"url": "https://cdn.example.com/a.jpg"}, "https://cdn.example.com/a.jpg", []any{}} {
		view := NormalizeGallery(in)
		assert.NotNil(t, view.Images)
		assert.False(t, view.HasImages)
		assert.Zero(t, view.TotalCount)
	}
}

func galleryOf(n int) []GalleryImageView {
	out := make([]GalleryImageView, n)
	for i := range n {
		out[i] = GalleryImageView{ID: fmt.Sprintf("g%02d", i), URL: fmt.Sprintf("https://cdn.example.com/%02d.jpg", i)}
	}
	return out
}

func TestDistributeGallery(t *testing.T) {
	tests := []struct {
		images       int
		carousel     int
		parallax     int
		showCarousel bool
		showParallax bool
	}{
		{images: 0},
		{images: 1, carousel: 1, showCarousel: true},
		{images: 3, carousel: 3, showCarousel: true},
		{images: 4, carousel: 4, showCarousel: true},
		{images: 5, carousel: 5, showCarousel: true},
		{images: 8, carousel: 5, parallax: 3, showCarousel: true},
		{images: 9, carousel: 5, parallax: 4, showCarousel: true, showParallax: true},
		{images: 12, carousel: 5, parallax: 7, showCarousel: true, showParallax: true},
		{images: 14, carousel: 5, parallax: 9, showCarousel: true, showParallax: true},
		{images: 15, carousel: 10, parallax: 5, showCarousel: true, showParallax: true},
		{images: 17, carousel: 10, parallax: 7, showCarousel: true, showParallax: true},
		{images: 20, carousel: 10, parallax: 10, showCarousel: true, showParallax: true},
		{images: 25, carousel: 10, parallax: 10, showCarousel: true, showParallax: true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d images", tc.images), func(t *testing.T) {
			images := galleryOf(tc.images)
			dist := DistributeGallery(images)

			require.NotNil(t, dist.CarouselImages)
			require.NotNil(t, dist.ParallaxImages)
			assert.Len(t, dist.CarouselImages, tc.carousel)
			assert.Len(t, dist.ParallaxImages, tc.parallax)
			assert.Equal(t, tc.showCarousel, dist.ShowCarousel)
			assert.Equal(t, tc.showParallax, dist.ShowParallax)

			if tc.carousel > 0 {
				assert.Equal(t, images[:tc.carousel], dist.CarouselImages)
			}
			if tc.parallax > 0 {
				assert.Equal(t, images[tc.carousel:tc.carousel+tc.parallax], dist.ParallaxImages)
			}
		})
	}
}

func TestDistributeGalleryDoesNotAliasInput(t *testing.T) {
	images := galleryOf(12)
	dist := DistributeGallery(images)

	dist.CarouselImages[0].ID = "changed"
	dist.ParallaxImages[0].ID = "changed"
	assert.Equal(t, "g00", images[0].ID)
	assert.Equal(t, "g05", images[5].ID)
}

func TestDistributeNormalizedGallery(t *testing.T) {
	view := NormalizeGallery(rawImages(25))
	dist := DistributeGallery(view.Images)

	assert.Len(t, dist.CarouselImages, 10)
	assert.Len(t, dist.ParallaxImages, 10)
	assert.Equal(t, "img-10", dist.ParallaxImages[0].ID)
}
