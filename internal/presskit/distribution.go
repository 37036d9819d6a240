package presskit

import "slices"

// Gallery layout thresholds.
const (
	carouselMinImages   = 5
	carouselSmallSize   = 5
	carouselLargeSize   = 10
	carouselLargeAt     = 15
	parallaxMinImages   = 4
	parallaxMaxImages   = 10
	distributionMaxSize = carouselLargeSize + parallaxMaxImages
)

// DistributeGallery decides which images feed the carousel and which feed the
// parallax grid. It depends on the image count only: fewer than five images
// all go to the carousel, up to fourteen give the carousel five and the
// parallax the rest (shown from four), and fifteen or more give ten to each
// side at most.
func DistributeGallery(images []GalleryImageView) GalleryDistribution {
	images = images[:min(len(images), distributionMaxSize)]

	dist := GalleryDistribution{
		CarouselImages: []GalleryImageView{},
		ParallaxImages: []GalleryImageView{},
	}

	switch n := len(images); {
	case n == 0:
		return dist
	case n < carouselMinImages:
		dist.CarouselImages = slices.Clone(images)
		dist.ShowCarousel = true
	case n < carouselLargeAt:
		dist.CarouselImages = slices.Clone(images[:carouselSmallSize])
		dist.ParallaxImages = slices.Clone(images[carouselSmallSize:])
		dist.ShowCarousel = true
		dist.ShowParallax = len(dist.ParallaxImages) >= parallaxMinImages
	default:
		dist.CarouselImages = slices.Clone(images[:carouselLargeSize])
		dist.ParallaxImages = slices.Clone(images[carouselLargeSize:])
		dist.ShowCarousel = true
		dist.ShowParallax = true
	}
	return dist
}
