package presskit

// NormalizeGallery keeps images with a valid http(s) url, caps the list at
// MaxGalleryImages and drops repeated ids. Entries may be objects or bare
// url strings.
func (n Normalizer) NormalizeGallery(gallery any) GalleryView {
	raw := asArray(gallery)
	images := make([]GalleryImageView, 0, len(raw))
	for i, item := range raw {
		if image, ok := galleryImage(i, item); ok {
			images = append(images, image)
		}
	}

	images = ClampArray(images, MaxGalleryImages)
	images = DedupeByID(images, func(img GalleryImageView) string { return img.ID })

	return GalleryView{
		Images:     images,
		HasImages:  len(images) > 0,
		TotalCount: len(images),
	}
}

func galleryImage(index int, item any) (GalleryImageView, bool) {
	if u := SafeURL(item); u != "" {
		return GalleryImageView{ID: GenerateStableKey(index, u), URL: u}, true
	}

	var img rawImage
	if !decodeObject(item, &img) {
		return GalleryImageView{}, false
	}
	u := firstSafeURL(img.URL, img.Src)
	if u == "" {
		return GalleryImageView{}, false
	}

	id := idString(img.ID)
	if id == "" {
		id = GenerateStableKey(index, u)
	}
	return GalleryImageView{
		ID:     id,
		URL:    u,
		Alt:    firstNonEmpty(img.Alt, img.Caption),
		Width:  nonNegative(img.Width),
		Height: nonNegative(img.Height),
	}, true
}
