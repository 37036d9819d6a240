// Package presskit turns the loosely shaped presskit document served by the
// presskit API into render-safe view models. Nothing in this package returns
// an error or panics on bad input: missing or malformed data degrades to an
// empty section.
package presskit

// GetPresskitData builds every section of the page from the raw document.
// A nil or non-object document yields a page with all sections empty.
func (n Normalizer) GetPresskitData(raw any) PresskitPageView {
	var doc rawPresskit
	decodeObject(raw, &doc)
	var media rawMedia
	decodeObject(doc.Media, &media)
	var profile rawProfile
	decodeObject(doc.Profile, &profile)

	return PresskitPageView{
		Slug:       TrimString(doc.Slug),
		ArtistName: firstNonEmpty(doc.ArtistName, profile.ArtistName),
		About:      n.NormalizeAbout(doc.Profile, media.About),
		Contact:    n.NormalizeContact(doc.Contact, doc.DriveURL),
		Events:     n.NormalizeEvents(doc.Events),
		Gallery:    n.NormalizeGallery(media.Gallery),
		Releases:   n.NormalizeReleases(doc.Releases),
		Rider:      n.NormalizeRider(doc.TechnicalRider),
		Socials:    n.NormalizeSocials(doc.Contact),
		Youtube:    n.NormalizeYoutube(doc.Youtube),
	}
}
