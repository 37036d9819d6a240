package presskit

import "strings"

// NormalizeSocials builds the social links from contact.channels together
// with the primary email and WhatsApp handles.
func (n Normalizer) NormalizeSocials(contact any) SocialsView {
	var c rawContact
	decodeObject(contact, &c)

	raw := asArray(c.Channels)
	links := make([]SocialLinkView, 0, len(raw))
	for i, item := range raw {
		var ch rawChannel
		if !decodeObject(item, &ch) {
			continue
		}
		platform := strings.ToLower(firstNonEmpty(ch.Platform, ch.Type, ch.Name))
		u := SafeURL(ch.URL)
		if platform == "" || u == "" {
			continue
		}
		id := idString(ch.ID)
		if id == "" {
			id = GenerateStableKey(i, platform, u)
		}
		links = append(links, SocialLinkView{
			ID:       id,
			Platform: platform,
			URL:      u,
			Label:    firstNonEmpty(ch.Label, ch.Handle),
		})
	}
	links = DedupeByID(links, func(l SocialLinkView) string { return l.ID })

	view := SocialsView{
		Links:           links,
		PrimaryEmail:    primaryEmail(c),
		PrimaryWhatsapp: primaryWhatsapp(c),
		HasLinks:        len(links) > 0,
	}
	view.HasContact = view.PrimaryEmail != "" || view.PrimaryWhatsapp != ""
	return view
}
