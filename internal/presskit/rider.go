package presskit

import (
	"cmp"
	"slices"
	"strconv"
)

// NormalizeRider builds the technical rider. Items need a name or a title;
// they are ordered by sortOrder, with unordered items kept last in source
// order.
func (n Normalizer) NormalizeRider(rider any) RiderView {
	var r rawRider
	decodeObject(rider, &r)

	raw := asArray(r.Items)
	items := make([]RiderItemView, 0, len(raw))
	for i, entry := range raw {
		if item, ok := riderItem(i, entry); ok {
			items = append(items, item)
		}
	}

	items = DedupeByID(items, func(item RiderItemView) string { return item.ID })
	slices.SortStableFunc(items, compareSortOrder)

	return RiderView{
		Items:       items,
		DownloadURL: firstSafeURL(r.DownloadURL, r.PdfURL),
		HasItems:    len(items) > 0,
	}
}

func riderItem(index int, entry any) (RiderItemView, bool) {
	var raw rawRiderItem
	if !decodeObject(entry, &raw) {
		return RiderItemView{}, false
	}
	// Catalog equipment arrives nested under "item"; top-level fields override.
	var nested rawRiderItem
	decodeObject(raw.Item, &nested)

	name := firstNonEmpty(raw.Name, nested.Name)
	title := firstNonEmpty(raw.Title, nested.Title)
	if name == "" && title == "" {
		return RiderItemView{}, false
	}
	customTitle := TrimString(raw.CustomTitle)
	note := TrimString(raw.Note)
	imageURL := firstSafeURL(raw.ImageURL, nested.ImageURL)
	sortOrder, hasOrder := ToInt(raw.SortOrder)

	id := idString(raw.ID)
	if id == "" {
		id = idString(nested.ID)
	}
	if id == "" {
		order := ""
		if hasOrder {
			order = strconv.Itoa(sortOrder)
		}
		id = GenerateStableKey(index, name, title, customTitle, note, imageURL, order)
	}

	item := RiderItemView{
		ID:          id,
		Name:        name,
		Title:       title,
		DisplayName: cmp.Or(customTitle, title, name),
		ImageURL:    imageURL,
		CustomTitle: customTitle,
		Note:        note,
	}
	if hasOrder {
		item.SortOrder = &sortOrder
	}
	return item, true
}

func compareSortOrder(a, b RiderItemView) int {
	switch {
	case a.SortOrder == nil && b.SortOrder == nil:
		return 0
	case a.SortOrder == nil:
		return 1
	case b.SortOrder == nil:
		return -1
	default:
		return cmp.Compare(*a.SortOrder, *b.SortOrder)
	}
}
