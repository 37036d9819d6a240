package presskit

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const minWhatsappDigits = 7

// NormalizeContact builds the direct contact block from the contact object
// and the top-level driveUrl.
func (n Normalizer) NormalizeContact(contact, driveURL any) ContactView {
	var c rawContact
	decodeObject(contact, &c)

	view := ContactView{
		Email:    primaryEmail(c),
		Whatsapp: primaryWhatsapp(c),
		DriveURL: SafeURL(driveURL),
	}
	view.WhatsappURL = whatsappLink(view.Whatsapp)
	view.HasContact = view.Email != "" || view.Whatsapp != ""
	return view
}

func primaryEmail(c rawContact) string {
	for _, v := range []any{c.PrimaryEmail, c.Email} {
		if email := safeEmail(v); email != "" {
			return email
		}
	}
	return ""
}

// primaryWhatsapp accepts the number as text or as a JSON number.
func primaryWhatsapp(c rawContact) string {
	for _, v := range []any{c.PrimaryWhatsapp, c.Whatsapp} {
		switch typed := v.(type) {
		case string:
			if s := strings.TrimSpace(typed); s != "" {
				return s
			}
		case float64:
			if typed > 0 && !math.IsInf(typed, 0) && typed == math.Trunc(typed) {
				return strconv.FormatFloat(typed, 'f', -1, 64)
			}
		}
	}
	return ""
}

// safeEmail accepts a single address with a non-empty local part and a
// dotted domain. Display-name forms are rejected.
func safeEmail(v any) string {
	s := TrimString(v)
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) || strings.ContainsAny(s, "<>,;\"") {
		return ""
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return ""
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ""
	}
	return s
}

// whatsappLink returns the wa.me click-to-chat link for a phone number.
func whatsappLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) < minWhatsappDigits {
		return ""
	}
	return "https://wa.me/" + digits
}
