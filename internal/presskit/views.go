package presskit

import "time"

// AboutView is the profile and biography section.
type AboutView struct {
	ShortBio          string   `json:"shortBio"`
	LongBio           string   `json:"longBio"`
	Genres            []string `json:"genres"`
	EventTypes        []string `json:"eventTypes"`
	Location          string   `json:"location"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	TotalEvents       int      `json:"totalEvents"`
	AboutImage        string   `json:"aboutImage"`
	HasContent        bool     `json:"hasContent"`
}

// EventView is a single gig.
type EventView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Date          *time.Time `json:"date"`
	DateFormatted string     `json:"dateFormatted"`
	Venue         string     `json:"venue"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	TicketsURL    string     `json:"ticketsUrl"`
	IsFeatured    bool       `json:"isFeatured"`
	EventType     string     `json:"eventType"`
	IsPast        bool       `json:"isPast"`
}

// EventsView holds the upcoming and past event lists.
type EventsView struct {
	Upcoming    []EventView `json:"upcoming"`
	Past        []EventView `json:"past"`
	HasUpcoming bool        `json:"hasUpcoming"`
	HasPast     bool        `json:"hasPast"`
	HasEvents   bool        `json:"hasEvents"`
}

// ReleaseView is a single music release.
type ReleaseView struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	ReleaseDate          *time.Time `json:"releaseDate"`
	ReleaseDateFormatted string     `json:"releaseDateFormatted"`
	Label                string     `json:"label"`
	URL                  string     `json:"url"`
	CoverURL             string     `json:"coverUrl"`
}

// ReleasesView lists releases, newest first.
type ReleasesView struct {
	Items       []ReleaseView `json:"items"`
	HasReleases bool          `json:"hasReleases"`
}

// GalleryImageView is one gallery picture.
type GalleryImageView struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GalleryView is the normalized image list.
type GalleryView struct {
	Images     []GalleryImageView `json:"images"`
	HasImages  bool               `json:"hasImages"`
	TotalCount int                `json:"totalCount"`
}

// RiderItemView is one piece of requested equipment.
type RiderItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	DisplayName string `json:"displayName"`
	ImageURL    string `json:"imageUrl"`
	CustomTitle string `json:"customTitle"`
	Note        string `json:"note"`
	SortOrder   *int   `json:"sortOrder"`
}

// RiderView is the technical rider.
type RiderView struct {
	Items       []RiderItemView `json:"items"`
	DownloadURL string          `json:"downloadUrl"`
	HasItems    bool            `json:"hasItems"`
}

// SocialLinkView is one social channel.
type SocialLinkView struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

// SocialsView holds social channels and the direct contact handles.
type SocialsView struct {
	Links           []SocialLinkView `json:"links"`
	PrimaryEmail    string           `json:"primaryEmail"`
	PrimaryWhatsapp string           `json:"primaryWhatsapp"`
	HasLinks        bool             `json:"hasLinks"`
	HasContact      bool             `json:"hasContact"`
}

// ContactView is the booking contact block.
type ContactView struct {
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	WhatsappURL string `json:"whatsappUrl"`
	DriveURL    string `json:"driveUrl"`
	HasContact  bool   `json:"hasContact"`
}

// YoutubeVideoView is one embeddable video.
type YoutubeVideoView struct {
	ID           string `json:"id"`
	VideoID      string `json:"videoId"`
	EmbedURL     string `json:"embedUrl"`
	WatchURL     string `json:"watchUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// YoutubeView lists videos.
type YoutubeView struct {
	Videos    []YoutubeVideoView `json:"videos"`
	HasVideos bool               `json:"hasVideos"`
}

// PresskitPageView is everything a presskit page renders.
type PresskitPageView struct {
	Slug       string       `json:"slug"`
	ArtistName string       `json:"artistName"`
	About      AboutView    `json:"about"`
	Contact    ContactView  `json:"contact"`
	Events     EventsView   `json:"events"`
	Gallery    GalleryView  `json:"gallery"`
	Releases   ReleasesView `json:"releases"`
	Rider      RiderView    `json:"rider"`
	Socials    SocialsView  `json:"socials"`
	Youtube    YoutubeView  `json:"youtube"`
}

// GalleryDistribution splits gallery images between the carousel and the
// parallax grid.
type GalleryDistribution struct {
	CarouselImages []GalleryImageView `json:"carouselImages"`
	ParallaxImages []GalleryImageView `json:"parallaxImages"`
	ShowCarousel   bool               `json:"showCarousel"`
	ShowParallax   bool               `json:"showParallax"`
}
