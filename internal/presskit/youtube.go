package presskit

const (
	youtubeEmbedBase = "https://www.youtube.com/embed/"
	youtubeWatchBase = "https://www.youtube.com/watch?v="
	youtubeThumbBase = "https://i.ytimg.com/vi/"
)

// NormalizeYoutube accepts {videos: [...]} or a bare array whose entries are
// URLs, bare ids or {url|videoId} objects.
func (n Normalizer) NormalizeYoutube(youtube any) YoutubeView {
	raw := asArray(youtube)
	if raw == nil {
		var yt rawYoutube
		decodeObject(youtube, &yt)
		raw = asArray(yt.Videos)
	}

	videos := make([]YoutubeVideoView, 0, len(raw))
	for _, item := range raw {
		videoID := ExtractYoutubeID(item)
		if videoID == "" {
			var v rawVideo
			if decodeObject(item, &v) {
				videoID = ExtractYoutubeID(firstNonEmpty(v.VideoID, v.URL, v.ID))
			}
		}
		if videoID == "" {
			continue
		}
		videos = append(videos, YoutubeVideoView{
			ID:           videoID,
			VideoID:      videoID,
			EmbedURL:     youtubeEmbedBase + videoID,
			WatchURL:     youtubeWatchBase + videoID,
			ThumbnailURL: youtubeThumbBase + videoID + "/hqdefault.jpg",
		})
	}

	videos = ClampArray(videos, MaxYoutubeVideos)
	videos = DedupeByID(videos, func(v YoutubeVideoView) string { return v.VideoID })

	return YoutubeView{
		Videos:    videos,
		HasVideos: len(videos) > 0,
	}
}
