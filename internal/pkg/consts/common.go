package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

// 上传对象的目录前缀
const (
	MediaKindPoster   = "poster"
	MediaKindBanner   = "banner"
	MediaKindCrew     = "crew"
	MediaKindTaxonomy = "taxonomy"
	MediaKindAvatar   = "avatar"
	MediaKindVideo    = "video"
)

const (
	WatchURLFilm   = "/content/%d/watch/"
	WatchURLSeries = "/content/%d/series/"
)
