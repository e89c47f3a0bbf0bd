package tmdb

import "strings"

const ImageBaseURL = "https://image.tmdb.org/t/p"

// Common sizes
const (
	PosterSize   = "w500"
	BackdropSize = "w1280"
	ProfileSize  = "w185"
	LogoSize     = "w500"
	OriginalSize = "original"
)

// BuildImageURL turns a TMDB-relative path into a CDN URL. Absolute URLs pass
// through untouched and an empty path yields an empty string.
func BuildImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if size == "" {
		size = OriginalSize
	}
	return ImageBaseURL + "/" + size + "/" + strings.TrimPrefix(path, "/")
}
