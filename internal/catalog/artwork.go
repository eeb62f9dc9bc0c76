package catalog

import "strings"

const (
	lowResSuffix  = "100x100bb.jpg"
	highResSuffix = "600x600bb.jpg"
)

// HighResArtwork upgrades a thumbnail artwork URL to its 600x600 variant.
// URLs that do not carry the thumbnail suffix pass through unchanged, so the
// function is idempotent.
func HighResArtwork(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasSuffix(url, lowResSuffix) {
		return strings.TrimSuffix(url, lowResSuffix) + highResSuffix
	}
	return url
}
