package catalog

// Album is one catalog release as returned by search or lookup. Title may be
// replaced by a localized variant during enrichment; everything else is
// immutable after parsing.
type Album struct {
	CollectionID   int64  `json:"collectionId"`
	Title          string `json:"collectionName"`
	ArtistName     string `json:"artistName"`
	ArtistID       int64  `json:"artistId,omitempty"`
	ArtworkURL     string `json:"artworkUrl100,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
	Genre          string `json:"primaryGenreName,omitempty"`
	CollectionType string `json:"collectionType,omitempty"`
	TrackCount     int    `json:"trackCount,omitempty"`
	Copyright      string `json:"copyright,omitempty"`
}

// Artist is one catalog artist. ArtworkURL is absent in raw search results and
// may be backfilled from the artist's own album artwork.
type Artist struct {
	ArtistID   int64  `json:"artistId"`
	Name       string `json:"artistName"`
	Genre      string `json:"primaryGenreName,omitempty"`
	ArtworkURL string `json:"artworkUrl100,omitempty"`
}

// Track is one song inside an album lookup.
type Track struct {
	TrackID        int64  `json:"trackId"`
	Title          string `json:"trackName"`
	TrackNumber    int    `json:"trackNumber"`
	DiscNumber     int    `json:"discNumber,omitempty"`
	DurationMillis int    `json:"trackTimeMillis"`
	PreviewURL     string `json:"previewUrl,omitempty"`
	CollectionID   int64  `json:"collectionId,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
}

// AlbumDetail pairs an album with its reconciled track listing.
type AlbumDetail struct {
	Album  Album   `json:"album"`
	Tracks []Track `json:"tracks"`
}

// Wrapper type discriminators used by the upstream lookup API.
const (
	wrapperCollection = "collection"
	wrapperTrack      = "track"
	wrapperArtist     = "artist"
)

// result is the raw union of every field the upstream may return for a single
// entry. WrapperType decides which view of it is meaningful.
type result struct {
	WrapperType      string `json:"wrapperType"`
	Kind             string `json:"kind,omitempty"`
	ArtistID         int64  `json:"artistId"`
	ArtistName       string `json:"artistName"`
	CollectionID     int64  `json:"collectionId"`
	CollectionName   string `json:"collectionName"`
	CollectionType   string `json:"collectionType"`
	ArtworkURL100    string `json:"artworkUrl100"`
	ReleaseDate      string `json:"releaseDate"`
	PrimaryGenreName string `json:"primaryGenreName"`
	TrackCount       int    `json:"trackCount"`
	Copyright        string `json:"copyright"`
	TrackID          int64  `json:"trackId"`
	TrackName        string `json:"trackName"`
	TrackNumber      int    `json:"trackNumber"`
	DiscNumber       int    `json:"discNumber"`
	TrackTimeMillis  int    `json:"trackTimeMillis"`
	PreviewURL       string `json:"previewUrl"`
}

type response struct {
	ResultCount int      `json:"resultCount"`
	Results     []result `json:"results"`
}

// isCollection reports whether the entry describes an album. Search responses
// for entity=album omit wrapperType on some stores, so a collection id with no
// track id also counts.
func (r result) isCollection() bool {
	if r.WrapperType == wrapperCollection {
		return true
	}
	return r.WrapperType == "" && r.CollectionID != 0 && r.TrackID == 0
}

func (r result) isTrack() bool {
	return r.WrapperType == wrapperTrack
}

// isArtist covers both explicit artist wrappers and entity=musicArtist search
// results where the wrapper is implied.
func (r result) isArtist() bool {
	if r.WrapperType == wrapperArtist {
		return true
	}
	return r.WrapperType == "" && r.ArtistID != 0 && r.CollectionID == 0 && r.TrackID == 0
}

func (r result) album() Album {
	return Album{
		CollectionID:   r.CollectionID,
		Title:          r.CollectionName,
		ArtistName:     r.ArtistName,
		ArtistID:       r.ArtistID,
		ArtworkURL:     r.ArtworkURL100,
		ReleaseDate:    r.ReleaseDate,
		Genre:          r.PrimaryGenreName,
		CollectionType: r.CollectionType,
		TrackCount:     r.TrackCount,
		Copyright:      r.Copyright,
	}
}

func (r result) artist() Artist {
	return Artist{
		ArtistID:   r.ArtistID,
		Name:       r.ArtistName,
		Genre:      r.PrimaryGenreName,
		ArtworkURL: r.ArtworkURL100,
	}
}

func (r result) track() Track {
	return Track{
		TrackID:        r.TrackID,
		Title:          r.TrackName,
		TrackNumber:    r.TrackNumber,
		DiscNumber:     r.DiscNumber,
		DurationMillis: r.TrackTimeMillis,
		PreviewURL:     r.PreviewURL,
		CollectionID:   r.CollectionID,
		CollectionName: r.CollectionName,
	}
}
