package data

// Artists are deduplicated across the whole corpus before they are written:
// one row per spotify id, attributes from the first mention encountered.
//
// Artists have many tracks via the association table track_artist.
type Artist struct {
	SpotifyID string `gorm:"column:artist_id"`
	Name      string
}
