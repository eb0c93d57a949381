package data

// Playlists are fetched from Spotify's search API, one row per stored
// playlist record. The time_of_day column is derived from the playlist's
// text, not fetched.
type Playlist struct {
	SpotifyID   string `gorm:"column:playlist_id"`
	Name        string
	Description string
	Followers   int64
	TimeOfDay   string
}
