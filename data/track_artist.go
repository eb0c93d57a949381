package data

// TrackArtists represent a many-to-many relationship between tracks and
// artists, one row per observed mention. The pair is expected to reference
// rows present in tracks and artists, but that is not enforced at write
// time.
type TrackArtist struct {
	TrackSpotifyID  string `gorm:"column:track_id"`
	ArtistSpotifyID string `gorm:"column:artist_id"`
}

func (TrackArtist) TableName() string { return "track_artist" }
