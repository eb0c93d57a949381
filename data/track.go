package data

import "database/sql"

// Tracks belong to exactly one playlist row from the same run.
//
// Genres holds a comma-joined list of genre strings, like "lo-fi,chillhop".
// It is NULL when no genres were found for the track, which is distinct
// from a lookup that was never performed.
type Track struct {
	SpotifyID         string `gorm:"column:track_id"`
	Name              string
	PlaylistSpotifyID string `gorm:"column:playlist_id"`
	Genres            sql.NullString
}
