// Package record defines the durable intermediate format between the two
// pipeline stages: the collector writes one JSON file per playlist, and the
// normalizer reads them all back through a Source.
package record

// Record is one self-contained playlist fetch: the playlist's metadata, the
// first page of its tracks, and a genre lookup for those tracks.
type Record struct {
	PlaylistID      string    `json:"playlist_id"`
	PlaylistDetails Details   `json:"playlist_details"`
	PlaylistTracks  TrackPage `json:"playlist_tracks"`

	// TrackGenres is keyed by track display name, not by track id; the
	// upstream genre lookup produces name-keyed results and the stored
	// files carry that shape. Two tracks sharing a display name collide
	// and receive the same genre list.
	TrackGenres map[string][]string `json:"track_genres,omitempty"`
}

type Details struct {
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Followers   Followers `json:"followers,omitempty"`
}

type Followers struct {
	Total int64 `json:"total,omitempty"`
}

type TrackPage struct {
	Items []Item `json:"items"`
}

type Item struct {
	Track Track `json:"track"`
}

type Track struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Artists []TrackArtist `json:"artists"`
}

type TrackArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
