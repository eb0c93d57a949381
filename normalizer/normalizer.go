// Package normalizer flattens stored playlist records into four relational
// row groups and rebuilds the database tables from them. Every run is a
// full materialization: prior table contents are replaced, never merged.
package normalizer

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"daylists/data"
	"daylists/db"
	"daylists/record"
)

// Flatten transforms one stored record into its relational rows: one
// playlist row, one track row per item, and one artist candidate plus one
// link row per artist mention. Artist candidates are deduplicated later,
// across the whole run, so the same artist may appear here many times.
func Flatten(rec *record.Record) (data.Playlist, []data.Track, []data.Artist, []data.TrackArtist) {
	playlist := data.Playlist{
		SpotifyID:   rec.PlaylistID,
		Name:        rec.PlaylistDetails.Name,
		Description: rec.PlaylistDetails.Description,
		Followers:   rec.PlaylistDetails.Followers.Total,
		TimeOfDay:   data.ClassifyTimeOfDay(rec.PlaylistDetails.Name, rec.PlaylistDetails.Description),
	}

	if rec.TrackGenres == nil {
		log.Printf("record '%s' has no track_genres; treating every track as genreless", rec.PlaylistID)
	}

	var (
		tracks       []data.Track
		artists      []data.Artist
		trackArtists []data.TrackArtist
	)
	for _, item := range rec.PlaylistTracks.Items {
		track := data.Track{
			SpotifyID:         item.Track.ID,
			Name:              item.Track.Name,
			PlaylistSpotifyID: rec.PlaylistID,
		}
		// The genre lookup is by display name; that is the shape the
		// stored records carry. A lookup that finds an empty list
		// leaves Genres NULL, same as no lookup at all.
		if genres := rec.TrackGenres[item.Track.Name]; len(genres) > 0 {
			track.Genres = sql.NullString{String: strings.Join(genres, ","), Valid: true}
		}
		tracks = append(tracks, track)

		for _, artist := range item.Track.Artists {
			artists = append(artists, data.Artist{
				SpotifyID: artist.ID,
				Name:      artist.Name,
			})
			trackArtists = append(trackArtists, data.TrackArtist{
				TrackSpotifyID:  item.Track.ID,
				ArtistSpotifyID: artist.ID,
			})
		}
	}

	return playlist, tracks, artists, trackArtists
}

// DedupeArtists reduces artist candidates to one row per spotify id,
// keeping the first occurrence in input order. Later candidates sharing an
// id are dropped whole, attributes included.
func DedupeArtists(candidates []data.Artist) []data.Artist {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]data.Artist, 0, len(candidates))
	for _, artist := range candidates {
		if _, ok := seen[artist.SpotifyID]; ok {
			continue
		}
		seen[artist.SpotifyID] = struct{}{}
		unique = append(unique, artist)
	}
	return unique
}

// Run rebuilds all four tables from the records in src. Each table is
// replaced in its own write; a failure on one is logged and does not stop
// the others. The combined failures, if any, are returned after every write
// has been attempted.
func Run(src record.Source, db *db.DB) error {
	var (
		playlists    []data.Playlist
		tracks       []data.Track
		artists      []data.Artist
		trackArtists []data.TrackArtist
	)

	if err := src.Each(func(rec *record.Record) error {
		playlist, recTracks, recArtists, recLinks := Flatten(rec)
		playlists = append(playlists, playlist)
		tracks = append(tracks, recTracks...)
		artists = append(artists, recArtists...)
		trackArtists = append(trackArtists, recLinks...)
		return nil
	}); err != nil {
		return fmt.Errorf("error reading records: %w", err)
	}

	artists = DedupeArtists(artists)

	writes := []struct {
		table string
		count int
		write func() error
	}{
		{"playlists", len(playlists), func() error { return db.ReplacePlaylists(playlists) }},
		{"tracks", len(tracks), func() error { return db.ReplaceTracks(tracks) }},
		{"artists", len(artists), func() error { return db.ReplaceArtists(artists) }},
		{"track_artist", len(trackArtists), func() error { return db.ReplaceTrackArtists(trackArtists) }},
	}

	var errs []error
	for _, w := range writes {
		if err := w.write(); err != nil {
			log.Printf("%s: write failed: %s", w.table, err)
			errs = append(errs, err)
			continue
		}
		log.Printf("%s: wrote %d rows", w.table, w.count)
	}

	return errors.Join(errs...)
}
