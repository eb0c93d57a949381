package db

import (
	"fmt"

	"daylists/data"

	"gorm.io/gorm"
)

// Each Replace* call rebuilds one table from scratch: prior rows are deleted
// and the new rows inserted within a single-table transaction. There is
// deliberately no transaction spanning the four tables; each write succeeds
// or fails on its own and the caller reports each outcome.

const insertBatchSize = 500

// ReplacePlaylists discards the playlists table's contents and writes the
// given rows in their place.
func (db *DB) ReplacePlaylists(playlists []data.Playlist) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`delete from playlists`).Error; err != nil {
			return err
		}
		if len(playlists) == 0 {
			return nil
		}
		return tx.CreateInBatches(playlists, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("error replacing playlists: %w", err)
	}
	return nil
}

// ReplaceTracks discards the tracks table's contents and writes the given
// rows in their place.
func (db *DB) ReplaceTracks(tracks []data.Track) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`delete from tracks`).Error; err != nil {
			return err
		}
		if len(tracks) == 0 {
			return nil
		}
		return tx.CreateInBatches(tracks, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("error replacing tracks: %w", err)
	}
	return nil
}

// ReplaceArtists discards the artists table's contents and writes the given
// rows in their place. Rows must already be unique by artist id.
func (db *DB) ReplaceArtists(artists []data.Artist) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`delete from artists`).Error; err != nil {
			return err
		}
		if len(artists) == 0 {
			return nil
		}
		return tx.CreateInBatches(artists, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("error replacing artists: %w", err)
	}
	return nil
}

// ReplaceTrackArtists discards the track_artist table's contents and writes
// the given rows in their place.
func (db *DB) ReplaceTrackArtists(trackArtists []data.TrackArtist) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`delete from track_artist`).Error; err != nil {
			return err
		}
		if len(trackArtists) == 0 {
			return nil
		}
		return tx.CreateInBatches(trackArtists, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("error replacing track_artist: %w", err)
	}
	return nil
}
