package normalizer_test

import (
	"path/filepath"
	"testing"

	"daylists/data"
	"daylists/db"
	"daylists/normalizer"
	"daylists/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// fixture covering 0, 1, and multiple tracks per playlist and 0, 1, and
// multiple artists per track, with artist a1 mentioned across playlists
func fixtureRecords() record.Slice {
	return record.Slice{
		{
			PlaylistID: "pl1",
			PlaylistDetails: record.Details{
				Name:      "Sunday Chill Morning Playlist",
				Followers: record.Followers{Total: 500},
			},
			PlaylistTracks: record.TrackPage{Items: []record.Item{
				{Track: record.Track{ID: "t1", Name: "One", Artists: []record.TrackArtist{
					{ID: "a1", Name: "Alpha"},
					{ID: "a2", Name: "Beta"},
				}}},
				{Track: record.Track{ID: "t2", Name: "Two", Artists: []record.TrackArtist{
					{ID: "a1", Name: "Alpha"},
				}}},
			}},
			TrackGenres: map[string][]string{"One": {"ambient", "chillhop"}},
		},
		{
			PlaylistID: "pl2",
			PlaylistDetails: record.Details{
				Name:        "Jazz lofi",
				Description: "smooth evening tracks",
			},
			PlaylistTracks: record.TrackPage{Items: []record.Item{
				{Track: record.Track{ID: "t3", Name: "Three", Artists: []record.TrackArtist{
					{ID: "a1", Name: "Alpha But Renamed"},
					{ID: "a3", Name: "Gamma"},
				}}},
			}},
		},
		{
			PlaylistID:      "pl3",
			PlaylistDetails: record.Details{Name: "Empty"},
		},
	}
}

func TestRunRowCounts(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	var playlists []data.Playlist
	require.NoError(t, database.Find(&playlists).Error)
	require.Len(t, playlists, 3)

	var tracks []data.Track
	require.NoError(t, database.Find(&tracks).Error)
	assert.Len(t, tracks, 3)

	var artists []data.Artist
	require.NoError(t, database.Find(&artists).Error)
	assert.Len(t, artists, 3)

	// five artist mentions across the corpus, before artist dedup
	var links []data.TrackArtist
	require.NoError(t, database.Find(&links).Error)
	assert.Len(t, links, 5)
}

func TestRunClassifiesAndDefaults(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	var playlists []data.Playlist
	require.NoError(t, database.Order("playlist_id").Find(&playlists).Error)
	require.Len(t, playlists, 3)

	assert.Equal(t, data.TimeOfDayMorning, playlists[0].TimeOfDay)
	assert.Equal(t, int64(500), playlists[0].Followers)

	// matched in the description
	assert.Equal(t, data.TimeOfDayEvening, playlists[1].TimeOfDay)
	assert.Equal(t, int64(0), playlists[1].Followers)

	assert.Equal(t, data.TimeOfDayUnknown, playlists[2].TimeOfDay)
}

func TestRunGenreColumn(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	var tracks []data.Track
	require.NoError(t, database.Order("track_id").Find(&tracks).Error)
	require.Len(t, tracks, 3)

	assert.True(t, tracks[0].Genres.Valid)
	assert.Equal(t, "ambient,chillhop", tracks[0].Genres.String)
	assert.False(t, tracks[1].Genres.Valid)
	assert.False(t, tracks[2].Genres.Valid)
}

func TestRunFirstSeenArtistWins(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	var alpha data.Artist
	require.NoError(t, database.Where("artist_id = ?", "a1").First(&alpha).Error)

	// pl1's mention comes first in record order
	assert.Equal(t, "Alpha", alpha.Name)
}

func TestRunReplacesPriorContents(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	// a smaller second corpus fully replaces the first
	require.NoError(t, normalizer.Run(record.Slice{
		{PlaylistID: "pl9", PlaylistDetails: record.Details{Name: "Late night"}},
	}, database))

	var playlists []data.Playlist
	require.NoError(t, database.Find(&playlists).Error)
	require.Len(t, playlists, 1)
	assert.Equal(t, "pl9", playlists[0].SpotifyID)

	var tracks []data.Track
	require.NoError(t, database.Find(&tracks).Error)
	assert.Empty(t, tracks)
}

func TestRunAttemptsEveryWrite(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, database.Close())

	// with the connection gone every write fails; all four are still
	// attempted and reported together
	err := normalizer.Run(fixtureRecords(), database)
	require.Error(t, err)
	assert.ErrorContains(t, err, "playlists")
	assert.ErrorContains(t, err, "tracks")
	assert.ErrorContains(t, err, "artists")
	assert.ErrorContains(t, err, "track_artist")
}

func TestRunIsIdempotent(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	var first []data.Playlist
	require.NoError(t, database.Order("playlist_id").Find(&first).Error)

	require.NoError(t, normalizer.Run(fixtureRecords(), database))

	var second []data.Playlist
	require.NoError(t, database.Order("playlist_id").Find(&second).Error)
	assert.Equal(t, first, second)

	var artists []data.Artist
	require.NoError(t, database.Find(&artists).Error)
	assert.Len(t, artists, 3)
}
