package collector_test

import (
	"context"
	"errors"
	"testing"

	"daylists/collector"
	"daylists/config"
	"daylists/record"
	"daylists/spotify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	searches  map[string][]string
	details   map[string]*record.Details
	tracks    map[string]*record.TrackPage
	genreErrs map[string]error
}

func (s *stubCatalog) SearchPlaylists(_ context.Context, keyword string, _ spotify.SearchOptions) ([]string, error) {
	return s.searches[keyword], nil
}

func (s *stubCatalog) FetchPlaylist(_ context.Context, id string) (*record.Details, error) {
	details, ok := s.details[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return details, nil
}

func (s *stubCatalog) FetchPlaylistTracks(_ context.Context, id string) (*record.TrackPage, error) {
	page, ok := s.tracks[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return page, nil
}

func (s *stubCatalog) FetchTrackGenres(_ context.Context, page record.TrackPage) (map[string][]string, error) {
	if len(page.Items) > 0 {
		if err := s.genreErrs[page.Items[0].Track.ID]; err != nil {
			return nil, err
		}
	}
	return map[string][]string{}, nil
}

type memStore struct {
	written []string
}

func (m *memStore) Write(keyword string, rec *record.Record) error {
	m.written = append(m.written, keyword+"_"+rec.PlaylistID)
	return nil
}

func onePage(trackID string) *record.TrackPage {
	return &record.TrackPage{Items: []record.Item{
		{Track: record.Track{ID: trackID, Name: "Song"}},
	}}
}

func TestRunStoresOneRecordPerPlaylist(t *testing.T) {
	catalog := &stubCatalog{
		searches: map[string][]string{
			"morning": {"pl1", "pl2"},
			"night":   {"pl3"},
		},
		details: map[string]*record.Details{
			"pl1": {Name: "One"},
			"pl2": {Name: "Two"},
			"pl3": {Name: "Three"},
		},
		tracks: map[string]*record.TrackPage{
			"pl1": onePage("t1"),
			"pl2": onePage("t2"),
			"pl3": onePage("t3"),
		},
	}
	store := &memStore{}

	cfg := config.Default()
	cfg.Keywords = []string{"morning", "night"}

	require.NoError(t, collector.New(catalog, store, cfg).Run(context.Background()))
	assert.Equal(t, []string{"morning_pl1", "morning_pl2", "night_pl3"}, store.written)
}

func TestRunSkipsBrokenPlaylists(t *testing.T) {
	catalog := &stubCatalog{
		searches: map[string][]string{
			"evening": {"missing", "empty", "genrefail", "ok"},
		},
		details: map[string]*record.Details{
			"empty":     {Name: "Empty"},
			"genrefail": {Name: "Genres Break"},
			"ok":        {Name: "Fine"},
		},
		tracks: map[string]*record.TrackPage{
			"empty":     {},
			"genrefail": onePage("t8"),
			"ok":        onePage("t9"),
		},
		genreErrs: map[string]error{"t8": errors.New("boom")},
	}
	store := &memStore{}

	cfg := config.Default()
	cfg.Keywords = []string{"evening"}

	// a missing detail, an empty track list, and a genre failure are all
	// logged and skipped without aborting the keyword
	require.NoError(t, collector.New(catalog, store, cfg).Run(context.Background()))
	assert.Equal(t, []string{"evening_ok"}, store.written)
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	catalog := &stubCatalog{searches: map[string][]string{"morning": {"pl1"}}}
	store := &memStore{}

	err := collector.New(catalog, store, config.Default()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.written)
}
