// Package collector runs the collection stage: search the catalog for each
// configured daypart keyword and store one JSON record per accepted
// playlist. The stage is single-threaded; pacing between requests happens
// inside the catalog client.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log"

	"daylists/config"
	"daylists/record"
	"daylists/spotify"
)

// Catalog is the slice of the Spotify client the collector uses.
type Catalog interface {
	SearchPlaylists(ctx context.Context, keyword string, opts spotify.SearchOptions) ([]string, error)
	FetchPlaylist(ctx context.Context, id string) (*record.Details, error)
	FetchPlaylistTracks(ctx context.Context, id string) (*record.TrackPage, error)
	FetchTrackGenres(ctx context.Context, page record.TrackPage) (map[string][]string, error)
}

// Store persists one record per playlist.
type Store interface {
	Write(keyword string, rec *record.Record) error
}

func New(catalog Catalog, store Store, cfg *config.Config) *Collector {
	return &Collector{
		catalog: catalog,
		store:   store,
		cfg:     cfg,
	}
}

type Collector struct {
	catalog Catalog
	store   Store
	cfg     *config.Config
}

// Run visits each configured keyword in order, searching for playlists and
// storing a record per result. A playlist that cannot be fully fetched is
// logged and skipped; it does not abort the remaining ids.
func (c *Collector) Run(ctx context.Context) error {
	for _, keyword := range c.cfg.Keywords {
		if err := ctx.Err(); err != nil {
			return err
		}

		ids, err := c.catalog.SearchPlaylists(ctx, keyword, spotify.SearchOptions{
			Limit:        c.cfg.SearchLimit,
			MinTracks:    c.cfg.MinTracks,
			MinFollowers: c.cfg.MinFollowers,
		})
		if err != nil {
			return fmt.Errorf("error searching '%s' playlists: %w", keyword, err)
		}
		log.Printf("%s: %d playlists to fetch", keyword, len(ids))

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.collect(ctx, keyword, id); err != nil {
				log.Printf("%s: skipping playlist '%s': %s", keyword, id, err)
			}
		}
	}

	return nil
}

func (c *Collector) collect(ctx context.Context, keyword, id string) error {
	details, err := c.catalog.FetchPlaylist(ctx, id)
	if err != nil {
		return err
	}

	page, err := c.catalog.FetchPlaylistTracks(ctx, id)
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		return errors.New("no tracks")
	}

	genres, err := c.catalog.FetchTrackGenres(ctx, *page)
	if err != nil {
		return err
	}

	rec := &record.Record{
		PlaylistID:      id,
		PlaylistDetails: *details,
		PlaylistTracks:  *page,
		TrackGenres:     genres,
	}
	if err := c.store.Write(keyword, rec); err != nil {
		return err
	}

	log.Printf("%s: stored playlist '%s' (%d tracks)", keyword, id, len(page.Items))
	return nil
}
