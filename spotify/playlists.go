package spotify

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"daylists/data"
	"daylists/record"
)

// SearchOptions filter playlist search results.
type SearchOptions struct {
	// Limit is the page size requested per search variation, max 50.
	Limit int

	// MinTracks drops playlists with fewer tracks.
	MinTracks int64

	// MinFollowers drops playlists with fewer followers. Checking it
	// costs one detail fetch per surviving search result.
	MinFollowers int64
}

// searchVariations are the query shapes tried for each keyword. Casting a
// wider net than the bare keyword surfaces more user playlists.
func searchVariations(keyword string) []string {
	return []string{
		keyword + " playlist",
		"*" + keyword + "*",
		keyword + " music",
		keyword + " vibes",
	}
}

// excludedTerms builds word-boundary patterns for every daypart other than
// the one being searched, so a "morning" search drops playlists whose names
// mention other dayparts.
func excludedTerms(keyword string) []*regexp.Regexp {
	var patterns []*regexp.Regexp
	for _, daypart := range data.Dayparts {
		if strings.EqualFold(daypart, keyword) {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+daypart+`\b`))
	}
	return patterns
}

type searchedPlaylist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner struct {
		ID string `json:"id"`
	} `json:"owner"`
	Tracks struct {
		Total int64 `json:"total"`
	} `json:"tracks"`
}

type playlistSearchPage struct {
	Playlists struct {
		Items []searchedPlaylist `json:"items"`
	} `json:"playlists"`
}

// wantPlaylist applies the cheap filters, the ones that need no extra
// request: required fields, editorial ownership, other-daypart and setlist
// names, and the track-count minimum.
func wantPlaylist(item searchedPlaylist, minTracks int64, excluded []*regexp.Regexp) bool {
	if item.ID == "" || item.Name == "" {
		return false
	}
	if item.Owner.ID == "spotify" {
		return false
	}
	for _, pattern := range excluded {
		if pattern.MatchString(item.Name) {
			return false
		}
	}
	if strings.Contains(strings.ToLower(item.Name), "setlist") {
		return false
	}
	if item.Tracks.Total < minTracks {
		return false
	}
	return true
}

// SearchPlaylists searches for user playlists matching the keyword, tries a
// few query variations, filters out editorial playlists, playlists naming
// other dayparts, setlists, and playlists below the track and follower
// minimums, then returns the surviving ids sorted by follower count
// descending. A playlist whose detail fetch fails is logged and skipped.
func (spo *Client) SearchPlaylists(ctx context.Context, keyword string, opts SearchOptions) ([]string, error) {
	excluded := excludedTerms(keyword)

	type candidate struct {
		id        string
		followers int64
	}
	var candidates []candidate
	seen := map[string]struct{}{}

	for _, query := range searchVariations(keyword) {
		var page playlistSearchPage
		if err := spo.get(ctx, apiURL+"/search", map[string]string{
			"q":     query,
			"type":  "playlist",
			"limit": strconv.Itoa(opts.Limit),
		}, &page); err != nil {
			return nil, fmt.Errorf("error searching playlists for '%s': %w", query, err)
		}

		for _, item := range page.Playlists.Items {
			if !wantPlaylist(item, opts.MinTracks, excluded) {
				continue
			}
			if _, dup := seen[item.ID]; dup {
				continue
			}

			details, err := spo.FetchPlaylist(ctx, item.ID)
			if err != nil {
				log.Printf("skipping playlist '%s': %s", item.ID, err)
				continue
			}
			if details.Followers.Total < opts.MinFollowers {
				continue
			}

			seen[item.ID] = struct{}{}
			candidates = append(candidates, candidate{item.ID, details.Followers.Total})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].followers > candidates[j].followers
	})

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids, nil
}

// FetchPlaylist fetches one playlist's metadata, including its follower
// count.
func (spo *Client) FetchPlaylist(ctx context.Context, id string) (*record.Details, error) {
	var details record.Details
	if err := spo.get(ctx, apiURL+"/playlists/"+id, nil, &details); err != nil {
		return nil, fmt.Errorf("error fetching playlist '%s': %w", id, err)
	}
	return &details, nil
}

// FetchPlaylistTracks fetches the first page of a playlist's tracks.
func (spo *Client) FetchPlaylistTracks(ctx context.Context, id string) (*record.TrackPage, error) {
	var page record.TrackPage
	if err := spo.get(ctx, fmt.Sprintf("%s/playlists/%s/tracks", apiURL, id), nil, &page); err != nil {
		return nil, fmt.Errorf("error fetching tracks for playlist '%s': %w", id, err)
	}
	return &page, nil
}
