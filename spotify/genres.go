package spotify

import (
	"context"
	"strings"

	"daylists/record"
)

// trackGenresLimit caps how many playlist items get a genre lookup.
const trackGenresLimit = 200

type artistsResults struct {
	Artists []struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Genres []string `json:"genres"`
	} `json:"artists"`
}

// FetchTrackGenres looks up genres for the tracks in page, batching their
// artists fifty at a time against the artists endpoint. The result is keyed
// by track display name, which is the shape the stored records carry; a
// track with several artists ends up with the genres of whichever of its
// artists was matched last.
func (spo *Client) FetchTrackGenres(ctx context.Context, page record.TrackPage) (map[string][]string, error) {
	type mention struct {
		track    string
		artistID string
	}

	items := page.Items
	if len(items) > trackGenresLimit {
		items = items[:trackGenresLimit]
	}

	var mentions []mention
	for _, item := range items {
		for _, artist := range item.Track.Artists {
			if artist.ID == "" {
				continue
			}
			mentions = append(mentions, mention{item.Track.Name, artist.ID})
		}
	}

	genres := map[string][]string{}
	for start := 0; start < len(mentions); start += 50 {
		batch := mentions[start:min(start+50, len(mentions))]

		ids := make([]string, len(batch))
		for i, m := range batch {
			ids[i] = m.artistID
		}

		var results artistsResults
		if err := spo.get(ctx, apiURL+"/artists", map[string]string{
			"ids": strings.Join(ids, ","),
		}, &results); err != nil {
			return nil, err
		}

		for _, artist := range results.Artists {
			if artist.ID == "" {
				continue
			}
			for _, m := range batch {
				if m.artistID == artist.ID {
					genres[m.track] = artist.Genres
				}
			}
		}
	}

	return genres, nil
}
