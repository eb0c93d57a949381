package db

import "fmt"

// TimeOfDayStat aggregates the playlists sharing one daypart label.
type TimeOfDayStat struct {
	TimeOfDay      string
	Playlists      int64
	TotalFollowers int64
	MaxFollowers   int64
}

// TimeOfDayStats summarizes playlist and follower counts per time_of_day
// label, most-populated label first.
func (db *DB) TimeOfDayStats() ([]TimeOfDayStat, error) {
	var stats []TimeOfDayStat
	if err := db.
		Table("playlists").
		Select(
			"time_of_day",
			"count(*) as playlists",
			"sum(followers) as total_followers",
			"max(followers) as max_followers",
		).
		Group("time_of_day").
		Order("playlists desc").
		Scan(&stats).
		Error; err != nil {
		return nil, fmt.Errorf("error aggregating playlists by time of day: %w", err)
	}
	return stats, nil
}

// TrackCount returns the number of rows in the tracks table.
func (db *DB) TrackCount() (int64, error) {
	var count int64
	if err := db.
		Table("tracks").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting tracks: %w", err)
	}
	return count, nil
}
