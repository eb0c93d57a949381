package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"daylists/db"
	"daylists/subcmd"
)

func stats(_ context.Context, args []string) error {
	sc := subcmd.New("stats", "print playlist counts and follower aggregates per time-of-day label")
	dbPath := sc.String("db", "daylists.db", "path to the sqlite database file")
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	rows, err := database.TimeOfDayStats()
	if err != nil {
		return err
	}
	trackCount, err := database.TrackCount()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "time_of_day\tplaylists\tfollowers\tmax followers")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", row.TimeOfDay, row.Playlists, row.TotalFollowers, row.MaxFollowers)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d tracks total\n", trackCount)
	return nil
}
