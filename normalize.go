package main

import (
	"context"
	"fmt"

	"daylists/db"
	"daylists/normalizer"
	"daylists/record"
	"daylists/subcmd"
)

func normalize(_ context.Context, args []string) error {
	sc := subcmd.New("normalize", "flatten the stored playlist records into the sqlite database, replacing prior table contents")
	rawDir := sc.String("raw", "data/raw", "directory of stored playlist records")
	dbPath := sc.String("db", "daylists.db", "path to the sqlite database file")
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	return normalizer.Run(record.NewDir(*rawDir), database)
}
