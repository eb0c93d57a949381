package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"daylists/collector"
	"daylists/config"
	"daylists/data"
	"daylists/limiter"
	"daylists/record"
	"daylists/setflag"
	"daylists/spotify"
	"daylists/subcmd"

	"github.com/joho/godotenv"
)

func collect(ctx context.Context, args []string) error {
	sc := subcmd.New("collect", "search spotify for daypart playlists and store one json record per playlist\nrequires SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	configPath := sc.String("config", "", "path to a yaml config file")
	keywords := setflag.New(data.Dayparts...)
	sc.Var(keywords, "keywords", "comma-separated daypart keywords to collect (default: all four)")
	if err := sc.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if picked := keywords.List(); len(picked) > 0 {
		cfg.Keywords = picked
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading .env: %w", err)
	}
	clientID, clientSecret := os.Getenv("SPOTIFY_CLIENT_ID"), os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return errors.New("must set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	}

	lim := limiter.New("next-req", cfg.RequestDelay())
	if err := lim.Load(); err != nil {
		return err
	}

	spo := spotify.New(clientID, clientSecret, lim)
	store := record.NewDir(cfg.RawDir)

	return collector.New(spo, store, cfg).Run(ctx)
}
