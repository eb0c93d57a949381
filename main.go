// this program builds a sqlite3 database of daypart-keyword playlists from
// spotify: 'collect' stores one json record per playlist, 'normalize'
// flattens the records into relational tables.
//
// see db/schema.sql for info about the resulting database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"daylists/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		panic(err)
	}
}

var usage = strings.TrimSpace(`
usage: daylists $cmd
valid $cmd are 'collect', 'normalize', 'stats'
for help: daylists $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "collect":
		return collect(ctx, args)

	case "normalize":
		return normalize(ctx, args)

	case "stats":
		return stats(ctx, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
