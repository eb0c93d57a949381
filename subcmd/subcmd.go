package subcmd

import (
	"flag"
	"fmt"
	"os"
)

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	sc.FlagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", doc)
		fmt.Fprintf(os.Stderr, "  daylists %s [flags]\n\n", name)
		fmt.Fprintf(os.Stderr, "flags:\n")
		sc.FlagSet.PrintDefaults()
	}
	return sc
}

type Subcommand struct {
	*flag.FlagSet
}
