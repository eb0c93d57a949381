// Package sigctx provides a root context canceled by SIGINT or SIGTERM.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context that is canceled when the process receives an
// interrupt or termination signal. The context lives for the whole process,
// so its stop function is never called.
func New() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}
