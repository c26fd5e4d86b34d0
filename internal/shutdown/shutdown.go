// Package shutdown builds a root context cancelled by SIGINT/SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"petal/internal/logging"
)

// New returns a context that is cancelled on the first interrupt or
// terminate signal. A second signal exits immediately.
func New() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = logging.WithLogger(ctx, logging.DefaultLogger())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
