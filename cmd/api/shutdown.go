package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

type errSignal struct {
	Signal os.Signal
}

func (e errSignal) Error() string {
	return fmt.Sprintf("got signal %s", e.Signal)
}

// sigTrap returns when ctx is cancelled or a termination signal arrives; a
// signal is reported as errSignal so the errgroup tears the server down.
func sigTrap(ctx context.Context) func() error {
	return func() error {
		trap := make(chan os.Signal, 1)
		signal.Notify(trap, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
		defer signal.Stop(trap)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-trap:
			return errSignal{Signal: sig}
		}
	}
}
