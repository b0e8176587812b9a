package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
)

func newSignalNotifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	go func() {
		for range ch {
			cancel(errors.New("ctrl+c"))
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		close(ch)
		cancel(nil)
	}
}
