// Single-consumer event loop: one task pumps compositor events into an unbuffered channel, one
// task runs the handler for each event fully to completion before receiving the next.
//
// Events are handled in delivery order, never concurrently and never batched. A handler that
// panics is logged and the loop carries on with the next event.
package reactor

import (
	"context"
	"log"

	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/sync/taskrunner"
	"github.com/function61/hyprws/pkg/compositor"
)

// must not return errors - deal with (log) failures inside
type Handler func(ctx context.Context, event compositor.Event)

// runs until ctx is canceled or the event source fails
func Run(
	ctx context.Context,
	source compositor.EventSource,
	handle Handler,
	logger *log.Logger,
) error {
	logl := logex.Levels(logex.Prefix("reactor", logger))

	events := make(chan compositor.Event)

	tasks := taskrunner.New(ctx, logger)

	tasks.Start("events", func(ctx context.Context) error {
		defer close(events)

		return source.Events(ctx, events)
	})

	tasks.Start("handler", func(ctx context.Context) error {
		for event := range events {
			handleOne(ctx, event, handle, logl)
		}

		return nil
	})

	return tasks.Wait()
}

func handleOne(ctx context.Context, event compositor.Event, handle Handler, logl *logex.Leveled) {
	defer func() {
		if err := recover(); err != nil {
			logl.Error.Printf("handler panicked on %s: %v", event, err)
		}
	}()

	logl.Debug.Printf("handling %s", event)

	handle(ctx, event)
}
