// Package fanout runs several mlsp receiver endpoints concurrently and
// dispatches their completed frames to a single handler. It exists outside
// the core mlsp package because Endpoint itself is deliberately
// single-threaded; fanout is where an application opts into concurrency
// across multiple streams (e.g. one socket per camera or per audio track).
package fanout

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mlsp-go/mlsp"
)

// Handler processes a frame completed on one named receiver. The name
// identifies which receiver produced the frame (e.g. a stream label) so a
// single handler can demultiplex across sources.
type Handler func(source string, frame mlsp.LogicalFrame) error

// Source pairs a receiver endpoint with the name used to identify it in
// Handler calls.
type Source struct {
	Name     string
	Receiver *mlsp.Endpoint
}

// Group runs a fixed set of receivers concurrently, each on its own
// goroutine, feeding completed frames to a shared Handler.
type Group struct {
	sources []Source
	handler Handler
	logger  mlsp.Logger
}

// New builds a Group over the given sources. A nil logger defaults to
// slog.Default(), which satisfies mlsp.Logger directly.
func New(sources []Source, handler Handler, logger mlsp.Logger) *Group {
	if logger == nil {
		logger = slog.Default()
	}
	return &Group{sources: sources, handler: handler, logger: logger}
}

// Run blocks until ctx is canceled or one receiver returns a fatal error.
// On ctx cancellation every receiver is closed so its blocked Receive call
// unblocks with mlsp.ErrClosed, which Run treats as a clean stop rather than
// a failure. Run returns the first non-ErrClosed/non-ErrTimeout error
// encountered, or ctx.Err() on a clean shutdown.
func (g *Group) Run(ctx context.Context) error {
	group, child := errgroup.WithContext(ctx)

	for _, src := range g.sources {
		src := src
		group.Go(func() error {
			return g.runSource(child, src)
		})
	}

	go func() {
		<-child.Done()
		for _, src := range g.sources {
			src.Receiver.Close()
		}
	}()

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ctx.Err()
}

// runSource repeatedly calls Receive on one source, forwarding each
// completed frame to the handler until the context is done or a fatal
// receive error occurs. A receive timeout triggers Reset rather than
// exiting, matching the single-endpoint recommendation in mlsp's own
// timeout-handling guidance.
func (g *Group) runSource(ctx context.Context, src Source) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		frame, err := src.Receiver.Receive()
		if err != nil {
			if errors.Is(err, mlsp.ErrClosed) {
				return nil
			}
			if errors.Is(err, mlsp.ErrTimeout) {
				g.logger.Debug("receive timed out, resetting stream", "source", src.Name)
				src.Receiver.Reset()
				continue
			}
			g.logger.Error("receive failed", "source", src.Name, "error", err)
			return err
		}

		if err := g.handle(src.Name, frame); err != nil {
			return err
		}
	}
}

func (g *Group) handle(source string, frame mlsp.LogicalFrame) error {
	if g.handler == nil {
		return nil
	}
	return g.handler(source, frame)
}
