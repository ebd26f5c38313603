package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlsp-go/mlsp"
)

func main() {
	rx, err := mlsp.NewReceiver(
		mlsp.Config{IP: "127.0.0.1", Port: 12345, TimeoutMS: 2000},
		mlsp.OnEventOption(func(ev mlsp.Event) {
			slog.Debug("event", "kind", ev.Kind.String(), "framenumber", ev.Framenumber)
		}),
	)
	if err != nil {
		slog.Error("failed to create receiver", "error", err)
		return
	}
	defer rx.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("shutting down receiver...")
		cancel()
		rx.Close()
	}()

	slog.Info("receiver listening", "addr", rx.Addr().String())

	for {
		if ctx.Err() != nil {
			return
		}

		frame, err := rx.Receive()
		if err != nil {
			if errors.Is(err, mlsp.ErrTimeout) {
				slog.Warn("receive timed out, resetting stream", "error", err)
				rx.Reset()
				continue
			}
			if errors.Is(err, mlsp.ErrClosed) {
				return
			}
			slog.Error("receive failed", "error", err)
			return
		}

		slog.Info("frame complete", "framenumber", frame.Framenumber, "subframes", frame.Subframes(), "size0", frame.Size(0))
	}
}
