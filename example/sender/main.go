package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlsp-go/mlsp"
)

func main() {
	tx, err := mlsp.NewSender(mlsp.Config{IP: "127.0.0.1", Port: 12345})
	if err != nil {
		slog.Error("failed to create sender", "error", err)
		return
	}
	defer tx.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("shutting down sender...")
		cancel()
	}()

	slog.Info("sender start", "addr", tx.Addr().String())

	var framenumber uint16
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			payload := []byte("frame " + time.Now().Format(time.RFC3339Nano))
			err := tx.Send(mlsp.OutgoingFrame{
				Framenumber: framenumber,
				Subframes:   []mlsp.OutgoingSubframe{{Data: payload}},
			})
			if err != nil {
				slog.Error("send failed", "framenumber", framenumber, "error", err)
				return
			}
			framenumber++
		}
	}
}
