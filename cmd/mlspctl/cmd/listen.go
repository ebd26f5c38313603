package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlsp-go/mlsp"
	"github.com/mlsp-go/mlsp/internal/fanout"
)

var (
	listenIP        string
	listenPort      int
	listenTimeoutMS int
	listenSubframes int
	listenCount     int
	listenSources   []string
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listen for mlsp frames and print a summary of each one received",
	RunE:  runListen,
}

func init() {
	listenCmd.Flags().StringVar(&listenIP, "ip", "", "local bind address (default: any)")
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "local bind port (ignored when --source is given)")
	listenCmd.Flags().IntVar(&listenTimeoutMS, "timeout-ms", 0, "receive timeout in milliseconds (0: block indefinitely)")
	listenCmd.Flags().IntVar(&listenSubframes, "subframes", 1, "expected subframes per frame")
	listenCmd.Flags().IntVar(&listenCount, "count", 0, "stop after this many frames, single-source mode only (0: unbounded)")
	listenCmd.Flags().StringArrayVar(&listenSources, "source", nil, "name@ip:port, repeatable; listens on all sources concurrently")
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	if len(listenSources) > 0 {
		return runListenMulti(cmd)
	}
	return runListenSingle(cmd)
}

func runListenSingle(cmd *cobra.Command) error {
	cfg, err := loadConfig(cfgFile, mlsp.Config{
		IP:        listenIP,
		Port:      uint16(listenPort),
		TimeoutMS: listenTimeoutMS,
		Subframes: listenSubframes,
	})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		return fmt.Errorf("listen: --port is required")
	}

	rx, err := mlsp.NewReceiver(cfg)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer rx.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", rx.Addr())

	received := 0
	for listenCount == 0 || received < listenCount {
		frame, err := rx.Receive()
		if err != nil {
			if errors.Is(err, mlsp.ErrTimeout) {
				fmt.Fprintln(cmd.OutOrStdout(), "timed out, resetting stream")
				rx.Reset()
				continue
			}
			return fmt.Errorf("listen: %w", err)
		}

		received++
		printFrame(cmd, "", frame)
	}
	return nil
}

// runListenMulti binds one receiver per --source and runs them concurrently
// through a fanout.Group, printing every completed frame tagged with the
// source name it arrived on. It blocks until interrupted.
func runListenMulti(cmd *cobra.Command) error {
	sources := make([]fanout.Source, 0, len(listenSources))
	for _, spec := range listenSources {
		name, addr, err := parseSource(spec)
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}

		ip, portStr, err := net.SplitHostPort(addr)
		if err != nil {
			return fmt.Errorf("listen: source %q: %w", spec, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("listen: source %q: invalid port: %w", spec, err)
		}

		rx, err := mlsp.NewReceiver(mlsp.Config{
			IP:        ip,
			Port:      uint16(port),
			TimeoutMS: listenTimeoutMS,
			Subframes: listenSubframes,
		})
		if err != nil {
			return fmt.Errorf("listen: source %q: %w", spec, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "listening on %s as %q\n", rx.Addr(), name)

		sources = append(sources, fanout.Source{Name: name, Receiver: rx})
	}

	group := fanout.New(sources, func(source string, frame mlsp.LogicalFrame) error {
		printFrame(cmd, source, frame)
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	return group.Run(ctx)
}

// parseSource splits a "name@ip:port" source spec.
func parseSource(spec string) (name, addr string, err error) {
	name, addr, ok := strings.Cut(spec, "@")
	if !ok || name == "" || addr == "" {
		return "", "", fmt.Errorf("invalid source %q, want name@ip:port", spec)
	}
	return name, addr, nil
}

func printFrame(cmd *cobra.Command, source string, frame mlsp.LogicalFrame) {
	prefix := ""
	if source != "" {
		prefix = fmt.Sprintf("[%s] ", source)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%sframe=%d subframes=%d\n", prefix, frame.Framenumber, frame.Subframes())
	for i := 0; i < frame.Subframes(); i++ {
		preview := frame.Data(i)
		if len(preview) > 32 {
			preview = preview[:32]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  subframe=%d size=%d data=%q\n", prefix, i, frame.Size(i), preview)
	}
}
