package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlsp-go/mlsp"
)

var (
	sendIP    string
	sendPort  int
	sendText  string
	sendFile  string
	sendFrame int
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single frame to a remote mlsp receiver",
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendIP, "ip", "127.0.0.1", "remote receiver address")
	sendCmd.Flags().IntVar(&sendPort, "port", 0, "remote receiver port")
	sendCmd.Flags().StringVar(&sendText, "text", "", "payload text for subframe 0 (mutually exclusive with --file)")
	sendCmd.Flags().StringVar(&sendFile, "file", "", "path to a file whose contents become subframe 0's payload")
	sendCmd.Flags().IntVar(&sendFrame, "framenumber", 0, "framenumber to send")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile, mlsp.Config{IP: sendIP, Port: uint16(sendPort)})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		return fmt.Errorf("send: --port is required")
	}

	payload, err := sendPayload()
	if err != nil {
		return err
	}

	tx, err := mlsp.NewSender(cfg)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	defer tx.Close()

	start := time.Now()
	err = tx.Send(mlsp.OutgoingFrame{
		Framenumber: uint16(sendFrame),
		Subframes:   []mlsp.OutgoingSubframe{{Data: payload}},
	})
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "sent framenumber=%d bytes=%d in %s\n", sendFrame, len(payload), time.Since(start))
	return nil
}

func sendPayload() ([]byte, error) {
	if sendFile != "" && sendText != "" {
		return nil, fmt.Errorf("send: --text and --file are mutually exclusive")
	}
	if sendFile != "" {
		return os.ReadFile(sendFile)
	}
	return []byte(sendText), nil
}
