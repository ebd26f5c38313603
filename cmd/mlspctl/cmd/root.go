package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd is the base command for mlspctl.
var rootCmd = &cobra.Command{
	Use:   "mlspctl",
	Short: "mlspctl sends and receives mlsp frames over UDP",
	Long: `mlspctl is an operator-facing CLI for the mlsp datagram streaming
protocol. It drives a sender or a receiver endpoint from the command line,
for manual testing and scripted interoperability checks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file (default: flags only)")
}
