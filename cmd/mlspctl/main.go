// Command mlspctl sends and receives mlsp frames from the command line, for
// manual testing of a receiver or sender without writing Go code.
package main

import (
	"fmt"
	"os"

	"github.com/mlsp-go/mlsp/cmd/mlspctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mlspctl:", err)
		os.Exit(1)
	}
}
