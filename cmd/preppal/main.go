// Command preppal runs the PrepPal study assistant backend.
package main

import (
	"os"

	"github.com/preppal-labs/preppal/internal/adapters/driving/cli"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := cli.Execute(Version); err != nil {
		os.Exit(1)
	}
}
