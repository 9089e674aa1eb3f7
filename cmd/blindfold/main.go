// blindfold turns PGN games into spoken-style descriptions for blindfold
// chess practice.
package main

import (
	"fmt"
	"os"
)

const programVersion = "0.1.0"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
