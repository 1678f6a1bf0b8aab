// Command gentables prints internal/noise/tables.go.
//
//	go run ./cmd/gentables > internal/noise/tables.go
package main

import (
	"bufio"
	"fmt"
	"os"

	"procnoise/internal/noise"
)

func main() {
	w := bufio.NewWriter(os.Stdout)
	if err := noise.WriteTables(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
