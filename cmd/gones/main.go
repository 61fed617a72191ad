// Command gones runs the NES emulator: load a ROM and drive it through
// either the windowed ebiten frontend or the terminal bubbletea frontend.
package main

import (
	"fmt"
	"os"

	"nesgo/internal/tracelog"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer tracelog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
