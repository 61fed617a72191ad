package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nesgo/internal/cartridge"
	"nesgo/internal/system"
	"nesgo/internal/trace"
	"nesgo/internal/tracelog"
)

func newTraceCmd() *cobra.Command {
	var count int
	var entry uint16
	var verbose bool

	cmd := &cobra.Command{
		Use:   "trace <rom>",
		Short: "Print the first N nestest-style instruction trace lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := cartridge.Load(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				if romErr, ok := err.(*cartridge.RomError); ok {
					os.Exit(romErr.ExitCode())
				}
				os.Exit(1)
			}

			sys := system.New(cart)
			if entry != 0 {
				// Forces the nestest automated-test entry vector instead of the
				// normal RESET vector, so the trace matches the canonical golden log.
				sys.CPU.PC = entry
			}
			for i := 0; i < count; i++ {
				state := sys.StepInstruction()
				fmt.Println(trace.Line(state))
				if verbose {
					fmt.Print(tracelog.Dump(state))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 100, "number of instructions to trace")
	cmd.Flags().Uint16Var(&entry, "entry", 0, "override the CPU's post-reset PC (e.g. 0xC000 for nestest's automated-test mode)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "dump full CPU state via tracelog.Dump after each traced instruction")
	return cmd
}
