// Package trace formats per-instruction CPU state as nestest-style log
// lines, used by the `trace` CLI command and by comparing against the
// canonical nestest.nes automated-test log.
package trace

import "fmt"

// CPUState is the subset of CPU register state a trace line needs; kept as
// a plain struct so this package doesn't import internal/cpu and create a
// dependency cycle with callers that need both.
type CPUState struct {
	PC            uint16
	A, X, Y, S, P uint8
	Opcode        uint8
	Mnemonic      string
	Scanline      int
	PPUCycle      int
	MasterCycle   uint64
}

// Line formats one instruction's state the way nestest's reference log
// does: PC, raw opcode byte, mnemonic, then registers and PPU coordinates.
func Line(s CPUState) string {
	return fmt.Sprintf(
		"%04X  %02X %-3s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		s.PC, s.Opcode, s.Mnemonic, s.A, s.X, s.Y, s.P, s.S, s.Scanline, s.PPUCycle, s.MasterCycle,
	)
}
