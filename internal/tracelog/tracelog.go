// Package tracelog is the emulator's single logging seam: a thin glog
// wrapper plus a go-spew-backed state dumper, replacing the scattered
// ad-hoc debug prints a hand-rolled emulator tends to accumulate.
package tracelog

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
)

// Infof logs at glog's default verbosity (always emitted unless -logtostderr
// is suppressed by flags).
func Infof(format string, args ...interface{}) { glog.Infof(format, args...) }

// V gates a log line behind glog's -v verbosity flag; V(1) for DMA events,
// V(2) for NMI events.
func V(level glog.Level) glog.Verbose { return glog.V(level) }

// Dump renders v with go-spew for the `trace` CLI command's verbose state
// dumps.
func Dump(v interface{}) string { return spew.Sdump(v) }

// Flush flushes any buffered log lines; call before process exit.
func Flush() { glog.Flush() }
