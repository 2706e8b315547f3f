package kernel

import (
	"fmt"
	"io"
)

// EventLog emits the exact line-oriented event templates from
// spec.md §6 to an io.Writer. Its output is the grading-significant
// trace; it is deliberately independent of the diagnostic zerolog
// logger threaded through Kernel, whose format is not contractual.
type EventLog struct {
	w io.Writer
}

// NewEventLog wraps w. A nil w discards events.
func NewEventLog(w io.Writer) *EventLog {
	if w == nil {
		w = io.Discard
	}
	return &EventLog{w: w}
}

func (e *EventLog) printf(format string, args ...any) {
	fmt.Fprintf(e.w, format, args...)
}

func (e *EventLog) ProcessRuns(t uint64, pid PID) {
	e.printf("Time %d: Process %d runs\n", t, pid)
}

func (e *EventLog) ProcessorIdle(t uint64) {
	e.printf("Time %d: Processor is idle\n", t)
}

func (e *EventLog) CreatingProcess(t uint64, pid PID) {
	e.printf("Time %d: Creating process entry for pid %d\n", t, pid)
}

func (e *EventLog) ProcessExits(t uint64, pid PID, totalCPU uint64) {
	e.printf("Time %d: Process %d exits. Total CPU time = %d\n", t, pid, totalCPU)
}

func (e *EventLog) DiskReadRequest(t uint64, pid PID) {
	e.printf("Time %d: Process %d issues disk read request\n", t, pid)
}

func (e *EventLog) DiskWriteRequest(t uint64, pid PID) {
	e.printf("Time %d: Process %d issues disk write request\n", t, pid)
}

func (e *EventLog) KeyboardReadRequest(t uint64, pid PID) {
	e.printf("Time %d: Process %d issues keyboard read request\n", t, pid)
}

func (e *EventLog) SemaphoreUp(t uint64, pid PID, sem int) {
	e.printf("Time %d: Process %d issues UP operation on semaphore %d\n", t, pid, sem)
}

func (e *EventLog) SemaphoreDown(t uint64, pid PID, sem int) {
	e.printf("Time %d: Process %d issues DOWN operation on semaphore %d\n", t, pid, sem)
}

func (e *EventLog) DiskInterruptHandled(t uint64, pid PID) {
	e.printf("Time %d: Handled DISK_INTERRUPT for pid %d\n", t, pid)
}

func (e *EventLog) KeyboardInterruptHandled(t uint64, pid PID) {
	e.printf("Time %d: Handled KEYBOARD_INTERRUPT for pid %d\n", t, pid)
}

func (e *EventLog) NoMoreProcesses() {
	e.printf("-- No more processes to execute --\n")
}

func (e *EventLog) Deadlocked() {
	e.printf("DEADLOCKED SYSTEM\n")
}
