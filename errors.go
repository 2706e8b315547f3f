package kernel

import "fmt"

// FatalError marks a simulation-fatal condition (spec.md §7): a
// corrupted invariant or an out-of-range operand. The original C
// submissions abort() or exit() the whole simulator on these; this
// port panics with FatalError instead, so a host can recover() at its
// boundary if it wants to report a diagnostic rather than crash.
type FatalError struct {
	Reason string
	Clock  uint64
}

func (e FatalError) Error() string {
	return fmt.Sprintf("kernel: fatal at clock %d: %s", e.Clock, e.Reason)
}

func (k *Kernel) abortf(format string, args ...any) {
	panic(FatalError{Reason: fmt.Sprintf(format, args...), Clock: k.cpu.Clock()})
}

func (k *Kernel) checkPID(pid PID) {
	if pid < 0 || int(pid) >= k.cfg.MaxProcesses {
		k.abortf("pid %d out of range [0,%d)", pid, k.cfg.MaxProcesses)
	}
}

func (k *Kernel) checkSemaphore(sem int) {
	if sem < 0 || sem >= len(k.sems.entries) {
		k.abortf("semaphore %d out of range [0,%d)", sem, len(k.sems.entries))
	}
}
