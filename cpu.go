package kernel

// PID is a process identifier: a small non-negative integer bounded
// by the kernel's configured MaxProcesses.
type PID int32

// TrapKind distinguishes what a TRAP is asking the kernel to do.
type TrapKind uint32

// Trap kinds, matching R1 at a TRAP. Values are an internal encoding;
// the real façade's encoding is out of scope (spec.md §6).
const (
	DiskRead TrapKind = iota
	DiskWrite
	KeyboardRead
	ForkProgram
	EndProgram
	SemaphoreOp
)

// InterruptVector names an entry of the CPU's interrupt table.
type InterruptVector int

const (
	VectorTrap InterruptVector = iota
	VectorClock
	VectorDisk
	VectorKeyboard
)

// CPU is the simulated hardware façade this kernel is hosted on: a
// small register file, a monotonically increasing clock, a
// current_pid register, and an interrupt vector table. Real hardware
// delivers interrupts by invoking the registered handler synchronously
// (spec.md Non-goals); InstallHandler is how InitializeKernel hooks
// into that delivery.
type CPU interface {
	Clock() uint64
	CurrentPID() PID
	SetCurrentPID(pid PID)

	// R1, R2, R3 are the operand registers a trap or interrupt reads
	// to learn its kind and arguments.
	R1() uint32
	R2() uint32
	R3() uint32

	InstallHandler(vector InterruptVector, handler func())
}

// DiskController is the disk half of the hardware façade, kept
// separate from CPU because a host may wire a disk model that isn't
// part of its CPU implementation at all (spec.md §4.1's device split).
type DiskController interface {
	ReadReq(pid PID, block uint32)
	WriteReq(pid PID)
}

// KeyboardController is the keyboard half of the façade.
type KeyboardController interface {
	ReadReq(pid PID)
}
