package kernel

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config bundles the fixed parameters a Kernel is built with
// (spec.md §3, §6). Zero-value Config is not usable; use
// DefaultConfig as a starting point.
type Config struct {
	MaxProcesses int

	// IdlePID is the sentinel current_pid value meaning "nothing is
	// running" (spec.md §3: "a distinguished value IDLE_PID"). It must
	// lie outside [0, MaxProcesses) — it is never a process table
	// entry, only a CPU register value.
	IdlePID PID

	NumSemaphores         int
	InitialSemaphoreValue int

	// Events receives the exact-format grading trace (spec.md §6). A
	// nil writer discards it.
	Events io.Writer

	// Diag receives ambient diagnostic logging, format not
	// contractual. The zero value discards.
	Diag zerolog.Logger

	// Terminate is invoked when the simulation reaches a terminal
	// condition (spec.md §4.4: no more processes, deadlock). Defaults
	// to a no-op that only sets Kernel.terminated; callers that want
	// the process to actually exit should supply os.Exit.
	Terminate func(code int)
}

// DefaultConfig returns a Config matching the original coursework's
// fixed sizing (spec.md §3): 32 processes, an idle sentinel outside
// the PID range, 16 semaphores each initialized to 1.
func DefaultConfig() Config {
	return Config{
		MaxProcesses:          32,
		IdlePID:               -1,
		NumSemaphores:         NumSemaphores,
		InitialSemaphoreValue: InitialSemaphoreValue,
		Events:                os.Stdout,
		Diag:                  zerolog.Nop(),
		Terminate:             func(int) {},
	}
}

// Kernel is the process scheduler and synchronization core
// (spec.md §4). It is driven entirely by callbacks installed on a CPU
// at InitializeKernel; callers never call schedule/trap handlers
// directly except through CPU-delivered events (or tests exercising
// HandleTrap/HandleClockInterrupt/... in isolation).
type Kernel struct {
	cpu      CPU
	disk     DiskController
	keyboard KeyboardController
	cfg      Config

	procs *ProcessTable
	ready [NumPriorityLevels]*Queue
	sems  *semaphoreArray
	events *EventLog
	diag  zerolog.Logger

	activeProcesses int
	ioProcesses     int
	quantumStart    uint64
	terminated      bool
}

// NewKernel allocates a Kernel's tables from cfg but does not yet
// attach it to a CPU; call InitializeKernel for that.
func NewKernel(cfg Config) *Kernel {
	if cfg.Terminate == nil {
		cfg.Terminate = func(int) {}
	}
	ready := [NumPriorityLevels]*Queue{}
	for i := range ready {
		ready[i] = NewQueue()
	}
	return &Kernel{
		cfg:    cfg,
		procs:  NewProcessTable(cfg.MaxProcesses),
		ready:  ready,
		sems:   newSemaphoreArray(cfg.NumSemaphores, cfg.InitialSemaphoreValue),
		events: NewEventLog(cfg.Events),
		diag:   cfg.Diag,
	}
}

// bootPID is the process initialize_kernel hands the CPU to at boot
// (spec.md §4.2: "puts PID 0 in RUNNING"). It is unrelated to
// Config.IdlePID, which is never a real table entry.
const bootPID PID = 0

// InitializeKernel attaches the kernel to its hardware façade
// (spec.md §4.2's boot sequence): installs the four interrupt
// handlers, puts PID 0 in RUNNING, and arms the first quantum. It
// must be called exactly once per Kernel.
func (k *Kernel) InitializeKernel(cpu CPU, disk DiskController, keyboard KeyboardController) {
	k.cpu = cpu
	k.disk = disk
	k.keyboard = keyboard

	cpu.InstallHandler(VectorTrap, k.HandleTrap)
	cpu.InstallHandler(VectorClock, k.HandleClockInterrupt)
	cpu.InstallHandler(VectorDisk, k.HandleDiskInterrupt)
	cpu.InstallHandler(VectorKeyboard, k.HandleKeyboardInterrupt)

	k.procs.SetState(bootPID, Running)
	cpu.SetCurrentPID(bootPID)
	k.activeProcesses = 1
	k.quantumStart = cpu.Clock()

	k.diag.Debug().
		Int("max_processes", k.cfg.MaxProcesses).
		Int32("idle_pid", int32(k.cfg.IdlePID)).
		Msg("kernel initialized")
}

// Terminated reports whether the simulation has reached a terminal
// condition (no more processes, or deadlock).
func (k *Kernel) Terminated() bool {
	return k.terminated
}

// ActiveProcesses returns the count of non-UNINITIALIZED processes,
// exposed for tests and monitoring; not used by scheduling itself
// beyond the field it mirrors.
func (k *Kernel) ActiveProcesses() int {
	return k.activeProcesses
}

// State exposes a single process's table entry, for tests and
// diagnostics that want to assert on scheduler outcomes.
func (k *Kernel) State(pid PID) ProcessState {
	k.checkPID(pid)
	return k.procs.State(pid)
}

// Priority exposes a single process's current MLFQ level.
func (k *Kernel) Priority(pid PID) int {
	k.checkPID(pid)
	return k.procs.Priority(pid)
}

// TotalCPUTime exposes a single process's lifetime CPU charge.
func (k *Kernel) TotalCPUTime(pid PID) uint64 {
	k.checkPID(pid)
	return k.procs.TotalCPUTime(pid)
}
