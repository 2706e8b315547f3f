package kernel

// ProcessState is the lifecycle state of a process table entry
// (spec.md §3).
type ProcessState int

const (
	Uninitialized ProcessState = iota
	Ready
	Running
	Blocked
)

func (s ProcessState) String() string {
	switch s {
	case Uninitialized:
		return "UNINITIALIZED"
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}

type processEntry struct {
	state        ProcessState
	priority     int
	totalCPUTime uint64
}

// NumPriorityLevels is the number of ready queues the scheduler
// maintains (spec.md §3: five-level feedback queue, 0 lowest).
const NumPriorityLevels = 5

// ProcessTable is the per-PID state array (spec.md §4.2). It never
// touches active_processes/io_processes itself: those are kernel
// scalars updated transactionally alongside state changes by the trap
// and interrupt handlers, not derivable purely from table contents
// without a full scan.
type ProcessTable struct {
	entries []processEntry
}

// NewProcessTable allocates a table sized for maxProcesses PIDs, all
// starting UNINITIALIZED at priority 0.
func NewProcessTable(maxProcesses int) *ProcessTable {
	return &ProcessTable{entries: make([]processEntry, maxProcesses)}
}

func (t *ProcessTable) State(pid PID) ProcessState {
	return t.entries[pid].state
}

func (t *ProcessTable) SetState(pid PID, s ProcessState) {
	t.entries[pid].state = s
}

func (t *ProcessTable) Priority(pid PID) int {
	return t.entries[pid].priority
}

func (t *ProcessTable) setPriority(pid PID, p int) {
	t.entries[pid].priority = p
}

// BumpPriority rewards voluntary yield: min(p+1, NumPriorityLevels-1).
func (t *ProcessTable) BumpPriority(pid PID) {
	if p := t.entries[pid].priority; p < NumPriorityLevels-1 {
		t.entries[pid].priority = p + 1
	}
}

// DropPriority penalizes quantum exhaustion: max(p-1, 0).
func (t *ProcessTable) DropPriority(pid PID) {
	if p := t.entries[pid].priority; p > 0 {
		t.entries[pid].priority = p - 1
	}
}

func (t *ProcessTable) TotalCPUTime(pid PID) uint64 {
	return t.entries[pid].totalCPUTime
}

// AddCPU charges ticks of CPU time to pid, accumulated across its
// lifetime. The total is never reset: neither exit nor a later fork
// reusing the PID clears it.
func (t *ProcessTable) AddCPU(pid PID, ticks uint64) {
	t.entries[pid].totalCPUTime += ticks
}

func (t *ProcessTable) resetForExit(pid PID) {
	t.entries[pid].priority = 0
}
