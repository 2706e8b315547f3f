package kernel

// chargeCPU implements spec.md §4.5's "charge CPU": accumulate the
// ticks since the current quantum began against pid, then restart the
// quantum clock. Blocking handlers must call this before rescheduling.
func (k *Kernel) chargeCPU(pid PID) {
	now := k.cpu.Clock()
	k.procs.AddCPU(pid, now-k.quantumStart)
	k.quantumStart = now
}

// earlyBlock reports whether the current process is yielding before
// its quantum expired, the MLFQ reward condition (spec.md §4.4).
func (k *Kernel) earlyBlock() bool {
	return k.cpu.Clock()-k.quantumStart < Quantum
}

// HandleTrap demultiplexes a TRAP delivered with the trap kind in R1
// (spec.md §4.5). It is registered against VectorTrap by
// InitializeKernel, and may also be invoked directly by a test driving
// the kernel without a full interrupt-vector round trip.
func (k *Kernel) HandleTrap() {
	if k.terminated {
		return
	}
	switch TrapKind(k.cpu.R1()) {
	case DiskRead:
		k.handleDiskRead()
	case DiskWrite:
		// Fire-and-forget: no block, no io_processes++, no reschedule
		// (spec.md §9(c), preserved from the original intentionally).
		pid := k.cpu.CurrentPID()
		k.disk.WriteReq(pid)
		k.events.DiskWriteRequest(k.cpu.Clock(), pid)
	case KeyboardRead:
		k.handleKeyboardRead()
	case ForkProgram:
		k.handleFork()
	case EndProgram:
		k.handleEnd()
	case SemaphoreOp:
		k.handleSemaphoreOp()
	default:
		k.abortf("unknown trap kind %d", k.cpu.R1())
	}
}

func (k *Kernel) handleDiskRead() {
	pid := k.cpu.CurrentPID()
	block := k.cpu.R2()

	k.events.DiskReadRequest(k.cpu.Clock(), pid)
	k.procs.SetState(pid, Blocked)
	if k.earlyBlock() {
		k.procs.BumpPriority(pid)
	}
	k.disk.ReadReq(pid, block)
	k.ioProcesses++
	k.chargeCPU(pid)
	k.schedule(NumPriorityLevels - 1)
}

func (k *Kernel) handleKeyboardRead() {
	pid := k.cpu.CurrentPID()

	k.events.KeyboardReadRequest(k.cpu.Clock(), pid)
	k.procs.SetState(pid, Blocked)
	if k.earlyBlock() {
		k.procs.BumpPriority(pid)
	}
	k.keyboard.ReadReq(pid)
	k.ioProcesses++
	k.chargeCPU(pid)
	k.schedule(NumPriorityLevels - 1)
}

func (k *Kernel) handleFork() {
	newPID := PID(k.cpu.R2())
	k.checkPID(newPID)

	k.events.CreatingProcess(k.cpu.Clock(), newPID)
	k.procs.setPriority(newPID, 0)
	k.procs.SetState(newPID, Ready)
	k.activeProcesses++
	k.ready[0].Enqueue(newPID)
	// Current process continues; no reschedule.
}

func (k *Kernel) handleEnd() {
	pid := k.cpu.CurrentPID()
	k.chargeCPU(pid)
	k.procs.SetState(pid, Uninitialized)
	k.procs.resetForExit(pid)
	k.activeProcesses--

	k.events.ProcessExits(k.cpu.Clock(), pid, k.procs.TotalCPUTime(pid))

	k.quantumStart = k.cpu.Clock()
	k.schedule(NumPriorityLevels - 1)
}

func (k *Kernel) handleSemaphoreOp() {
	sem := int(k.cpu.R2())
	k.checkSemaphore(sem)
	if k.cpu.R3() != 0 {
		k.semaphoreUp(sem)
	} else {
		k.semaphoreDown(sem)
	}
}

// semaphoreUp implements spec.md §4.3 up(sem): the event line is
// always printed (the original prints before inspecting state), then
// either a waiter is released into the ready pool at its own
// priority, or the count is incremented. The released waiter is not
// credited CPU time and does not run immediately — it just becomes
// runnable, same as any other ready process.
func (k *Kernel) semaphoreUp(sem int) {
	pid := k.cpu.CurrentPID()
	k.events.SemaphoreUp(k.cpu.Clock(), pid, sem)

	s := &k.sems.entries[sem]
	if s.value == 0 && !s.waiters.Empty() {
		waiter, _ := s.waiters.Dequeue()
		k.procs.SetState(waiter, Ready)
		k.ready[k.procs.Priority(waiter)].Enqueue(waiter)
	} else {
		s.value++
	}
}

// semaphoreDown implements spec.md §4.3 down(sem).
func (k *Kernel) semaphoreDown(sem int) {
	pid := k.cpu.CurrentPID()
	k.events.SemaphoreDown(k.cpu.Clock(), pid, sem)

	s := &k.sems.entries[sem]
	if s.value > 0 {
		s.value--
		return
	}

	k.procs.SetState(pid, Blocked)
	s.waiters.Enqueue(pid)
	if k.earlyBlock() {
		k.procs.BumpPriority(pid)
	}
	k.chargeCPU(pid)
	k.schedule(NumPriorityLevels - 1)
}
