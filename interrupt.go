package kernel

// HandleClockInterrupt implements spec.md §4.5's clock-interrupt
// handler: preempt the running process once its quantum is spent. The
// idle process is never preempted by the clock, only by I/O
// completion. Note the ordering, preserved from the original: the
// reschedule happens before quantum_start is rearmed, so the process
// that wins schedule() starts its quantum at the interrupt's clock
// value rather than whatever clock schedule() itself observes.
func (k *Kernel) HandleClockInterrupt() {
	if k.terminated {
		return
	}
	pid := k.cpu.CurrentPID()
	if pid == k.cfg.IdlePID {
		return
	}
	if k.cpu.Clock()-k.quantumStart < Quantum {
		return
	}

	k.procs.SetState(pid, Ready)
	k.chargeCPU(pid)
	k.procs.DropPriority(pid)
	k.ready[k.procs.Priority(pid)].Enqueue(pid)
	k.schedule(NumPriorityLevels - 1)
	k.quantumStart = k.cpu.Clock()
}

// HandleDiskInterrupt implements spec.md §4.5: disk I/O for pid (held
// in R1) has completed. The woken process rejoins its ready queue at
// its existing priority, unchanged by the I/O wait.
func (k *Kernel) HandleDiskInterrupt() {
	k.handleIOInterrupt(PID(k.cpu.R1()), k.events.DiskInterruptHandled)
}

// HandleKeyboardInterrupt is HandleDiskInterrupt's keyboard twin.
func (k *Kernel) HandleKeyboardInterrupt() {
	k.handleIOInterrupt(PID(k.cpu.R1()), k.events.KeyboardInterruptHandled)
}

func (k *Kernel) handleIOInterrupt(pid PID, logHandled func(uint64, PID)) {
	if k.terminated {
		return
	}
	k.checkPID(pid)
	logHandled(k.cpu.Clock(), pid)
	k.procs.SetState(pid, Ready)
	k.ioProcesses--
	k.ready[k.procs.Priority(pid)].Enqueue(pid)

	if k.cpu.CurrentPID() == k.cfg.IdlePID {
		k.quantumStart = k.cpu.Clock()
		k.schedule(NumPriorityLevels - 1)
	}
}
