package kernel

// Quantum is the CPU time budget, in simulator ticks, a RUNNING
// process is granted before clock-driven preemption (spec.md §6).
const Quantum = 40

// schedule implements spec.md §4.4: choose current_pid after any event
// that may have changed runnability, performing idle/deadlock
// detection and lazy tombstone cleanup of ready queues along the way.
//
// The original is phrased as tail recursion over from_level; this is
// the same walk expressed as a loop, since Go doesn't guarantee tail
// call elimination and from_level is bounded (5 levels) either way.
func (k *Kernel) schedule(fromLevel int) {
	if k.activeProcesses == 0 {
		k.events.NoMoreProcesses()
		k.terminate(0)
		return
	}

	for level := fromLevel; ; {
		q := k.ready[level]
		for {
			pid, ok := q.Head()
			if !ok || k.procs.State(pid) != Blocked {
				break
			}
			q.Dequeue() // discard tombstone left by a process that blocked while queued
		}

		if q.Empty() {
			if level == 0 {
				if k.ioProcesses == 0 {
					k.events.Deadlocked()
					k.terminate(0)
					return
				}
				k.cpu.SetCurrentPID(k.cfg.IdlePID)
				k.events.ProcessorIdle(k.cpu.Clock())
				return
			}
			level--
			continue
		}

		pid, _ := q.Dequeue()
		k.procs.SetState(pid, Running)
		k.cpu.SetCurrentPID(pid)
		k.events.ProcessRuns(k.cpu.Clock(), pid)
		return
	}
}

func (k *Kernel) terminate(code int) {
	k.terminated = true
	k.cfg.Terminate(code)
}
