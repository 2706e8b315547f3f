// Package fakehw is a reference in-memory hardware façade: a fake CPU,
// disk controller, and keyboard controller wired to the kernel and
// mmu packages' interfaces. It exists for tests and the cmd/oskernel
// demo harness; neither of the two cores imports it.
package fakehw

import (
	"github.com/rs/zerolog"

	kernel "github.com/grishinoleg/cs202"
)

// CPU is a deterministic, single-threaded implementation of
// kernel.CPU. Ticks advance only when the test driver calls Advance;
// interrupts fire synchronously from whichever goroutine calls them,
// matching the real façade's synchronous delivery contract.
type CPU struct {
	clock      uint64
	currentPID kernel.PID
	r1, r2, r3 uint32

	handlers [4]func()

	log zerolog.Logger
}

// NewCPU returns a CPU with its clock at 0 and its current_pid
// register at 0.
func NewCPU(log zerolog.Logger) *CPU {
	return &CPU{log: log}
}

func (c *CPU) Clock() uint64           { return c.clock }
func (c *CPU) CurrentPID() kernel.PID  { return c.currentPID }
func (c *CPU) SetCurrentPID(p kernel.PID) { c.currentPID = p }
func (c *CPU) R1() uint32              { return c.r1 }
func (c *CPU) R2() uint32              { return c.r2 }
func (c *CPU) R3() uint32              { return c.r3 }

func (c *CPU) InstallHandler(vector kernel.InterruptVector, handler func()) {
	c.handlers[vector] = handler
}

// Advance moves the clock forward by ticks, the test driver's analog
// of real hardware time passing with no event pending.
func (c *CPU) Advance(ticks uint64) {
	c.clock += ticks
}

// Trap sets R1-R3 and invokes the installed trap handler, modeling a
// process issuing a TRAP instruction at the CPU's current clock.
func (c *CPU) Trap(r1, r2, r3 uint32) {
	c.r1, c.r2, c.r3 = r1, r2, r3
	c.log.Debug().Uint32("r1", r1).Uint32("r2", r2).Uint32("r3", r3).Msg("trap")
	c.handlers[kernel.VectorTrap]()
}

// FireClockInterrupt invokes the installed clock-interrupt handler.
func (c *CPU) FireClockInterrupt() {
	c.handlers[kernel.VectorClock]()
}

// FireDiskInterrupt sets R1 to pid and invokes the disk-interrupt
// handler, modeling the controller's completion signal.
func (c *CPU) FireDiskInterrupt(pid kernel.PID) {
	c.r1 = uint32(pid)
	c.handlers[kernel.VectorDisk]()
}

// FireKeyboardInterrupt is FireDiskInterrupt's keyboard twin.
func (c *CPU) FireKeyboardInterrupt(pid kernel.PID) {
	c.r1 = uint32(pid)
	c.handlers[kernel.VectorKeyboard]()
}
