package kernel_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kernel "github.com/grishinoleg/cs202"
	"github.com/grishinoleg/cs202/internal/fakehw"
)

func newTestKernel(t *testing.T, events *strings.Builder) (*kernel.Kernel, *fakehw.CPU, *fakehw.Disk, *fakehw.Keyboard) {
	t.Helper()
	cpu := fakehw.NewCPU(zerolog.Nop())
	disk := fakehw.NewDisk(zerolog.Nop())
	kb := fakehw.NewKeyboard(zerolog.Nop())

	cfg := kernel.DefaultConfig()
	cfg.MaxProcesses = 8
	cfg.Events = events

	k := kernel.NewKernel(cfg)
	k.InitializeKernel(cpu, disk, kb)
	return k, cpu, disk, kb
}

func TestForkMakesChildReadyAtPriorityZero(t *testing.T) {
	var events strings.Builder
	k, cpu, _, _ := newTestKernel(t, &events)

	cpu.Trap(uint32(kernel.ForkProgram), 1, 0)

	assert.Equal(t, kernel.Ready, k.State(1))
	assert.Equal(t, 0, k.Priority(1))
	assert.Equal(t, 2, k.ActiveProcesses())
	assert.Contains(t, events.String(), "Creating process entry for pid 1")
}

func TestEndProgramTerminatesWhenNoProcessesRemain(t *testing.T) {
	var events strings.Builder
	k, cpu, _, _ := newTestKernel(t, &events)

	cpu.Trap(uint32(kernel.EndProgram), 0, 0)

	require.True(t, k.Terminated())
	assert.Contains(t, events.String(), "-- No more processes to execute --")
}

func TestClockInterruptPreemptsAtQuantumAndDropsPriority(t *testing.T) {
	var events strings.Builder
	k, cpu, _, _ := newTestKernel(t, &events)

	// Fork a second process so the idle PID isn't the only one left
	// once pid 0 is preempted.
	cpu.SetCurrentPID(0)
	cpu.Trap(uint32(kernel.ForkProgram), 1, 0)
	require.Equal(t, kernel.Ready, k.State(1))

	cpu.Advance(kernel.Quantum)
	cpu.FireClockInterrupt()

	assert.Equal(t, kernel.Ready, k.State(0))
	assert.Equal(t, kernel.PID(1), cpu.CurrentPID())
	assert.Equal(t, kernel.Running, k.State(1))
}

func TestDiskReadBlocksAndRewardsEarlyYield(t *testing.T) {
	var events strings.Builder
	k, cpu, disk, _ := newTestKernel(t, &events)

	cpu.SetCurrentPID(0)
	cpu.Trap(uint32(kernel.ForkProgram), 1, 0)
	cpu.SetCurrentPID(1)

	cpu.Trap(uint32(kernel.DiskRead), 42, 0)

	assert.Equal(t, kernel.Blocked, k.State(1))
	assert.Equal(t, 1, k.Priority(1), "early voluntary block should bump priority")
	require.Len(t, disk.Requests, 1)
	assert.Equal(t, uint32(42), disk.Requests[0].Block)

	cpu.FireDiskInterrupt(1)
	assert.Equal(t, kernel.Running, k.State(1), "CPU was idle, so disk completion should reschedule pid 1 immediately")
}

func TestSemaphoreDownBlocksThenUpWakesWaiter(t *testing.T) {
	var events strings.Builder
	k, cpu, _, _ := newTestKernel(t, &events)

	// pid2 stays genuinely READY throughout, so pid1 blocking on the
	// semaphore doesn't leave the system with nothing runnable.
	cpu.SetCurrentPID(0)
	cpu.Trap(uint32(kernel.ForkProgram), 1, 0)
	cpu.Trap(uint32(kernel.ForkProgram), 2, 0)

	// Drain semaphore 0's initial count of 1.
	cpu.SetCurrentPID(1)
	cpu.Trap(uint32(kernel.SemaphoreOp), 0, 0)
	assert.Equal(t, kernel.Ready, k.State(1), "first down should not block, count was 1")

	// Next down blocks; pid2 should take over the CPU.
	cpu.SetCurrentPID(1)
	cpu.Trap(uint32(kernel.SemaphoreOp), 0, 0)
	assert.Equal(t, kernel.Blocked, k.State(1))
	require.False(t, k.Terminated())
	assert.Equal(t, kernel.PID(2), cpu.CurrentPID())

	cpu.SetCurrentPID(0)
	cpu.Trap(uint32(kernel.SemaphoreOp), 0, 1)
	assert.Equal(t, kernel.Ready, k.State(1), "up should wake the waiter")
}

func TestDeadlockWhenAllBlockedAndNoIOPending(t *testing.T) {
	var events strings.Builder
	k, cpu, _, _ := newTestKernel(t, &events)

	cpu.SetCurrentPID(0)
	cpu.Trap(uint32(kernel.SemaphoreOp), 0, 0) // drains initial count of 1
	cpu.SetCurrentPID(0)
	cpu.Trap(uint32(kernel.SemaphoreOp), 0, 0) // blocks pid 0 with no io in flight

	assert.True(t, k.Terminated())
	assert.Contains(t, events.String(), "DEADLOCKED SYSTEM")
}
