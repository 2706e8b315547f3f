package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessTablePriorityClamping(t *testing.T) {
	pt := NewProcessTable(4)

	for i := 0; i < NumPriorityLevels+2; i++ {
		pt.BumpPriority(1)
	}
	assert.Equal(t, NumPriorityLevels-1, pt.Priority(1))

	for i := 0; i < NumPriorityLevels+2; i++ {
		pt.DropPriority(1)
	}
	assert.Equal(t, 0, pt.Priority(1))
}

func TestProcessTableAddCPUAccumulates(t *testing.T) {
	pt := NewProcessTable(2)
	pt.AddCPU(0, 10)
	pt.AddCPU(0, 15)
	assert.Equal(t, uint64(25), pt.TotalCPUTime(0))
}

func TestResetForExitPreservesTotalCPUTime(t *testing.T) {
	pt := NewProcessTable(2)
	pt.AddCPU(0, 40)
	pt.setPriority(0, 3)

	pt.resetForExit(0)

	assert.Equal(t, 0, pt.Priority(0), "priority resets to 0 on exit")
	assert.Equal(t, uint64(40), pt.TotalCPUTime(0), "total CPU time is never reset, matching the original's accounting")
}
