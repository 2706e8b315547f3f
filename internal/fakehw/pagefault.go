package fakehw

import (
	"github.com/rs/zerolog"

	"github.com/grishinoleg/cs202/mmu"
)

// FaultNotifier is a reference mmu.PageFaultNotifier: it records every
// faulted page and, if Handler is set, invokes it synchronously — a
// test or cmd/oskernel wires Handler to whatever OS-side fault
// resolution it wants to exercise (the two cores don't define one
// themselves).
type FaultNotifier struct {
	log     zerolog.Logger
	Faulted []mmu.VPage
	Handler func(mmu.VPage)
}

// NewFaultNotifier returns a FaultNotifier with no handler; faults
// are only recorded until one is set.
func NewFaultNotifier(log zerolog.Logger) *FaultNotifier {
	return &FaultNotifier{log: log}
}

func (f *FaultNotifier) IssuePageFaultTrap(vpage mmu.VPage) {
	f.log.Debug().Uint32("vpage", uint32(vpage)).Msg("page fault trap")
	f.Faulted = append(f.Faulted, vpage)
	if f.Handler != nil {
		f.Handler(vpage)
	}
}
