// Package mmu implements the virtual-memory translation core: bitmap
// word-arrays tracking reference/modified/presence bits per page
// frame, a two-level sparse page table, and a software-managed TLB
// with clock-hand eviction feeding a single Translate entry point.
//
// The page-fault handler that actually resolves a fault (choosing a
// victim frame, reading from a backing store, scheduling the faulting
// process) is an external collaborator consumed through the
// PageFaultNotifier interface; this package never constructs one. See
// internal/fakehw for a reference implementation used by tests and
// cmd/oskernel.
package mmu
