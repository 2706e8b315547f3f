package mmu

import "github.com/rs/zerolog"

// PageFaultNotifier is the external collaborator the MMU traps into
// on a genuine page fault (TLB miss and page-table miss): a hardware
// façade or a test fake that schedules the OS-side fault handler.
// The MMU itself never resolves a fault — it only reports one.
type PageFaultNotifier interface {
	IssuePageFaultTrap(vpage VPage)
}

// Config sizes an MMU instance (§4.10).
type Config struct {
	NumFrames    int
	TLBEntries   int
	PageFaultLog zerolog.Logger
}

// MMU ties together the R/M/present bitmaps, the two-level page
// table, and the TLB behind a single Translate entry point (§4.10).
type MMU struct {
	cfg    Config
	notify PageFaultNotifier

	rbits     *Bitmap
	mbits     *Bitmap
	frameUsed *Bitmap
	pt        *PageTable
	tlb       *TLB

	tlbMissCount uint64
}

// NewMMU allocates an MMU's bitmaps, page table, and TLB per cfg and
// wires notify as its page-fault collaborator (§4.10's
// mmu_initialize). notify must not be nil.
func NewMMU(cfg Config, notify PageFaultNotifier) *MMU {
	m := &MMU{
		cfg:       cfg,
		notify:    notify,
		rbits:     NewBitmap(cfg.NumFrames),
		mbits:     NewBitmap(cfg.NumFrames),
		frameUsed: NewBitmap(cfg.NumFrames),
		pt:        NewPageTable(),
	}
	m.tlb = NewTLB(cfg.TLBEntries, m.writeBackFrame)
	return m
}

func (m *MMU) writeBackFrame(frame uint32, r, m2 bool) {
	m.rbits.Set(int(frame), r)
	m.mbits.Set(int(frame), m2)
}

// Translate implements §4.10's mmu_translate: resolve vaddress for
// op, consulting the TLB first, then the page table on a miss,
// trapping to the OS on a page fault. A faulting translation returns
// (0, false); the caller must not use the zero value as an address.
func (m *MMU) Translate(vaddress uint32, op Operation) (uint32, bool) {
	vpage := VPage(vaddress >> PageOffsetBits)
	offset := vaddress & (PageSize - 1)

	if frame, ok := m.tlb.Lookup(vpage, op); ok {
		return (frame << PageOffsetBits) | offset, true
	}

	m.tlbMissCount++
	frame, ok := m.pt.GetFrame(vpage)
	if !ok {
		m.tlb.WriteBackRM()
		m.cfg.PageFaultLog.Debug().Uint32("vpage", uint32(vpage)).Msg("page fault")
		m.notify.IssuePageFaultTrap(vpage)
		return 0, false
	}

	m.tlb.Insert(vpage, frame, m.rbits.Get(int(frame)), m.mbits.Get(int(frame)))
	return (frame << PageOffsetBits) | offset, true
}

// GetFreePageFrame returns a frame not currently occupied and marks
// it occupied, or (0, false) if memory is full (§4.10's
// mmu_get_free_page_frame). Called by the OS's fault handler, not by
// Translate itself.
func (m *MMU) GetFreePageFrame() (uint32, bool) {
	frame, ok := m.frameUsed.FirstClear()
	if !ok {
		return 0, false
	}
	m.frameUsed.Set(frame, true)
	return uint32(frame), true
}

// ReleasePageFrame marks frame free again and clears its R/M bits,
// for a fault handler implementing an eviction policy on top of this
// MMU.
func (m *MMU) ReleasePageFrame(frame uint32) {
	m.frameUsed.Set(int(frame), false)
	m.rbits.Set(int(frame), false)
	m.mbits.Set(int(frame), false)
}

// MapPage installs vpage->frame in the page table (§4.8's
// pt_update_pagetable, invoked by the OS fault handler once it has
// chosen a frame).
func (m *MMU) MapPage(vpage VPage, frame uint32) {
	m.pt.Update(vpage, frame)
}

// UnmapPage clears vpage's page-table entry and any cached TLB
// mapping, called when frame is evicted from memory.
func (m *MMU) UnmapPage(vpage VPage) {
	m.pt.ClearEntry(vpage)
	m.tlb.ClearEntry(vpage)
}

// ClearReferenceBits implements §4.9's periodic R-bit aging: clear
// every frame's R bit and every TLB entry's cached R bit.
func (m *MMU) ClearReferenceBits() {
	m.rbits.ClearAll()
	m.tlb.ClearAllR()
}

// TLBMissCount reports the lifetime count of TLB misses, for tests
// and diagnostics.
func (m *MMU) TLBMissCount() uint64 {
	return m.tlbMissCount
}

// RBit reports frame's reference bit, for an OS-side eviction policy
// choosing among candidate frames on NO_FREE_PAGEFRAME.
func (m *MMU) RBit(frame uint32) bool {
	return m.rbits.Get(int(frame))
}

// MBit reports frame's modified bit.
func (m *MMU) MBit(frame uint32) bool {
	return m.mbits.Get(int(frame))
}

// Present reports whether frame is currently allocated to a page.
func (m *MMU) Present(frame uint32) bool {
	return m.frameUsed.Get(int(frame))
}
