package mmu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writeBackRecord struct {
	frame uint32
	r, m  bool
}

func newRecordingTLB(size int) (*TLB, *[]writeBackRecord) {
	var records []writeBackRecord
	tlb := NewTLB(size, func(frame uint32, r, m bool) {
		records = append(records, writeBackRecord{frame, r, m})
	})
	return tlb, &records
}

func TestTLBMissThenHit(t *testing.T) {
	tlb, _ := newRecordingTLB(2)

	_, ok := tlb.Lookup(1, Load)
	assert.False(t, ok)

	tlb.Insert(1, 10, false, false)
	frame, ok := tlb.Lookup(1, Load)
	require.True(t, ok)
	assert.Equal(t, uint32(10), frame)
}

func TestTLBLookupSetsRAndStoreSetsM(t *testing.T) {
	tlb, records := newRecordingTLB(1)
	tlb.Insert(1, 10, false, false)

	_, ok := tlb.Lookup(1, Store)
	require.True(t, ok)

	// Evict by inserting a second mapping into the single-entry TLB;
	// the write-back should reflect the R/M bits Lookup just set.
	tlb.Insert(2, 20, false, false)
	require.Len(t, *records, 1)
	assert.True(t, (*records)[0].r)
	assert.True(t, (*records)[0].m)
}

func TestTLBClockHandPrefersClearRBitOverEviction(t *testing.T) {
	tlb, _ := newRecordingTLB(2)
	tlb.Insert(1, 10, true, false)  // R set, won't be chosen first
	tlb.Insert(2, 20, false, false) // R clear, fills the other slot

	// Both slots full; the hand should pick the entry whose R bit is
	// clear (entry for vpage 2) rather than evicting vpage 1.
	tlb.Insert(3, 30, false, false)

	_, ok := tlb.Lookup(1, Load)
	assert.True(t, ok, "vpage 1 (R bit set) should survive the eviction")
	_, ok = tlb.Lookup(2, Load)
	assert.False(t, ok, "vpage 2 (R bit clear) should have been evicted")
}

func TestTLBClearEntryInvalidatesWithoutWriteBack(t *testing.T) {
	tlb, records := newRecordingTLB(2)
	tlb.Insert(1, 10, true, true)
	tlb.ClearEntry(1)

	_, ok := tlb.Lookup(1, Load)
	assert.False(t, ok)
	assert.Empty(t, *records, "ClearEntry must not write back R/M bits")
}

func TestTLBWriteBackRMFlushesWithoutInvalidating(t *testing.T) {
	tlb, records := newRecordingTLB(1)
	tlb.Insert(1, 10, true, true)

	tlb.WriteBackRM()
	require.Len(t, *records, 1)
	assert.Equal(t, uint32(10), (*records)[0].frame)

	_, ok := tlb.Lookup(1, Load)
	assert.True(t, ok, "WriteBackRM preserves the TLB entry")
}

func TestTLBSnapshotReflectsInsertOrder(t *testing.T) {
	tlb, _ := newRecordingTLB(2)
	tlb.Insert(1, 10, true, false)
	tlb.Insert(2, 20, false, true)

	want := []Entry{
		{Valid: true, VPage: 1, Frame: 10, R: true, M: false},
		{Valid: true, VPage: 2, Frame: 20, R: false, M: true},
	}
	if diff := cmp.Diff(want, tlb.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestTLBClearAllRClearsReferenceBitsOnly(t *testing.T) {
	tlb, _ := newRecordingTLB(1)
	tlb.Insert(1, 10, true, true)
	tlb.ClearAllR()

	assert.False(t, tlb.entries[0].r)
	assert.True(t, tlb.entries[0].m)
	assert.True(t, tlb.entries[0].valid)
}
