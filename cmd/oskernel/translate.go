package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grishinoleg/cs202/internal/fakehw"
	"github.com/grishinoleg/cs202/mmu"
)

func newTranslateCommand() *cobra.Command {
	var numFrames, tlbEntries int

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Map a handful of pages and translate a scripted sequence of addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslateDemo(numFrames, tlbEntries)
		},
	}
	cmd.Flags().IntVar(&numFrames, "frames", 8, "number of physical page frames")
	cmd.Flags().IntVar(&tlbEntries, "tlb-entries", 4, "number of TLB entries")
	return cmd
}

func runTranslateDemo(numFrames, tlbEntries int) error {
	notifier := fakehw.NewFaultNotifier(zerolog.Nop())
	m := mmu.NewMMU(mmu.Config{NumFrames: numFrames, TLBEntries: tlbEntries, PageFaultLog: zerolog.Nop()}, notifier)

	notifier.Handler = func(vpage mmu.VPage) {
		frame, ok := m.GetFreePageFrame()
		if !ok {
			fmt.Printf("vpage %d: page fault, memory full\n", vpage)
			return
		}
		m.MapPage(vpage, frame)
		fmt.Printf("vpage %d: page fault resolved, mapped to frame %d\n", vpage, frame)
	}

	for page := uint32(0); page < 3; page++ {
		addr := page << mmu.PageOffsetBits
		if phys, ok := m.Translate(addr, mmu.Load); ok {
			fmt.Printf("addr 0x%08x -> phys 0x%08x (hit)\n", addr, phys)
		}
		// Re-translate: the fault handler above has now mapped the page.
		if phys, ok := m.Translate(addr, mmu.Load); ok {
			fmt.Printf("addr 0x%08x -> phys 0x%08x (resolved)\n", addr, phys)
		}
	}
	fmt.Printf("tlb misses: %d\n", m.TLBMissCount())
	return nil
}
