// Package kernel implements the process scheduler and synchronization
// core of the CS202 coursework kernel: a multi-level feedback-queue
// scheduler driving processes that issue traps (fork, exit, disk I/O,
// keyboard I/O, semaphore up/down) and are preempted by clock, disk,
// and keyboard interrupts delivered by a simulated CPU.
//
// The simulated CPU, disk, and keyboard are external collaborators
// consumed through the CPU, DiskController, and KeyboardController
// interfaces. This package never constructs them; see internal/fakehw
// for a reference implementation used by tests and cmd/oskernel.
package kernel
