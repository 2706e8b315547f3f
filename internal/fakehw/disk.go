package fakehw

import (
	"github.com/rs/zerolog"

	kernel "github.com/grishinoleg/cs202"
)

// DiskRequest is one recorded call to the fake disk controller.
type DiskRequest struct {
	PID   kernel.PID
	Block uint32
	Write bool
}

// Disk is a reference kernel.DiskController: it just records
// requests for a test to inspect and complete on its own schedule by
// calling CPU.FireDiskInterrupt.
type Disk struct {
	log      zerolog.Logger
	Requests []DiskRequest
}

// NewDisk returns a Disk with no recorded requests.
func NewDisk(log zerolog.Logger) *Disk {
	return &Disk{log: log}
}

func (d *Disk) ReadReq(pid kernel.PID, block uint32) {
	d.log.Debug().Int32("pid", int32(pid)).Uint32("block", block).Msg("disk read req")
	d.Requests = append(d.Requests, DiskRequest{PID: pid, Block: block})
}

func (d *Disk) WriteReq(pid kernel.PID) {
	d.log.Debug().Int32("pid", int32(pid)).Msg("disk write req")
	d.Requests = append(d.Requests, DiskRequest{PID: pid, Write: true})
}
