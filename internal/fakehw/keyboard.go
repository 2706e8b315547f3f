package fakehw

import (
	"github.com/rs/zerolog"

	kernel "github.com/grishinoleg/cs202"
)

// Keyboard is a reference kernel.KeyboardController, the keyboard
// twin of Disk.
type Keyboard struct {
	log      zerolog.Logger
	Requests []kernel.PID
}

// NewKeyboard returns a Keyboard with no recorded requests.
func NewKeyboard(log zerolog.Logger) *Keyboard {
	return &Keyboard{log: log}
}

func (k *Keyboard) ReadReq(pid kernel.PID) {
	k.log.Debug().Int32("pid", int32(pid)).Msg("keyboard read req")
	k.Requests = append(k.Requests, pid)
}
