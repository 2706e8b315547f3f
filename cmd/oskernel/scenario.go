package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Scenario is the TOML shape of a demo run: kernel sizing plus an
// ordered list of hardware events to play against it.
type Scenario struct {
	MaxProcesses          int `toml:"max_processes"`
	IdlePID               int `toml:"idle_pid"`
	NumSemaphores         int `toml:"num_semaphores"`
	InitialSemaphoreValue int `toml:"initial_semaphore_value"`

	Events []ScenarioEvent `toml:"event"`
}

// ScenarioEvent is one line of a scenario's event table. Kind selects
// which CPU action fires; the remaining fields are interpreted
// according to kind (see cmd/oskernel's README-equivalent: run.go's
// dispatch switch is the authoritative mapping).
type ScenarioEvent struct {
	AtTick uint64 `toml:"at_tick"`
	Kind   string `toml:"kind"` // trap, clock_interrupt, disk_interrupt, keyboard_interrupt
	PID    int32  `toml:"pid"`
	R1     uint32 `toml:"r1"`
	R2     uint32 `toml:"r2"`
	R3     uint32 `toml:"r3"`
}

// LoadScenario decodes a scenario file from path.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return s, nil
}

func mustLoadScenario(path string) Scenario {
	s, err := LoadScenario(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return s
}
