package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	kernel "github.com/grishinoleg/cs202"
	"github.com/grishinoleg/cs202/internal/fakehw"
)

func newRunCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run SCENARIO.toml",
		Short: "Drive a scheduler scenario against the reference fake hardware",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scn := mustLoadScenario(args[0])
			return runScenario(scn, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit diagnostic logging alongside the event trace")
	return cmd
}

func runScenario(scn Scenario, verbose bool) error {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	diag := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cpu := fakehw.NewCPU(diag)
	disk := fakehw.NewDisk(diag)
	kb := fakehw.NewKeyboard(diag)

	cfg := kernel.DefaultConfig()
	if scn.MaxProcesses > 0 {
		cfg.MaxProcesses = scn.MaxProcesses
	}
	if scn.IdlePID != 0 {
		cfg.IdlePID = kernel.PID(scn.IdlePID)
	}
	if scn.NumSemaphores > 0 {
		cfg.NumSemaphores = scn.NumSemaphores
	}
	if scn.InitialSemaphoreValue > 0 {
		cfg.InitialSemaphoreValue = scn.InitialSemaphoreValue
	}
	cfg.Events = os.Stdout
	cfg.Diag = diag

	k := kernel.NewKernel(cfg)
	k.InitializeKernel(cpu, disk, kb)

	for _, ev := range scn.Events {
		if cpu.Clock() < ev.AtTick {
			cpu.Advance(ev.AtTick - cpu.Clock())
		}
		switch ev.Kind {
		case "trap":
			cpu.SetCurrentPID(kernel.PID(ev.PID))
			cpu.Trap(ev.R1, ev.R2, ev.R3)
		case "clock_interrupt":
			cpu.FireClockInterrupt()
		case "disk_interrupt":
			cpu.FireDiskInterrupt(kernel.PID(ev.PID))
		case "keyboard_interrupt":
			cpu.FireKeyboardInterrupt(kernel.PID(ev.PID))
		default:
			return fmt.Errorf("unknown event kind %q at tick %d", ev.Kind, ev.AtTick)
		}
		if k.Terminated() {
			break
		}
	}
	return nil
}
