// Command oskernel is a teaching harness for the scheduler and MMU
// cores: it is not the real simulator driver (out of scope, see
// SPEC_FULL.md §6), just a scriptable front door onto the reference
// fake hardware for demos and manual exploration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "oskernel",
		Short: "Drive the scheduler and MMU cores against reference fake hardware",
	}
	root.AddCommand(newRunCommand(), newTranslateCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
