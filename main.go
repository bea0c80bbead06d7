// Arbeitszeit computes the end of the working day and counts down to it.
package main

import (
	"os"

	"github.com/manav03panchal/arbeitszeit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
