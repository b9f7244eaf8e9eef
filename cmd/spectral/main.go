// Command spectral is a small demonstration binary for the power-iteration
// library: the same algorithm, run over every backend, with wall-clock
// timings printed side by side.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spectral",
	Short: "Dominant eigenpair estimation over interchangeable backends",
	Long: `spectral demonstrates the power method for dominant eigenvalue and
eigenvector estimation. The iteration is written once against small
Operator/Vector interfaces; subcommands run it over the sequential and the
goroutine-partitioned backend and report the results and timings.`,
}

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
