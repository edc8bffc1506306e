package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/qirkit/qir/exec"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "qirtctl",
	Short: "Run and inspect quantum-circuit programs on the runtime substrate",
	Long: `qirtctl hosts compiled quantum-circuit programs on the runtime
substrate: a fixed-capacity, reference-counted buffer table with a rotating
pool for the hot result size. It runs the built-in QRNG program, publishes
each result frame to a harness-shared vector file, and decodes vector files
for inspection.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// The target's exit convention: 2 for table exhaustion, 1 otherwise.
		os.Exit(exec.ExitCode(err))
	}
}

func main() { execute() }

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
