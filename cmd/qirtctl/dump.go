package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/qirkit/pkg/result"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <vector-file>",
		Short: "Decode and print a result vector file",
		Long: `The dump command decodes a 128-byte result vector file written by a run
(or by the target harness) and prints every slot in hex and decimal.

Example:
  qirtctl dump exe_result.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	vec, err := result.ReadVectorFile(path)
	if err != nil {
		return fmt.Errorf("failed to read vector: %w", err)
	}
	printInfo("%s", formatVector(vec))
	return nil
}

func printVector(v *result.Vector) {
	printInfo("%s", formatVector(v))
}

// formatVector renders one slot per line, status first.
func formatVector(v *result.Vector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status: %s\n", result.StatusString(v.Status()))
	for i, val := range v {
		fmt.Fprintf(&b, "%2d = %08x (%d)\n", i, uint32(val), val)
	}
	return b.String()
}
