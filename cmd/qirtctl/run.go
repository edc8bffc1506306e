package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/qirkit/pkg/result"
	"github.com/joshuapare/qirkit/qir/alloc"
	"github.com/joshuapare/qirkit/qir/exec"
	"github.com/joshuapare/qirkit/qir/qrng"
	"github.com/joshuapare/qirkit/qir/rt"
)

var (
	runIterations int
	runOut        string
	runSeed       int64
	runSleep      time.Duration
	runSlots      int
	runStats      bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVarP(&runIterations, "iterations", "n", 10, "Number of iterations (0 = run until fatal)")
	cmd.Flags().StringVarP(&runOut, "out", "o", "", "Result vector file shared with the harness")
	cmd.Flags().Int64Var(&runSeed, "seed", 1, "Measurement seed (same seed reproduces a run)")
	cmd.Flags().DurationVar(&runSleep, "sleep", 0, "Pause between iterations")
	cmd.Flags().IntVar(&runSlots, "slots", alloc.DefaultSlots, "Slot table capacity")
	cmd.Flags().BoolVar(&runStats, "stats", false, "Print allocator statistics after the run")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the built-in QRNG program",
		Long: `The run command executes the built-in quantum random number generator
through the execution driver. Each iteration publishes a 32-slot result
vector; slot 0 is the loop counter, slots 1..31 the generated integers.

Example:
  qirtctl run -n 5
  qirtctl run -n 0 --out exe_result.bin --sleep 1s
  qirtctl run --seed 42 --stats -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun()
		},
	}
}

func runRun() error {
	tab := alloc.New(alloc.WithSlots(runSlots))
	runtime := rt.New(tab)
	program := qrng.New(runSeed)

	opts := []exec.Option{exec.WithDelay(runSleep)}
	if runOut != "" {
		sink, err := result.CreateFile(runOut)
		if err != nil {
			return fmt.Errorf("failed to create result file: %w", err)
		}
		defer sink.Close()
		opts = append(opts, exec.WithSink(sink))
		printVerbose("Publishing result vector to %s\n", runOut)
	}
	if verbose {
		opts = append(opts, exec.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	driver := exec.New(runtime, program, opts...)
	runErr := driver.Run(runIterations)

	vec := driver.Vector()
	printInfo("%s\n", result.StatusString(vec.Status()))
	if verbose {
		printVector(&vec)
	}
	if runStats {
		st := tab.Stats()
		printInfo("slots: %d/%d in use (%d pooled), high water %d\n",
			st.InUse, st.Capacity, st.Pooled, st.HighWater)
		printInfo("live bytes: %d, pool hits: %d\n", st.LiveBytes, st.PoolHits)
	}
	if runErr != nil {
		return fmt.Errorf("run failed: %w", runErr)
	}
	return nil
}
