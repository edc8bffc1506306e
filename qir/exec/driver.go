// Package exec contains the execution driver: the loop that runs a compiled
// program against the runtime, publishes each result frame, and maps fatal
// allocator conditions to the sentinel codes the harness expects.
package exec

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/joshuapare/qirkit/pkg/result"
	"github.com/joshuapare/qirkit/qir/alloc"
	"github.com/joshuapare/qirkit/qir/rt"
)

// Program is one compiled entry point. Run produces a handle to a buffer of
// at least 32 int32 results; the driver owns nothing about the program's
// internal allocations beyond what the runtime tracks.
type Program interface {
	Run(r *rt.Runtime) (alloc.Handle, error)
}

// Sink receives each published result frame. *result.File satisfies Sink.
type Sink interface {
	Write(v *result.Vector) error
}

// Driver runs a Program in a loop, one frame per iteration. Single-threaded,
// like everything below it.
type Driver struct {
	rtm   *rt.Runtime
	prog  Program
	sink  Sink
	log   *slog.Logger
	delay time.Duration
	vec   result.Vector
}

// Option configures a Driver.
type Option func(*Driver)

// WithSink publishes each frame to s. Without a sink frames are only kept in
// the driver's vector.
func WithSink(s Sink) Option {
	return func(d *Driver) { d.sink = s }
}

// WithLogger sets the driver's logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// WithDelay pauses between iterations, mirroring the original host harness's
// one-second cadence.
func WithDelay(delay time.Duration) Option {
	return func(d *Driver) { d.delay = delay }
}

// New builds a Driver for prog over rtm.
func New(rtm *rt.Runtime, prog Program, opts ...Option) *Driver {
	d := &Driver{
		rtm:  rtm,
		prog: prog,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Vector returns the most recently published frame.
func (d *Driver) Vector() result.Vector { return d.vec }

// Run executes iterations loops of the program; iterations <= 0 runs until a
// fatal error. Each healthy iteration writes the loop counter to slot 0 and
// the program's elements 1..31 to slots 1..31, then publishes the frame.
//
// A fatal allocator condition (table full, handle not found) records its
// sentinel code in slot 0, publishes the frame, and returns the error; the
// driver boundary decides process termination, not the allocator.
func (d *Driver) Run(iterations int) error {
	for loop := 1; iterations <= 0 || loop <= iterations; loop++ {
		h, err := d.prog.Run(d.rtm)
		if err != nil {
			return d.fail(err)
		}

		d.vec[0] = int32(loop)
		for i := 1; i < result.Slots; i++ {
			v, err := d.rtm.Int32At(h, i)
			if err != nil {
				return d.fail(err)
			}
			d.vec[i] = v
		}

		if err := d.publish(); err != nil {
			return err
		}
		d.log.Debug("iteration complete", "loop", loop, "slot1", d.vec[1])

		if d.delay > 0 && (iterations <= 0 || loop < iterations) {
			time.Sleep(d.delay)
		}
	}
	return nil
}

// fail records the sentinel for known fatal conditions and publishes the
// final frame before handing the error up.
func (d *Driver) fail(err error) error {
	switch {
	case errors.Is(err, alloc.ErrTableFull):
		d.vec.SetStatus(result.CodeTableFull)
	case errors.Is(err, alloc.ErrHandleNotFound):
		d.vec.SetStatus(result.CodeHandleNotFound)
	}
	if d.vec.Failed() {
		// Best effort: the sentinel matters more than the publish error.
		_ = d.publish()
	}
	d.log.Error("run failed", "err", err, "status", d.vec.Status())
	return err
}

func (d *Driver) publish() error {
	if d.sink == nil {
		return nil
	}
	return d.sink.Write(&d.vec)
}

// ExitCode maps a Run error to the process exit code the target uses:
// 1 for a failed lookup, 2 for table exhaustion, 1 for anything else fatal.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, alloc.ErrTableFull):
		return 2
	default:
		return 1
	}
}
