package exec

import (
	"errors"
	"testing"

	"github.com/joshuapare/qirkit/pkg/result"
	"github.com/joshuapare/qirkit/qir/alloc"
	"github.com/joshuapare/qirkit/qir/rt"
)

// captureSink records every published frame.
type captureSink struct {
	frames []result.Vector
}

func (c *captureSink) Write(v *result.Vector) error {
	c.frames = append(c.frames, *v)
	return nil
}

// countingProgram produces a frame whose payload slots carry the iteration
// number, using a fresh (non-pooled) buffer per run. The previous run's
// buffer is released only after the driver has consumed it, at the start of
// the next run.
type countingProgram struct {
	runs int32
	prev alloc.Handle
}

func (p *countingProgram) Run(r *rt.Runtime) (alloc.Handle, error) {
	if p.prev != 0 {
		r.ArrayUnreference(p.prev)
	}
	p.runs++
	h, err := r.ArrayCreate1D(4, 32) // 128 bytes, generic path
	if err != nil {
		return 0, err
	}
	for i := 1; i < result.Slots; i++ {
		if err := r.SetInt32At(h, i, p.runs*100+int32(i)); err != nil {
			return 0, err
		}
	}
	p.prev = h
	return h, nil
}

// programFunc adapts a func to Program.
type programFunc func(r *rt.Runtime) (alloc.Handle, error)

func (f programFunc) Run(r *rt.Runtime) (alloc.Handle, error) { return f(r) }

func TestDriverPublishesFrames(t *testing.T) {
	sink := &captureSink{}
	d := New(rt.New(alloc.New()), &countingProgram{}, WithSink(sink))

	if err := d.Run(3); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.frames) != 3 {
		t.Fatalf("published frames: got %d, want 3", len(sink.frames))
	}
	for i, frame := range sink.frames {
		if frame[0] != int32(i+1) {
			t.Fatalf("frame %d slot 0: got %d, want %d", i, frame[0], i+1)
		}
		if frame[1] != 100*int32(i+1)+1 {
			t.Fatalf("frame %d slot 1: got %d", i, frame[1])
		}
	}
}

func TestDriverRecordsExhaustionSentinel(t *testing.T) {
	// A leaky program: never releases, so a 3-slot table exhausts quickly.
	leaky := programFunc(func(r *rt.Runtime) (alloc.Handle, error) {
		h, err := r.ArrayCreate1D(4, 32)
		if err != nil {
			return 0, err
		}
		for i := 1; i < result.Slots; i++ {
			if err := r.SetInt32At(h, i, 1); err != nil {
				return 0, err
			}
		}
		return h, nil
	})

	sink := &captureSink{}
	tab := alloc.New(alloc.WithSlots(3), alloc.WithPool(0, 0))
	d := New(rt.New(tab), leaky, WithSink(sink))

	err := d.Run(0) // run until fatal
	if !errors.Is(err, alloc.ErrTableFull) {
		t.Fatalf("expected ErrTableFull, got %v", err)
	}
	final := sink.frames[len(sink.frames)-1]
	if final.Status() != result.CodeTableFull {
		t.Fatalf("final frame status: got %d, want %d", final.Status(), result.CodeTableFull)
	}
	if ExitCode(err) != 2 {
		t.Fatalf("exit code: got %d, want 2", ExitCode(err))
	}
}

func TestDriverRecordsLookupSentinel(t *testing.T) {
	bogus := programFunc(func(r *rt.Runtime) (alloc.Handle, error) {
		// Hand back a handle that was never allocated.
		return 0xdead, nil
	})

	sink := &captureSink{}
	d := New(rt.New(alloc.New()), bogus, WithSink(sink))

	err := d.Run(1)
	if !errors.Is(err, alloc.ErrHandleNotFound) {
		t.Fatalf("expected ErrHandleNotFound, got %v", err)
	}
	final := sink.frames[len(sink.frames)-1]
	if final.Status() != result.CodeHandleNotFound {
		t.Fatalf("final frame status: got %d, want %d", final.Status(), result.CodeHandleNotFound)
	}
	if ExitCode(err) != 1 {
		t.Fatalf("exit code: got %d, want 1", ExitCode(err))
	}
}

func TestDriverWithoutSink(t *testing.T) {
	d := New(rt.New(alloc.New()), &countingProgram{})
	if err := d.Run(2); err != nil {
		t.Fatalf("Run: %v", err)
	}
	v := d.Vector()
	if v[0] != 2 {
		t.Fatalf("final loop counter: got %d, want 2", v[0])
	}
}

func TestExitCodeForCleanRun(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatal("nil error should exit 0")
	}
}
