package bench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"

	"github.com/mhr3/sigbench/internal/config"
	"github.com/mhr3/sigbench/internal/cycles"
	"github.com/mhr3/sigbench/internal/logging"
	"github.com/mhr3/sigbench/internal/mt"
	"github.com/mhr3/sigbench/scan"
)

// Entry accumulates one scanner's outcome across a whole run.
type Entry struct {
	Scanner  scan.Scanner
	Failures int
	Elapsed  uint64
}

// RunResult is the aggregate outcome of a run: one entry per registered
// scanner, in registration order until Rank reorders them.
type RunResult struct {
	Entries    []Entry
	Scenarios  int
	LastWindow int
	Unit       string
}

// Harness wires the generator, the scanner registry, and the tick source
// into the sequential run loop.
type Harness struct {
	Registry *scan.Registry
	Config   config.Config
	Log      *slog.Logger

	// Ticks overrides the timing source. Left nil, Run opens the best
	// source available and closes it again.
	Ticks cycles.Source
}

// New returns a harness over reg. A nil logger discards.
func New(reg *scan.Registry, cfg config.Config, log *slog.Logger) *Harness {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Harness{Registry: reg, Config: cfg, Log: log}
}

// Run executes cfg.Scenarios scenarios against every registered scanner in
// registration order. Each scan is timed whatever its outcome; a returned
// error, a recovered panic, or a wrong result set all count one failure
// for that scanner in that scenario and the run moves on. The run loop is
// pinned to one OS thread so a per-thread cycle counter stays attached to
// the work it is measuring.
func (h *Harness) Run(window []byte, rng *mt.Source) *RunResult {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ticks := h.Ticks
	if ticks == nil {
		ticks = cycles.New()
		defer ticks.Close()
	}

	gen := NewGenerator(window, rng, h.Config)
	entries := make([]Entry, 0, h.Registry.Len())
	for _, s := range h.Registry.Scanners() {
		entries = append(entries, Entry{Scanner: s})
	}

	ctx := context.Background()
	lastWindow := len(window)
	for n := 0; n < h.Config.Scenarios; n++ {
		sc := gen.Next()
		lastWindow = len(sc.Window)

		h.Log.Log(ctx, logging.LevelTrace, "scenario",
			slog.Int("n", n),
			slog.Int("jitter", sc.Jitter),
			slog.String("pattern", sc.Pattern.String()),
			slog.Int("expected", len(sc.Expected)))

		for i := range entries {
			e := &entries[i]

			start := ticks.Read()
			offs, err := runScan(e.Scanner, sc.Pattern, sc.Window)
			e.Elapsed += ticks.Read() - start

			if err != nil {
				e.Failures++
				h.Log.Debug("scan fault",
					slog.String("scanner", e.Scanner.Name()),
					slog.Int("scenario", n),
					slog.Any("error", err))
				continue
			}
			if !Matches(offs, sc.Expected) {
				e.Failures++
				h.Log.Debug("result mismatch",
					slog.String("scanner", e.Scanner.Name()),
					slog.Int("scenario", n),
					slog.Int("got", len(offs)),
					slog.Int("want", len(sc.Expected)))
			}
		}
	}

	return &RunResult{
		Entries:    entries,
		Scenarios:  h.Config.Scenarios,
		LastWindow: lastWindow,
		Unit:       ticks.Unit(),
	}
}

// runScan invokes one scanner inside the fault boundary. Panics come back
// as errors, and with panic-on-fault set a read into a guard page does
// too, so one broken scanner never takes the run down.
func runScan(s scan.Scanner, p scan.Pattern, window []byte) (offs []int, err error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if r := recover(); r != nil {
			offs, err = nil, fmt.Errorf("scanner %s panicked: %v", s.Name(), r)
		}
	}()
	return s.Scan(p, window)
}
