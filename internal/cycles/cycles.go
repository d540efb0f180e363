// Package cycles provides the timestamp source behind the leaderboard:
// hardware CPU cycles where the platform exposes a counter, the monotonic
// clock otherwise.
package cycles

import "time"

// Source yields monotonically non-decreasing tick samples. Only
// differences between two Read calls are meaningful. Sources are not safe
// for concurrent use; the harness samples from a single locked thread.
type Source interface {
	Read() uint64
	// Unit names the tick unit, "cycles" or "ns".
	Unit() string
	Close() error
}

// New returns the best source available on this platform. On Linux that is
// a perf CPU-cycle counter when the kernel permits one, elsewhere (or when
// perf is unavailable) the monotonic clock.
func New() Source { return newPlatform() }

type clockSource struct {
	base time.Time
}

func newClockSource() *clockSource { return &clockSource{base: time.Now()} }

func (c *clockSource) Read() uint64 { return uint64(time.Since(c.base)) }
func (c *clockSource) Unit() string { return "ns" }
func (c *clockSource) Close() error { return nil }
