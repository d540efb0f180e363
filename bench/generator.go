// Package bench drives the differential harness: it derives randomized
// scenarios from a guarded window, recomputes ground truth for each one,
// runs every registered scanner inside a fault boundary, and ranks the
// field by failures first and ticks second.
package bench

import (
	"github.com/mhr3/sigbench/internal/config"
	"github.com/mhr3/sigbench/internal/mt"
	"github.com/mhr3/sigbench/scan"
)

// Scenario is one randomized test case: a jittered view into the region
// window, a masked pattern stamped into it, and the oracle's ground truth
// for whatever bytes ended up there.
type Scenario struct {
	Window   []byte
	Jitter   int
	Pattern  scan.Pattern
	Stamped  []int // offsets the generator wrote to, diagnostic only
	Expected []int // recomputed ground truth, never derived from Stamped
}

// Generator derives scenarios from a window. All randomness flows through
// the one seeded source in a fixed draw order, so the whole scenario
// sequence replays from the logged seed alone.
type Generator struct {
	full []byte
	rng  *mt.Source
	cfg  config.Config
}

// NewGenerator returns a generator over window. The config must have been
// validated: the window is assumed to fit the longest pattern even at
// maximum jitter.
func NewGenerator(window []byte, rng *mt.Source, cfg config.Config) *Generator {
	return &Generator{full: window, rng: rng, cfg: cfg}
}

// Next produces one scenario. The window start is advanced by a random
// jitter so scanners see unaligned data, a masked pattern is drawn, and
// 2-10 occurrences (per config) are stamped in by overwriting fixed
// positions only. Stamps may overlap and disturb each other, and stray
// window bytes may line up with the pattern by accident, so Expected is
// always the oracle's answer for the final window content.
func (g *Generator) Next() Scenario {
	jitter := int(g.rng.Range(0, uint32(g.cfg.JitterMax)))
	window := g.full[jitter:]

	p := g.pattern()

	count := int(g.rng.Range(uint32(g.cfg.OccMin), uint32(g.cfg.OccMax)))
	stamped := make([]int, count)
	for i := range stamped {
		off := int(g.rng.Range(0, uint32(len(window)-p.Len())))
		for j := 0; j < p.Len(); j++ {
			if p.Fixed(j) {
				window[off+j] = p.Bytes[j]
			}
		}
		stamped[i] = off
	}

	return Scenario{
		Window:   window,
		Jitter:   jitter,
		Pattern:  p,
		Stamped:  stamped,
		Expected: scan.FindAll(window, p),
	}
}

// pattern draws one masked pattern. The length is drawn once; the mask and
// bytes are redrawn until at least one position comes out fixed, so an
// all-wildcard pattern never escapes. Wildcard bytes are stored as zero.
func (g *Generator) pattern() scan.Pattern {
	length := int(g.rng.Range(uint32(g.cfg.PatternMin), uint32(g.cfg.PatternMax)))
	for {
		p := scan.Pattern{
			Bytes: make([]byte, length),
			Mask:  make([]byte, length),
		}
		fixed := false
		for i := 0; i < length; i++ {
			if g.rng.Float64() < g.cfg.FixedProb {
				p.Bytes[i] = byte(g.rng.Range(0, 255))
				p.Mask[i] = scan.MaskFixed
				fixed = true
			} else {
				p.Mask[i] = scan.MaskAny
			}
		}
		if fixed {
			return p
		}
	}
}
