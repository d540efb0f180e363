package bench

import (
	"bytes"
	"slices"
	"testing"

	"github.com/mhr3/sigbench/internal/config"
	"github.com/mhr3/sigbench/internal/mt"
	"github.com/mhr3/sigbench/scan"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.RegionSize = 4096
	cfg.Scenarios = 50
	return cfg
}

// newTestGenerator builds a generator over a randomly filled window, the
// same way the harness does: one source fills the window and then drives
// generation.
func newTestGenerator(seed uint32, cfg config.Config) *Generator {
	rng := mt.New(seed)
	window := make([]byte, cfg.RegionSize)
	rng.Read(window)
	return NewGenerator(window, rng, cfg)
}

func TestGeneratorBounds(t *testing.T) {
	cfg := testConfig()
	gen := newTestGenerator(7, cfg)

	jitters := make(map[int]bool)
	for i := 0; i < 200; i++ {
		sc := gen.Next()

		if sc.Jitter < 0 || sc.Jitter > cfg.JitterMax {
			t.Fatalf("scenario %d: jitter %d outside [0, %d]", i, sc.Jitter, cfg.JitterMax)
		}
		jitters[sc.Jitter] = true
		if len(sc.Window) != cfg.RegionSize-sc.Jitter {
			t.Fatalf("scenario %d: window size %d with jitter %d", i, len(sc.Window), sc.Jitter)
		}

		n := sc.Pattern.Len()
		if n < cfg.PatternMin || n > cfg.PatternMax {
			t.Fatalf("scenario %d: pattern length %d outside [%d, %d]",
				i, n, cfg.PatternMin, cfg.PatternMax)
		}
		if !sc.Pattern.Valid() {
			t.Fatalf("scenario %d: invalid pattern %v", i, sc.Pattern)
		}

		if c := len(sc.Stamped); c < cfg.OccMin || c > cfg.OccMax {
			t.Fatalf("scenario %d: %d stamps outside [%d, %d]", i, c, cfg.OccMin, cfg.OccMax)
		}
		for _, off := range sc.Stamped {
			if off < 0 || off > len(sc.Window)-n {
				t.Fatalf("scenario %d: stamp offset %d cannot fit %d bytes in %d",
					i, off, n, len(sc.Window))
			}
		}
	}

	if len(jitters) < 5 {
		t.Errorf("only %d distinct jitters over 200 scenarios", len(jitters))
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := testConfig()
	const seed = 0xDECAF

	run := func() []Scenario {
		gen := newTestGenerator(seed, cfg)
		out := make([]Scenario, cfg.Scenarios)
		for i := range out {
			out[i] = gen.Next()
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i].Jitter != b[i].Jitter {
			t.Fatalf("scenario %d: jitter %d vs %d", i, a[i].Jitter, b[i].Jitter)
		}
		if !bytes.Equal(a[i].Pattern.Bytes, b[i].Pattern.Bytes) ||
			!bytes.Equal(a[i].Pattern.Mask, b[i].Pattern.Mask) {
			t.Fatalf("scenario %d: pattern diverged: %v vs %v", i, a[i].Pattern, b[i].Pattern)
		}
		if !slices.Equal(a[i].Stamped, b[i].Stamped) {
			t.Fatalf("scenario %d: stamps diverged: %v vs %v", i, a[i].Stamped, b[i].Stamped)
		}
		if !slices.Equal(a[i].Expected, b[i].Expected) {
			t.Fatalf("scenario %d: expected sets diverged", i)
		}
		if !bytes.Equal(a[i].Window, b[i].Window) {
			t.Fatalf("scenario %d: window content diverged", i)
		}
	}
}

func TestGeneratorSeedSensitivity(t *testing.T) {
	cfg := testConfig()
	a := newTestGenerator(1, cfg).Next()
	b := newTestGenerator(2, cfg).Next()

	if a.Jitter == b.Jitter && bytes.Equal(a.Pattern.Bytes, b.Pattern.Bytes) &&
		slices.Equal(a.Stamped, b.Stamped) {
		t.Error("different seeds produced an identical first scenario")
	}
}

func TestGeneratorWildcardBytesZero(t *testing.T) {
	cfg := testConfig()
	gen := newTestGenerator(11, cfg)

	for i := 0; i < 100; i++ {
		sc := gen.Next()
		for j, b := range sc.Pattern.Bytes {
			if !sc.Pattern.Fixed(j) && b != 0 {
				t.Fatalf("scenario %d: wildcard position %d holds 0x%02X", i, j, b)
			}
		}
	}
}

func TestGeneratorAllWildcardRejection(t *testing.T) {
	// a 1% fixed probability makes all-wildcard draws the common case, so
	// the retry loop gets a real workout
	cfg := testConfig()
	cfg.FixedProb = 0.01
	cfg.PatternMin, cfg.PatternMax = 5, 5
	gen := newTestGenerator(3, cfg)

	for i := 0; i < 300; i++ {
		sc := gen.Next()
		fixed := 0
		for j := range sc.Pattern.Mask {
			if sc.Pattern.Fixed(j) {
				fixed++
			}
		}
		if fixed == 0 {
			t.Fatalf("scenario %d: all-wildcard pattern escaped", i)
		}
	}
}

func TestGeneratorAllFixedProb(t *testing.T) {
	cfg := testConfig()
	cfg.FixedProb = 1
	gen := newTestGenerator(5, cfg)

	for i := 0; i < 50; i++ {
		sc := gen.Next()
		for j := range sc.Pattern.Mask {
			if !sc.Pattern.Fixed(j) {
				t.Fatalf("scenario %d: wildcard at %d despite probability 1", i, j)
			}
		}
	}
}

func TestGeneratorExpectedIsGroundTruth(t *testing.T) {
	cfg := testConfig()
	gen := newTestGenerator(13, cfg)

	for i := 0; i < 100; i++ {
		sc := gen.Next()

		// the final stamp is never disturbed, so it must be found
		last := sc.Stamped[len(sc.Stamped)-1]
		if !slices.Contains(sc.Expected, last) {
			t.Fatalf("scenario %d: last stamp %d missing from expected set %v",
				i, last, sc.Expected)
		}

		if !slices.IsSorted(sc.Expected) {
			t.Fatalf("scenario %d: expected set not increasing: %v", i, sc.Expected)
		}
		if !slices.Equal(sc.Expected, scan.FindAll(sc.Window, sc.Pattern)) {
			t.Fatalf("scenario %d: expected set is stale against the window", i)
		}
	}
}
