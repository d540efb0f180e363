// Package mt supplies every random draw the harness makes. A single 32-bit
// seed is expanded through a minimal-standard linear congruential generator
// into the full 624-word state of a 32-bit Mersenne Twister, so one small
// logged number reproduces an entire run.
package mt

import (
	crand "crypto/rand"
	"encoding/binary"
)

const (
	stateLen  = 624
	stateMid  = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Resolve returns seed unchanged when nonzero, otherwise draws a fresh
// nonzero value from the system entropy source. The result is what a run
// logs for replay.
func Resolve(seed uint32) uint32 {
	var b [4]byte
	for seed == 0 {
		if _, err := crand.Read(b[:]); err != nil {
			panic("entropy source unavailable: " + err.Error())
		}
		seed = binary.LittleEndian.Uint32(b[:])
	}
	return seed
}

// Source is a 32-bit Mersenne Twister seeded through key expansion.
// Not safe for concurrent use.
type Source struct {
	state [stateLen]uint32
	index int
}

// New expands seed into a ready Source. A zero seed is resolved from
// entropy first; call Resolve beforehand if the chosen seed must be logged.
func New(seed uint32) *Source {
	key := expand(Resolve(seed))
	s := new(Source)
	s.seedArray(key[:])
	return s
}

// expand drives the minimal-standard LCG (x' = x*16807 mod 2^31-1) to
// produce one key word per state word. A 32-bit seed is too small to seed
// the twister state directly without leaving most of it poorly mixed.
func expand(seed uint32) [stateLen]uint32 {
	const m = 1<<31 - 1
	x := uint64(seed) % m
	if x == 0 {
		x = 1
	}
	var key [stateLen]uint32
	for i := range key {
		x = x * 16807 % m
		key[i] = uint32(x)
	}
	return key
}

// seed runs the classic single-word state initialization.
func (s *Source) seed(v uint32) {
	s.state[0] = v
	for i := uint32(1); i < stateLen; i++ {
		s.state[i] = 1812433253*(s.state[i-1]^(s.state[i-1]>>30)) + i
	}
	s.index = stateLen
}

// seedArray mixes a key of arbitrary length into the state, following the
// reference array-initialization of MT19937.
func (s *Source) seedArray(key []uint32) {
	s.seed(19650218)
	i, j := 1, 0
	k := stateLen
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		s.state[i] = (s.state[i] ^ ((s.state[i-1] ^ (s.state[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateLen {
			s.state[0] = s.state[stateLen-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = stateLen - 1; k > 0; k-- {
		s.state[i] = (s.state[i] ^ ((s.state[i-1] ^ (s.state[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= stateLen {
			s.state[0] = s.state[stateLen-1]
			i = 1
		}
	}
	s.state[0] = 0x80000000
}

// Uint32 returns the next word of the stream.
func (s *Source) Uint32() uint32 {
	if s.index >= stateLen {
		s.twist()
	}
	y := s.state[s.index]
	s.index++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (s *Source) twist() {
	for i := 0; i < stateLen; i++ {
		y := s.state[i]&upperMask | s.state[(i+1)%stateLen]&lowerMask
		next := s.state[(i+stateMid)%stateLen] ^ y>>1
		if y&1 != 0 {
			next ^= matrixA
		}
		s.state[i] = next
	}
	s.index = 0
}

// Range returns a uniform draw from [lo, hi], both bounds inclusive, so
// Range(0, 255) yields a full byte. Rejection removes the modulo bias.
func (s *Source) Range(lo, hi uint32) uint32 {
	if lo > hi {
		panic("inverted range")
	}
	n := hi - lo + 1
	if n == 0 {
		// hi-lo spans the whole 32-bit space
		return s.Uint32()
	}
	limit := -n % n
	for {
		if v := s.Uint32(); v >= limit {
			return lo + v%n
		}
	}
}

// Float64 returns a draw from [0, 1) with 32 bits of resolution, enough
// for the coin flips the generator makes.
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// Read fills p with stream bytes, four per word, little-endian. It
// implements io.Reader and never fails.
func (s *Source) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, s.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		w := s.Uint32()
		for i := range p {
			p[i] = byte(w >> (8 * i))
		}
	}
	return n, nil
}
