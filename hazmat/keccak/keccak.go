// Package keccak implements the Keccak-f[1600] permutation as specified in FIPS 202, Section 3.
//
// The state is held as 25 64-bit lanes. Each round is the composition of the five step mappings θ, ρ, π, χ, and ι,
// which are exported individually so each can be checked against its definition.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the size of the permutation state in bytes (1600 bits).
	Size = 200

	// Rounds is the number of rounds in Keccak-f[1600].
	Rounds = 24
)

// State is a Keccak-f[1600] state. Lane (x, y) is stored at index x+5y, and bit z of a lane is bit z of the uint64.
type State [25]uint64

// RoundConstants holds the ι constant for each round index.
var RoundConstants = roundConstants()

// RhoOffsets holds the ρ rotation amount for each lane index.
var RhoOffsets = rhoOffsets()

// LoadState decodes a 200-byte string into a state, lanes little-endian. It panics if b is not exactly Size bytes.
func LoadState(b []byte) (s State) {
	if len(b) != Size {
		panic("keccak: state must be exactly 1600 bits")
	}

	for i := range s {
		s[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return s
}

// Store encodes the state into b, lanes little-endian. It panics if b is not exactly Size bytes.
func (s *State) Store(b []byte) {
	if len(b) != Size {
		panic("keccak: state must be exactly 1600 bits")
	}

	for i, lane := range s {
		binary.LittleEndian.PutUint64(b[8*i:], lane)
	}
}

// F1600 applies the Keccak-f[1600] permutation to the state.
func F1600(state *[Size]byte) {
	P1600(state, Rounds)
}

// P1600 applies the Keccak-p[1600, n] permutation to the state, i.e. the last n rounds of Keccak-f[1600].
func P1600(state *[Size]byte, n int) {
	s := LoadState(state[:])
	PermuteRounds(&s, n)
	s.Store(state[:])
}

// Permute applies all 24 rounds of Keccak-f[1600] to s.
func Permute(s *State) {
	PermuteRounds(s, Rounds)
}

// PermuteRounds applies rounds 24-n through 23 to s. It panics if n is not in [1, 24].
func PermuteRounds(s *State, n int) {
	if n < 1 || n > Rounds {
		panic("keccak: invalid round count")
	}

	for ir := Rounds - n; ir < Rounds; ir++ {
		Theta(s)
		Rho(s)
		Pi(s)
		Chi(s)
		Iota(s, ir)
	}
}

// Theta XORs each bit with the parities of two neighboring columns.
func Theta(s *State) {
	var c [5]uint64
	for x := range 5 {
		c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
	}

	for x := range 5 {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 25; y += 5 {
			s[x+y] ^= d
		}
	}
}

// Rho rotates each lane by its offset in RhoOffsets.
func Rho(s *State) {
	for i := range s {
		s[i] = bits.RotateLeft64(s[i], RhoOffsets[i])
	}
}

// Pi rearranges the lanes: lane (x, y) receives lane (x+3y mod 5, x).
func Pi(s *State) {
	a := *s
	for x := range 5 {
		for y := range 5 {
			s[x+5*y] = a[(x+3*y)%5+5*x]
		}
	}
}

// Chi mixes each row nonlinearly: a[x] ^= ^a[x+1] & a[x+2].
func Chi(s *State) {
	for y := 0; y < 25; y += 5 {
		var row [5]uint64
		copy(row[:], s[y:y+5])
		for x := range 5 {
			s[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// Iota XORs the constant for round ir into lane (0, 0).
func Iota(s *State, ir int) {
	s[0] ^= RoundConstants[ir]
}

// rc returns bit t of the output of the LFSR with feedback polynomial x^8 + x^6 + x^5 + x^4 + 1.
func rc(t int) uint64 {
	r := uint16(1)
	for range t % 255 {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint64(r & 1)
}

func roundConstants() (rcs [Rounds]uint64) {
	for ir := range rcs {
		for j := range 7 {
			rcs[ir] |= rc(j+7*ir) << (1<<j - 1)
		}
	}
	return rcs
}

// rhoOffsets walks (x, y) -> (y, 2x+3y) from (1, 0), assigning the triangular numbers (t+1)(t+2)/2.
func rhoOffsets() (r [25]int) {
	x, y := 1, 0
	for t := range 24 {
		r[x+5*y] = (t + 1) * (t + 2) / 2 % 64
		x, y = y, (2*x+3*y)%5
	}
	return r
}
