// Package sponge implements the sponge construction over Keccak-p[1600] as specified in FIPS 202, Section 4, and the
// SHA-3, SHAKE, and legacy Keccak functions built on it.
//
// All variants share one algorithm and differ only in their rate, output length, and domain-separation suffix.
package sponge

import (
	"errors"
	"slices"

	"github.com/codahale/refhash/hazmat/keccak"
	"github.com/codahale/refhash/internal/mem"
)

// Width is the permutation width in bits.
const Width = 8 * keccak.Size

var (
	// ErrInvalidParameter is returned when a rate, capacity, round count, or suffix cannot be used.
	ErrInvalidParameter = errors.New("sponge: invalid parameters")

	// ErrInvalidOutputLength is returned when the requested output length is not positive.
	ErrInvalidOutputLength = errors.New("sponge: output length must be positive")
)

// Params are the parameters of a sponge instance. Rate and Capacity are in bits.
type Params struct {
	Rate, Capacity int

	// Rounds is the number of Keccak-p rounds per permutation call. Zero means the full 24 of Keccak-f[1600].
	Rounds int
}

// Validate returns ErrInvalidParameter unless the rate and capacity partition the 1600-bit state at a byte boundary
// and the round count is usable.
func (p Params) Validate() error {
	if p.Rate <= 0 || p.Capacity <= 0 || p.Rate+p.Capacity != Width || p.Rate%8 != 0 {
		return ErrInvalidParameter
	}

	if p.Rounds < 0 || p.Rounds > keccak.Rounds {
		return ErrInvalidParameter
	}
	return nil
}

func (p Params) rounds() int {
	if p.Rounds == 0 {
		return keccak.Rounds
	}
	return p.Rounds
}

// Suffix is a domain-separation bit string appended to the message before padding. The first bit is stored in the
// least significant bit of Bits.
type Suffix struct {
	Bits byte
	Len  int
}

// Domain-separation suffixes.
var (
	SHA3   = Suffix{Bits: 0b10, Len: 2}   // 01
	SHAKE  = Suffix{Bits: 0b1111, Len: 4} // 1111
	Keccak = Suffix{}                     // empty
)

// SuffixFromByte returns the suffix encoded by a domain-separation byte, i.e. the suffix bits followed by the first
// bit of pad10*1. For example, 0x06 is SHA3 and 0x1F is SHAKE.
func SuffixFromByte(ds byte) (Suffix, error) {
	if ds == 0 || ds >= 0x80 {
		return Suffix{}, ErrInvalidParameter
	}

	n := 0
	for ds>>(n+1) != 0 {
		n++
	}
	return Suffix{Bits: ds &^ (1 << n), Len: n}, nil
}

// Byte returns the suffix bits followed by the first bit of pad10*1.
func (s Suffix) Byte() byte {
	return s.Bits | 1<<s.Len
}

func (s Suffix) validate() error {
	// The suffix and the first pad bit must share a byte, leaving the closing pad bit free.
	if s.Len < 0 || s.Len > 6 || s.Bits>>s.Len != 0 {
		return ErrInvalidParameter
	}
	return nil
}

// Pad returns msg followed by the suffix and pad10*1, as a multiple of rate bytes.
func Pad(msg []byte, rate int, s Suffix) []byte {
	n := (len(msg)/rate + 1) * rate
	out := make([]byte, n)
	copy(out, msg)
	out[len(msg)] ^= s.Byte()
	out[n-1] ^= 0x80
	return out
}

// Sum absorbs msg with the given suffix and squeezes outBits bits of output. The result is ceil(outBits/8) bytes; if
// outBits is not a multiple of 8, the unused high bits of the last byte are zero.
func Sum(p Params, s Suffix, msg []byte, outBits int) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	if outBits <= 0 {
		return nil, ErrInvalidOutputLength
	}

	rate, rounds := p.Rate/8, p.rounds()

	var state [keccak.Size]byte
	for block := range slices.Chunk(Pad(msg, rate, s), rate) {
		mem.XORInPlace(state[:rate], block)
		keccak.P1600(&state, rounds)
	}

	out := make([]byte, (outBits+7)/8)
	for b := out; ; {
		b = b[copy(b, state[:rate]):]
		if len(b) == 0 {
			break
		}
		keccak.P1600(&state, rounds)
	}

	if r := outBits % 8; r != 0 {
		out[len(out)-1] &= 1<<r - 1
	}
	return out, nil
}
