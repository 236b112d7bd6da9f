// Package sha2 implements SHA-256 and SHA-512 as specified in FIPS 180-4.
//
// Both functions are instances of one Merkle–Damgård engine, generic over the word type, and differ only in their
// parameters: word width, round count, round constants, initial hash value, and rotation amounts.
package sha2

import (
	"slices"
)

const (
	// Size256 is the size, in bytes, of a SHA-256 digest.
	Size256 = 32

	// Size512 is the size, in bytes, of a SHA-512 digest.
	Size512 = 64

	// BlockSize256 is the SHA-256 block size in bytes.
	BlockSize256 = 64

	// BlockSize512 is the SHA-512 block size in bytes.
	BlockSize512 = 128
)

// Sum256 returns the SHA-256 digest of msg.
func Sum256(msg []byte) ([Size256]byte, error) {
	d, err := sha256Engine.sum(msg)
	if err != nil {
		return [Size256]byte{}, err
	}
	return [Size256]byte(d), nil
}

// Sum512 returns the SHA-512 digest of msg.
func Sum512(msg []byte) ([Size512]byte, error) {
	d, err := sha512Engine.sum(msg)
	if err != nil {
		return [Size512]byte{}, err
	}
	return [Size512]byte(d), nil
}

type word interface {
	~uint32 | ~uint64
}

// engine holds the parameters of one SHA-2 function.
type engine[W word] struct {
	width      int // word width in bits
	rounds     int
	blockSize  int // bytes
	lengthSize int // bytes
	k          []W
	iv         [8]W

	// Right rotations for Σ0 and Σ1; two rotations and a right shift for σ0 and σ1.
	bigSigma0, bigSigma1     [3]int
	smallSigma0, smallSigma1 [3]int
}

// sum pads msg, compresses each block in order, and serializes the final state big-endian.
func (p *engine[W]) sum(msg []byte) ([]byte, error) {
	padded, err := Pad(msg, p.blockSize, p.lengthSize)
	if err != nil {
		return nil, err
	}

	h := p.iv
	w := make([]W, p.rounds)
	for block := range slices.Chunk(padded, p.blockSize) {
		p.schedule(block, w)
		p.compress(&h, w)
	}

	n := p.width / 8
	out := make([]byte, 0, 8*n)
	for _, v := range h {
		for i := n - 1; i >= 0; i-- {
			out = append(out, byte(v>>(8*i)))
		}
	}
	return out, nil
}

// schedule expands one block into w. The first 16 words are the block's big-endian words.
func (p *engine[W]) schedule(block []byte, w []W) {
	n := p.width / 8
	for t := range 16 {
		var v W
		for _, b := range block[t*n : (t+1)*n] {
			v = v<<8 | W(b)
		}
		w[t] = v
	}

	for t := 16; t < p.rounds; t++ {
		w[t] = p.sigma1(w[t-2]) + w[t-7] + p.sigma0(w[t-15]) + w[t-16]
	}
}

// compress runs the round function over the schedule and folds the working variables back into h.
func (p *engine[W]) compress(h *[8]W, w []W) {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := range p.rounds {
		t1 := hh + p.bigSum1(e) + ch(e, f, g) + p.k[i] + w[i]
		t2 := p.bigSum0(a) + maj(a, b, c)
		hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

func (p *engine[W]) rotr(x W, n int) W {
	return x>>n | x<<(p.width-n)
}

func (p *engine[W]) bigSum0(x W) W {
	return p.rotr(x, p.bigSigma0[0]) ^ p.rotr(x, p.bigSigma0[1]) ^ p.rotr(x, p.bigSigma0[2])
}

func (p *engine[W]) bigSum1(x W) W {
	return p.rotr(x, p.bigSigma1[0]) ^ p.rotr(x, p.bigSigma1[1]) ^ p.rotr(x, p.bigSigma1[2])
}

func (p *engine[W]) sigma0(x W) W {
	return p.rotr(x, p.smallSigma0[0]) ^ p.rotr(x, p.smallSigma0[1]) ^ x>>p.smallSigma0[2]
}

func (p *engine[W]) sigma1(x W) W {
	return p.rotr(x, p.smallSigma1[0]) ^ p.rotr(x, p.smallSigma1[1]) ^ x>>p.smallSigma1[2]
}

func ch[W word](x, y, z W) W {
	return (x & y) ^ (^x & z)
}

func maj[W word](x, y, z W) W {
	return (x & y) ^ (x & z) ^ (y & z)
}
