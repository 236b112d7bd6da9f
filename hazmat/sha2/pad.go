package sha2

import (
	"errors"
	"math/bits"
)

var (
	// ErrLengthOverflow is returned when a message's bit length does not fit in the padding's length field.
	ErrLengthOverflow = errors.New("sha2: message length overflows length field")

	// ErrInvalidParameter is returned by Pad for a block or length field size it cannot satisfy.
	ErrInvalidParameter = errors.New("sha2: invalid padding parameters")
)

// Pad returns msg followed by a single 1 bit, the minimum number of 0 bits, and the big-endian bit length of msg in
// lengthSize bytes, such that the result is a multiple of blockSize bytes.
//
// SHA-256 uses a 64-byte block and an 8-byte length field. SHA-512 uses a 128-byte block and a 16-byte length field.
func Pad(msg []byte, blockSize, lengthSize int) ([]byte, error) {
	if blockSize <= 0 || lengthSize <= 0 || lengthSize >= blockSize {
		return nil, ErrInvalidParameter
	}

	length, err := encodeLength(uint64(len(msg)), lengthSize)
	if err != nil {
		return nil, err
	}

	n := len(msg) + 1 + lengthSize
	n += (blockSize - n%blockSize) % blockSize

	out := make([]byte, n)
	copy(out, msg)
	out[len(msg)] = 0x80
	copy(out[n-lengthSize:], length)
	return out, nil
}

// encodeLength returns the big-endian encoding of 8*n in size bytes.
func encodeLength(n uint64, size int) ([]byte, error) {
	hi, lo := bits.Mul64(n, 8)

	used := bits.Len64(lo)
	if hi != 0 {
		used = 64 + bits.Len64(hi)
	}
	if used > 8*size {
		return nil, ErrLengthOverflow
	}

	b := make([]byte, size)
	for i := range min(size, 16) {
		if i < 8 {
			b[size-1-i] = byte(lo >> (8 * i))
		} else {
			b[size-1-i] = byte(hi >> (8 * (i - 8)))
		}
	}
	return b, nil
}
