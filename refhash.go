// Package refhash computes SHA-2, SHA-3, SHAKE, and legacy Keccak digests from reference implementations of FIPS
// 180-4 and FIPS 202, returning lowercase hexadecimal strings.
//
// Every function is a pure function of its input: no state is kept between calls, and all functions are safe for
// concurrent use. The underlying primitives live in [github.com/codahale/refhash/hazmat/sha2],
// [github.com/codahale/refhash/hazmat/sponge], and [github.com/codahale/refhash/hazmat/keccak].
package refhash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"

	"github.com/codahale/refhash/hazmat/sha2"
	"github.com/codahale/refhash/hazmat/sponge"
)

// ErrUnknownFunction is returned by Sum and SumXOF for a name that is not registered.
var ErrUnknownFunction = errors.New("refhash: unknown function")

// Func is a fixed-output hash function returning a hex digest.
type Func func(msg []byte) (string, error)

// XOF is an extendable-output function returning bits bits of output as hex.
type XOF func(msg []byte, bits int) (string, error)

// functions maps names to the fixed-output functions.
var functions = map[string]Func{
	"sha256":     SHA256,
	"sha512":     SHA512,
	"sha3-224":   SHA3_224,
	"sha3-256":   SHA3_256,
	"sha3-384":   SHA3_384,
	"sha3-512":   SHA3_512,
	"keccak-224": Keccak224,
	"keccak-256": Keccak256,
	"keccak-384": Keccak384,
	"keccak-512": Keccak512,
}

// xofs maps names to the extendable-output functions.
var xofs = map[string]XOF{
	"shake128": SHAKE128,
	"shake256": SHAKE256,
}

// Names returns the names of all registered functions, sorted.
func Names() []string {
	names := make([]string, 0, len(functions)+len(xofs))
	for name := range functions {
		names = append(names, name)
	}
	for name := range xofs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sum hashes msg with the fixed-output function registered under name.
func Sum(name string, msg []byte) (string, error) {
	f, ok := functions[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return f(msg)
}

// SumXOF returns bits bits of output from the extendable-output function registered under name.
func SumXOF(name string, msg []byte, bits int) (string, error) {
	f, ok := xofs[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return f(msg, bits)
}

// SHA256 returns the hex SHA-256 digest of msg.
func SHA256(msg []byte) (string, error) {
	d, err := sha2.Sum256(msg)
	if err != nil {
		return "", fmt.Errorf("refhash: sha256: %w", err)
	}
	return hex.EncodeToString(d[:]), nil
}

// SHA512 returns the hex SHA-512 digest of msg.
func SHA512(msg []byte) (string, error) {
	d, err := sha2.Sum512(msg)
	if err != nil {
		return "", fmt.Errorf("refhash: sha512: %w", err)
	}
	return hex.EncodeToString(d[:]), nil
}

// SHA3_224 returns the hex SHA3-224 digest of msg.
func SHA3_224(msg []byte) (string, error) {
	d := sponge.SHA3_224(msg)
	return hex.EncodeToString(d[:]), nil
}

// SHA3_256 returns the hex SHA3-256 digest of msg.
func SHA3_256(msg []byte) (string, error) {
	d := sponge.SHA3_256(msg)
	return hex.EncodeToString(d[:]), nil
}

// SHA3_384 returns the hex SHA3-384 digest of msg.
func SHA3_384(msg []byte) (string, error) {
	d := sponge.SHA3_384(msg)
	return hex.EncodeToString(d[:]), nil
}

// SHA3_512 returns the hex SHA3-512 digest of msg.
func SHA3_512(msg []byte) (string, error) {
	d := sponge.SHA3_512(msg)
	return hex.EncodeToString(d[:]), nil
}

// Keccak224 returns the hex legacy Keccak-224 digest of msg.
func Keccak224(msg []byte) (string, error) {
	d := sponge.Keccak224(msg)
	return hex.EncodeToString(d[:]), nil
}

// Keccak256 returns the hex legacy Keccak-256 digest of msg.
func Keccak256(msg []byte) (string, error) {
	d := sponge.Keccak256(msg)
	return hex.EncodeToString(d[:]), nil
}

// Keccak384 returns the hex legacy Keccak-384 digest of msg.
func Keccak384(msg []byte) (string, error) {
	d := sponge.Keccak384(msg)
	return hex.EncodeToString(d[:]), nil
}

// Keccak512 returns the hex legacy Keccak-512 digest of msg.
func Keccak512(msg []byte) (string, error) {
	d := sponge.Keccak512(msg)
	return hex.EncodeToString(d[:]), nil
}

// SHAKE128 returns bits bits of SHAKE128 output for msg as hex. If bits is not a multiple of 8, the unused high bits
// of the last byte are zero.
func SHAKE128(msg []byte, bits int) (string, error) {
	d, err := sponge.SHAKE128(msg, bits)
	if err != nil {
		return "", fmt.Errorf("refhash: shake128: %w", err)
	}
	return hex.EncodeToString(d), nil
}

// SHAKE256 returns bits bits of SHAKE256 output for msg as hex. If bits is not a multiple of 8, the unused high bits
// of the last byte are zero.
func SHAKE256(msg []byte, bits int) (string, error) {
	d, err := sponge.SHAKE256(msg, bits)
	if err != nil {
		return "", fmt.Errorf("refhash: shake256: %w", err)
	}
	return hex.EncodeToString(d), nil
}
