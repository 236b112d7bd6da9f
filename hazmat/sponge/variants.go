package sponge

// Parameter sets for the FIPS 202 functions. The legacy Keccak-n functions use the same rate as SHA3-n.
var (
	Params224 = Params{Rate: 1152, Capacity: 448}
	Params256 = Params{Rate: 1088, Capacity: 512}
	Params384 = Params{Rate: 832, Capacity: 768}
	Params512 = Params{Rate: 576, Capacity: 1024}

	ParamsSHAKE128 = Params{Rate: 1344, Capacity: 256}
	ParamsSHAKE256 = Params{Rate: 1088, Capacity: 512}
)

// SHA3_224 returns the SHA3-224 digest of msg.
func SHA3_224(msg []byte) [28]byte {
	return [28]byte(mustSum(Params224, SHA3, msg, 224))
}

// SHA3_256 returns the SHA3-256 digest of msg.
func SHA3_256(msg []byte) [32]byte {
	return [32]byte(mustSum(Params256, SHA3, msg, 256))
}

// SHA3_384 returns the SHA3-384 digest of msg.
func SHA3_384(msg []byte) [48]byte {
	return [48]byte(mustSum(Params384, SHA3, msg, 384))
}

// SHA3_512 returns the SHA3-512 digest of msg.
func SHA3_512(msg []byte) [64]byte {
	return [64]byte(mustSum(Params512, SHA3, msg, 512))
}

// Keccak224 returns the legacy Keccak-224 digest of msg.
func Keccak224(msg []byte) [28]byte {
	return [28]byte(mustSum(Params224, Keccak, msg, 224))
}

// Keccak256 returns the legacy Keccak-256 digest of msg.
func Keccak256(msg []byte) [32]byte {
	return [32]byte(mustSum(Params256, Keccak, msg, 256))
}

// Keccak384 returns the legacy Keccak-384 digest of msg.
func Keccak384(msg []byte) [48]byte {
	return [48]byte(mustSum(Params384, Keccak, msg, 384))
}

// Keccak512 returns the legacy Keccak-512 digest of msg.
func Keccak512(msg []byte) [64]byte {
	return [64]byte(mustSum(Params512, Keccak, msg, 512))
}

// SHAKE128 returns outBits bits of SHAKE128 output for msg.
func SHAKE128(msg []byte, outBits int) ([]byte, error) {
	return Sum(ParamsSHAKE128, SHAKE, msg, outBits)
}

// SHAKE256 returns outBits bits of SHAKE256 output for msg.
func SHAKE256(msg []byte, outBits int) ([]byte, error) {
	return Sum(ParamsSHAKE256, SHAKE, msg, outBits)
}

// mustSum is for fixed parameter sets, where an error means the tables above are wrong.
func mustSum(p Params, s Suffix, msg []byte, outBits int) []byte {
	out, err := Sum(p, s, msg, outBits)
	if err != nil {
		panic(err)
	}
	return out
}
