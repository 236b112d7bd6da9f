package refhash_test

import (
	"crypto/sha256"
	"crypto/sha3"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"slices"
	"testing"

	"github.com/codahale/refhash"
	"github.com/codahale/refhash/hazmat/sha2"
	"github.com/codahale/refhash/hazmat/sponge"
	"github.com/codahale/refhash/internal/testdata"
	fuzz "github.com/trailofbits/go-fuzz-utils"
	legacy "golang.org/x/crypto/sha3"
)

func TestKnownAnswers(t *testing.T) {
	for _, tc := range []struct {
		name string
		msg  string
		want string
	}{
		{"sha256", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha512", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"sha3-256", "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"sha3-224", "", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{"keccak-224", "", "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd"},
		{"keccak-256", "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := refhash.Sum(tc.name, []byte(tc.msg))
			if err != nil {
				t.Fatal(err)
			}

			if got != tc.want {
				t.Errorf("%s(%q) = %s, want = %s", tc.name, tc.msg, got, tc.want)
			}
		})
	}
}

func TestOutputLengths(t *testing.T) {
	for name, bits := range map[string]int{
		"sha256":     256,
		"sha512":     512,
		"sha3-224":   224,
		"sha3-256":   256,
		"sha3-384":   384,
		"sha3-512":   512,
		"keccak-224": 224,
		"keccak-256": 256,
		"keccak-384": 384,
		"keccak-512": 512,
	} {
		for _, n := range []int{0, 1, 200, 1000} {
			got, err := refhash.Sum(name, make([]byte, n))
			if err != nil {
				t.Fatal(err)
			}

			if len(got) != bits/4 {
				t.Errorf("len(%s(%d bytes)) = %d hex digits, want %d", name, n, len(got), bits/4)
			}
		}
	}

	for _, name := range []string{"shake128", "shake256"} {
		for _, bits := range []int{1, 4, 8, 255, 256, 1344, 1345, 20000} {
			got, err := refhash.SumXOF(name, []byte("abc"), bits)
			if err != nil {
				t.Fatal(err)
			}

			if want := 2 * ((bits + 7) / 8); len(got) != want {
				t.Errorf("len(%s(abc, %d)) = %d hex digits, want %d", name, bits, len(got), want)
			}
		}
	}
}

func TestDifferential(t *testing.T) {
	oracles := map[string]func([]byte) []byte{
		"sha256":   func(b []byte) []byte { d := sha256.Sum256(b); return d[:] },
		"sha512":   func(b []byte) []byte { d := sha512.Sum512(b); return d[:] },
		"sha3-224": func(b []byte) []byte { d := sha3.Sum224(b); return d[:] },
		"sha3-256": func(b []byte) []byte { d := sha3.Sum256(b); return d[:] },
		"sha3-384": func(b []byte) []byte { d := sha3.Sum384(b); return d[:] },
		"sha3-512": func(b []byte) []byte { d := sha3.Sum512(b); return d[:] },
		"keccak-256": func(b []byte) []byte {
			h := legacy.NewLegacyKeccak256()
			_, _ = h.Write(b)
			return h.Sum(nil)
		},
		"keccak-512": func(b []byte) []byte {
			h := legacy.NewLegacyKeccak512()
			_, _ = h.Write(b)
			return h.Sum(nil)
		},
	}

	drbg := testdata.New("refhash differential")
	for name, oracle := range oracles {
		t.Run(name, func(t *testing.T) {
			for _, n := range testdata.Boundaries(sha2.BlockSize512, 17) {
				msg := drbg.Data(n)

				got, err := refhash.Sum(name, msg)
				if err != nil {
					t.Fatal(err)
				}

				if want := hex.EncodeToString(oracle(msg)); got != want {
					t.Errorf("%s(%d bytes) = %s, want = %s", name, n, got, want)
				}
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	msg := testdata.New("refhash determinism").Data(777)
	flipped := slices.Clone(msg)
	flipped[0] ^= 0x80

	for _, name := range refhash.Names() {
		a, err := sum(name, msg)
		if err != nil {
			t.Fatal(err)
		}

		b, err := sum(name, msg)
		if err != nil {
			t.Fatal(err)
		}

		c, err := sum(name, flipped)
		if err != nil {
			t.Fatal(err)
		}

		if a != b {
			t.Errorf("%s is not deterministic: %s != %s", name, a, b)
		}

		if a == c {
			t.Errorf("%s is unchanged by a bit flip: %s", name, a)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{
		"keccak-224", "keccak-256", "keccak-384", "keccak-512",
		"sha256", "sha3-224", "sha3-256", "sha3-384", "sha3-512", "sha512",
		"shake128", "shake256",
	}

	if got := refhash.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want = %v", got, want)
	}
}

func TestErrors(t *testing.T) {
	if _, err := refhash.Sum("md5", nil); !errors.Is(err, refhash.ErrUnknownFunction) {
		t.Errorf("Sum(md5) err = %v, want = %v", err, refhash.ErrUnknownFunction)
	}

	if _, err := refhash.SumXOF("sha256", nil, 256); !errors.Is(err, refhash.ErrUnknownFunction) {
		t.Errorf("SumXOF(sha256) err = %v, want = %v", err, refhash.ErrUnknownFunction)
	}

	for _, bits := range []int{0, -1} {
		if _, err := refhash.SHAKE128(nil, bits); !errors.Is(err, sponge.ErrInvalidOutputLength) {
			t.Errorf("SHAKE128(nil, %d) err = %v, want = %v", bits, err, sponge.ErrInvalidOutputLength)
		}

		if _, err := refhash.SHAKE256(nil, bits); !errors.Is(err, sponge.ErrInvalidOutputLength) {
			t.Errorf("SHAKE256(nil, %d) err = %v, want = %v", bits, err, sponge.ErrInvalidOutputLength)
		}
	}
}

func FuzzFunctions(f *testing.F) {
	drbg := testdata.New("refhash fuzz")
	for range 10 {
		f.Add(drbg.Data(256))
	}

	names := refhash.Names()
	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		i, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		msg, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		name := names[int(i)%len(names)]
		a, err := sum(name, msg)
		if err != nil {
			t.Fatal(err)
		}

		b, err := sum(name, slices.Clone(msg))
		if err != nil {
			t.Fatal(err)
		}

		if a != b {
			t.Errorf("%s(%x) diverged: %s != %s", name, msg, a, b)
		}
	})
}

// sum dispatches by name, using 256 bits of output for the XOFs.
func sum(name string, msg []byte) (string, error) {
	if d, err := refhash.SumXOF(name, msg, 256); !errors.Is(err, refhash.ErrUnknownFunction) {
		return d, err
	}
	return refhash.Sum(name, msg)
}
