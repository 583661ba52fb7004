package axis

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/teranos/condax/errors"
)

// seedMix decorrelates the two PCG state words derived from one seed
const seedMix = 0x9e3779b97f4a7c15

// NewRand returns a PCG-backed generator derived solely from seed.
//
// The derivation is part of the package contract: state words are
// uint64(seed) and uint64(seed)^0x9e3779b97f4a7c15. Two generators built
// from the same seed produce identical streams.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^seedMix))
}

// NewSeed generates a random seed using crypto/rand.
// Callers that want a reproducible run without choosing a seed can draw one
// here, report it, and pass it to WithSeed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// newEntropyRand returns a generator seeded from crypto/rand.
// Every call gets its own source; nothing is shared between callers.
func newEntropyRand() *rand.Rand {
	var b [16]byte
	// crypto/rand.Read does not fail on supported platforms
	_, _ = crand.Read(b[:])
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))
}
