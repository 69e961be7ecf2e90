package runner

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// attemptSeed derives the reproducible seed for a given attempt index and
// board dimension, and expands it into the 32-byte key frand wants. The
// derivation is part of the public reproducibility contract: re-running a
// solve with the same dimension and budget replays identical attempts.
func attemptSeed(attempt, dim int) (int64, [32]byte) {
	seed := int64(attempt) + int64(dim)*1000
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return seed, key
}

// attemptRNG builds the deterministic random stream for one attempt. All
// randomness inside the attempt (preference-order shuffle, tie-breaks)
// comes from this stream and nothing else.
func attemptRNG(attempt, dim int) (int64, *frand.RNG) {
	seed, key := attemptSeed(attempt, dim)
	return seed, frand.NewCustom(key[:], 1024, 12)
}
