// Package fingerprint computes compact hashes of completed (or partial)
// paths so the multi-attempt runner can recognize tours it has already
// produced. This is best-effort dedup: collisions are tolerated, never
// relied on for correctness.
package fingerprint

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/domino14/knightour/board"
)

// maxSample caps how many positions from each end of the path feed the
// hash. Bounding the sample keeps fingerprinting O(1)-ish on huge boards;
// the prefix and suffix together distinguish tours well in practice.
const maxSample = 100

// Tour hashes a bounded prefix+suffix sample of path. Identical paths
// always produce identical fingerprints; paths differing inside the
// sampled region produce different fingerprints with high probability.
func Tour(path board.Path) uint64 {
	sample := len(path) / 2
	if sample > maxSample {
		sample = maxSample
	}
	h := xxhash.New()
	var buf [8]byte

	// Length first, so short paths with empty samples still differ.
	binary.LittleEndian.PutUint64(buf[:], uint64(len(path)))
	h.Write(buf[:])

	writePos := func(p board.Position) {
		binary.LittleEndian.PutUint32(buf[:4], uint32(p.Row))
		binary.LittleEndian.PutUint32(buf[4:], uint32(p.Col))
		h.Write(buf[:])
	}
	for _, p := range path[:sample] {
		writePos(p)
	}
	for _, p := range path[len(path)-sample:] {
		writePos(p)
	}
	return h.Sum64()
}
