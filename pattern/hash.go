package pattern

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash64 returns a 64-bit structural hash of p. hv writes the value's
// representation into the hasher. Child hashes are combined in element
// order, so structurally equal patterns hash equal and ordering is
// significant. The seed is fixed per process.
func Hash64[V any](p Pattern[V], hv func(h *maphash.Hash, v V)) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	hv(&h, p.Value)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(p.Elements)))
	h.Write(b[:])
	for _, e := range p.Elements {
		binary.LittleEndian.PutUint64(b[:], Hash64(e, hv))
		h.Write(b[:])
	}
	return h.Sum64()
}

// HashString is a ready-made value hasher for string-valued patterns.
func HashString(h *maphash.Hash, v string) {
	h.WriteString(v)
}
