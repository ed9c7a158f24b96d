package test

import (
	"io"

	"github.com/taurusgroup/schnorr-pok/internal/hash"
)

// Reader returns a deterministic stream of pseudo-random bytes derived from the seed.
//
// It must only be used in tests, to make sampled values reproducible.
func Reader(seed ...[]byte) io.Reader {
	data := make([]interface{}, 0, len(seed))
	for _, s := range seed {
		data = append(data, &hash.BytesWithDomain{TheDomain: "Test Seed", Bytes: s})
	}
	return hash.New(data...).Digest()
}
