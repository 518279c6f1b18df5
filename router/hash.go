package router

import (
	"hash/maphash"

	"cwist/wire"
)

// bucketHash computes the keyed 64-bit hash used to place literal routes into
// buckets. The seed is generated once per process (hash/maphash.MakeSeed
// draws from a runtime-random source), which is the stdlib equivalent of the
// framework's SipHash-with-random-seed requirement: it denies an attacker
// the ability to precompute colliding (method, pattern) pairs across
// restarts.
type bucketHash struct {
	seed maphash.Seed
}

func newBucketHash() bucketHash {
	return bucketHash{seed: maphash.MakeSeed()}
}

func (h bucketHash) hash(method wire.Method, pattern string) uint64 {
	var mh maphash.Hash
	mh.SetSeed(h.seed)
	mh.WriteString(string(method))
	mh.WriteByte(0)
	mh.WriteString(pattern)
	return mh.Sum64()
}
