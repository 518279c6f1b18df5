package middleware

import (
	"math/rand"
	"sync"
	"time"

	"cwist/wire"
)

const requestIDHeader = "X-Request-Id"

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const idLength = 16

// idGenerator produces 16-character lowercase-alphanumeric identifiers from
// a single process-lifetime seeded PRNG, guarded by a mutex since
// math/rand.Rand is not safe for concurrent use.
type idGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newIDGenerator() *idGenerator {
	return &idGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[g.rng.Intn(len(idAlphabet))]
	}
	return string(b)
}

// RequestID ensures every request and its response carry an X-Request-Id
// header, generating one if the client didn't supply it.
func RequestID() Middleware {
	gen := newIDGenerator()
	return func(req *wire.Request, next Next) *wire.Response {
		id := req.Header(requestIDHeader)
		if id == "" {
			id = gen.next()
			req.Headers.Set(requestIDHeader, id)
		}
		resp := next(req)
		resp.SetHeader(requestIDHeader, id)
		return resp
	}
}
