package router

import (
	"sync"

	"cwist/wire"
)

// DefaultBucketCount is the literal-route bucket array size. It need not be
// prime; the keyed hash already spreads load evenly.
const DefaultBucketCount = 256

// Table is cwist's route table: a hashed bucket array of chains for literal
// (method, pattern) routes plus a linear list for parameterized routes and
// static file mounts.
type Table struct {
	mu sync.RWMutex

	buckets     [][]*route
	params      []*route
	statics     []*route
	hash        bucketHash
	notFound    Handler
	bucketCount int
}

// NewTable creates an empty route table with DefaultBucketCount buckets.
func NewTable() *Table {
	return NewTableWithBuckets(DefaultBucketCount)
}

// NewTableWithBuckets creates an empty route table with a caller-chosen
// bucket count.
func NewTableWithBuckets(bucketCount int) *Table {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	return &Table{
		buckets:     make([][]*route, bucketCount),
		hash:        newBucketHash(),
		bucketCount: bucketCount,
	}
}

// Register adds a route for method+pattern. Re-registering the same
// (method, literal pattern) replaces the existing handler in place;
// parameterized patterns are appended and matched in registration order.
func (t *Table) Register(method wire.Method, pattern string, handler Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := &route{method: method, pattern: pattern, handler: handler, kind: kindHandler}

	if isParameterized(pattern) {
		r.segments = splitSegments(pattern)
		t.params = append(t.params, r)
		return
	}

	idx := t.hash.hash(method, pattern) % uint64(t.bucketCount)
	chain := t.buckets[idx]
	for i, existing := range chain {
		if existing.kind == kindHandler && existing.method == method && existing.pattern == pattern {
			chain[i] = r
			return
		}
	}
	t.buckets[idx] = append(chain, r)
}

// RegisterStatic mounts fsRoot under urlPrefix for GET/HEAD requests. The
// prefix is matched on a path-separator boundary: "/assets" matches
// "/assets" and "/assets/x.js" but not "/assetsx".
func (t *Table) RegisterStatic(urlPrefix, fsRoot string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statics = append(t.statics, &route{kind: kindStatic, urlPrefix: urlPrefix, fsRoot: fsRoot})
}

// SetNotFound installs the handler invoked when no route matches.
func (t *Table) SetNotFound(h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notFound = h
}

// Lookup resolves a (method, path) pair. It returns the matched handler (or
// the static-file handler), the extracted path parameters (nil if none),
// and whether any route matched at all. A literal match always wins over a
// parameterized match; among parameterized routes, the earliest registered
// wins.
func (t *Table) Lookup(method wire.Method, path string) (Handler, map[string]string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := t.hash.hash(method, path) % uint64(t.bucketCount)
	for _, r := range t.buckets[idx] {
		if r.kind == kindHandler && r.method == method && r.pattern == path {
			return r.handler, nil, true
		}
	}

	pathSegs := splitSegments(path)
	for _, r := range t.params {
		if r.method != method {
			continue
		}
		if params, ok := matchSegments(r.segments, pathSegs); ok {
			return r.handler, params, true
		}
	}

	if method == wire.MethodGET || method == wire.MethodHEAD {
		for _, r := range t.statics {
			if matchesStaticPrefix(r.urlPrefix, path) {
				return staticHandler(r.urlPrefix, r.fsRoot, method), nil, true
			}
		}
	}

	return nil, nil, false
}

// NotFound returns the installed not-found handler, or a built-in default
// 404 response if none was set.
func (t *Table) NotFound() Handler {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.notFound != nil {
		return t.notFound
	}
	return defaultNotFound
}

func defaultNotFound(req *wire.Request) *wire.Response {
	resp := wire.NewResponse(req.Version, 404)
	resp.SetBody([]byte("not found"))
	return resp
}

func matchSegments(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if len(seg) > 0 && seg[0] == ':' {
			if params == nil {
				params = make(map[string]string, len(pattern))
			}
			params[seg[1:]] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

func matchesStaticPrefix(prefix, path string) bool {
	if path == prefix {
		return true
	}
	if len(prefix) > 0 && prefix[len(prefix)-1] == '/' {
		return len(path) > len(prefix) && path[:len(prefix)] == prefix
	}
	return len(path) > len(prefix) && path[:len(prefix)] == prefix && path[len(prefix)] == '/'
}
