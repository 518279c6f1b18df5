package wire

import "strings"

// Header is a single (name, value) pair, stored in the order it was
// parsed or set. Lookup by name is case-insensitive.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of Header pairs. It intentionally
// keeps duplicates (a request may legally repeat a header name) rather
// than collapsing to a map; Get returns the first match.
type Headers []Header

// Get returns the value of the first header matching name
// (case-insensitive), and whether it was present.
func (h Headers) Get(name string) (string, bool) {
	for _, kv := range h {
		if strings.EqualFold(kv.Name, name) {
			return kv.Value, true
		}
	}
	return "", false
}

// Values returns every value for headers matching name, in order.
func (h Headers) Values(name string) []string {
	var out []string
	for _, kv := range h {
		if strings.EqualFold(kv.Name, name) {
			out = append(out, kv.Value)
		}
	}
	return out
}

// Has reports whether a header named name is present, case-insensitive.
func (h Headers) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Add appends a header pair without touching any existing entry for
// the same name.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Set replaces every existing header named name (case-insensitive)
// with a single pair carrying value, preserving the position of the
// first match, or appending if absent.
func (h *Headers) Set(name, value string) {
	for i, kv := range *h {
		if strings.EqualFold(kv.Name, name) {
			(*h)[i].Value = value
			// drop any further duplicates of the same name
			out := (*h)[:i+1]
			for _, kv2 := range (*h)[i+1:] {
				if !strings.EqualFold(kv2.Name, name) {
					out = append(out, kv2)
				}
			}
			*h = out
			return
		}
	}
	h.Add(name, value)
}

// Del removes every header matching name, case-insensitive.
func (h *Headers) Del(name string) {
	out := (*h)[:0]
	for _, kv := range *h {
		if !strings.EqualFold(kv.Name, name) {
			out = append(out, kv)
		}
	}
	*h = out
}

// ContainsToken reports whether a comma-separated header value
// contains token, case-insensitive — the matching Connection and
// Upgrade header values need for the WebSocket handshake.
func (h Headers) ContainsToken(name, token string) bool {
	for _, v := range h.Values(name) {
		for _, part := range strings.Split(v, ",") {
			if strings.EqualFold(strings.TrimSpace(part), token) {
				return true
			}
		}
	}
	return false
}
