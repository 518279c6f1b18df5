package wire

import (
	"bytes"
	"strconv"
	"strings"
)

// ParseRequest turns one framed byte window (header block + exactly
// content_length body bytes, as framed by the connection reader) into
// a Request. It returns ok=false for anything the request line or
// header block parser cannot make sense of — the reader answers 400
// and closes in that case.
func ParseRequest(raw []byte, headerLen int) (*Request, bool) {
	methodTok, target, version, headers, ok := parseHeadBlock(raw[:headerLen])
	if !ok {
		return nil, false
	}
	path, rawQuery := splitTarget(target)

	req := &Request{
		Method:   ParseMethod(methodTok),
		Path:     path,
		RawQuery: rawQuery,
		Query:    ParseQuery(rawQuery),
		Version:  version,
		Headers:  headers,
		Body:     raw[headerLen:],
	}
	req.KeepAlive = resolveKeepAlive(headers, version)
	return req, true
}

// parseHeadBlock parses the request line and header lines of a
// complete header block (through but not including the terminating
// CRLFCRLF). It is shared by ParseRequest and the connection reader,
// which must inspect Content-Length/Transfer-Encoding before it knows
// how many body bytes to wait for.
func parseHeadBlock(headerBlock []byte) (method, target string, version Version, headers Headers, ok bool) {
	lineEnd := bytes.Index(headerBlock, []byte("\r\n"))
	if lineEnd < 0 {
		return "", "", Version{}, nil, false
	}
	requestLine := string(headerBlock[:lineEnd])

	methodTok, targetTok, versionTok, ok := splitRequestLine(requestLine)
	if !ok {
		return "", "", Version{}, nil, false
	}
	v, ok := ParseVersion(versionTok)
	if !ok {
		return "", "", Version{}, nil, false
	}
	h, ok := parseHeaders(headerBlock[lineEnd+2:])
	if !ok {
		return "", "", Version{}, nil, false
	}
	return methodTok, targetTok, v, h, true
}

// splitRequestLine splits "METHOD SP target SP version" on single
// spaces. More than three tokens or fewer than three is malformed.
func splitRequestLine(line string) (method, target, version string, ok bool) {
	first := strings.IndexByte(line, ' ')
	if first < 0 {
		return "", "", "", false
	}
	rest := line[first+1:]
	second := strings.IndexByte(rest, ' ')
	if second < 0 {
		return "", "", "", false
	}
	method = line[:first]
	target = rest[:second]
	version = rest[second+1:]
	if method == "" || target == "" || version == "" {
		return "", "", "", false
	}
	return method, target, version, true
}

// splitTarget splits a request target at the first "?" into path and
// raw query.
func splitTarget(target string) (path, rawQuery string) {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, ""
}

// parseHeaders parses "name \":\" OWS value OWS CRLF" lines up to (but
// not including) the terminating CRLF. headerBlock here is everything
// after the request line's CRLF, including the trailing empty line.
func parseHeaders(headerBlock []byte) (Headers, bool) {
	var headers Headers
	lines := bytes.Split(headerBlock, []byte("\r\n"))
	for _, line := range lines {
		if len(line) == 0 {
			continue // the blank line before CRLFCRLF
		}
		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, false
		}
		name := string(line[:colon])
		value := strings.TrimSpace(string(line[colon+1:]))
		if name == "" {
			return nil, false
		}
		headers.Add(name, value)
	}
	return headers, true
}

func resolveKeepAlive(h Headers, v Version) bool {
	if conn, ok := h.Get("Connection"); ok {
		if strings.EqualFold(strings.TrimSpace(conn), "close") {
			return false
		}
		if strings.EqualFold(strings.TrimSpace(conn), "keep-alive") {
			return true
		}
	}
	return v.DefaultKeepAlive()
}

// ParseContentLength reads the Content-Length header. Missing returns
// (0, true). A negative or non-integer value returns ok=false, which
// the reader turns into a 400.
func ParseContentLength(h Headers) (int, bool) {
	v, present := h.Get("Content-Length")
	if !present {
		return 0, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsChunked reports whether Transfer-Encoding: chunked is present; the
// reader answers such requests with 501, since chunked bodies aren't
// supported.
func IsChunked(h Headers) bool {
	return h.ContainsToken("Transfer-Encoding", "chunked")
}
