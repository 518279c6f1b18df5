package wire

import (
	"bytes"
	"errors"
	"io"
	"net"
	"time"

	"cwist/cwisterr"
)

// ReaderConfig bounds a Reader's framing behavior: the maximum size of
// one framed request (header block plus body), the maximum request body
// size, and the idle read deadline applied between reads.
type ReaderConfig struct {
	BufferCeiling int           // e.g. 64 KiB
	MaxBodySize   int           // e.g. 8 MiB
	IOTimeout     time.Duration // e.g. 30s
}

// DefaultReaderConfig returns conservative defaults suitable for a
// general-purpose HTTP server.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		BufferCeiling: 64 * 1024,
		MaxBodySize:   8 * 1024 * 1024,
		IOTimeout:     30 * time.Second,
	}
}

// Reader frames one HTTP/1.1 request at a time off a net.Conn,
// persisting its read buffer across keep-alive iterations so pipelined
// bytes already read for one request aren't discarded before framing
// the next. It is not safe for concurrent use — exactly one worker
// owns a Reader for the life of a connection.
type Reader struct {
	conn net.Conn
	cfg  ReaderConfig
	buf  []byte // unconsumed bytes already read from conn
}

// NewReader constructs a Reader over conn with the given framing
// limits.
func NewReader(conn net.Conn, cfg ReaderConfig) *Reader {
	return &Reader{conn: conn, cfg: cfg}
}

// Next reads, validates, and frames the next request on the
// connection.
//
// Return shapes:
//   - (req, nil, nil): a well-formed request was framed.
//   - (nil, status, nil): a protocol/policy error — the worker should
//     write status and then close.
//   - (nil, nil, err): the peer closed the connection or the read
//     timed out — the worker closes silently, no response.
func (r *Reader) Next() (*Request, *cwisterr.Status, error) {
	headerLen, status, err := r.readUntilHeadersComplete()
	if err != nil {
		return nil, nil, err
	}
	if status != nil {
		return nil, status, nil
	}

	methodTok, target, version, headers, ok := parseHeadBlock(r.buf[:headerLen])
	if !ok {
		r.discard(headerLen)
		return nil, cwisterr.NewStatus(400, "Bad Request", cwisterr.ErrMalformedRequest), nil
	}

	if IsChunked(headers) {
		r.discard(headerLen)
		return nil, cwisterr.NewStatus(501, "Not Implemented", cwisterr.ErrChunkedUnsupported), nil
	}

	contentLength, ok := ParseContentLength(headers)
	if !ok {
		r.discard(headerLen)
		return nil, cwisterr.NewStatus(400, "Bad Request", cwisterr.ErrMalformedRequest), nil
	}
	if contentLength > r.cfg.MaxBodySize {
		r.discard(headerLen)
		return nil, cwisterr.NewStatus(413, "Payload Too Large", cwisterr.ErrBodyTooLarge), nil
	}
	total := headerLen + contentLength
	if total > r.cfg.BufferCeiling {
		r.discard(headerLen)
		return nil, cwisterr.NewStatus(413, "Payload Too Large", cwisterr.ErrBodyTooLarge), nil
	}

	if err := r.fill(total); err != nil {
		return nil, nil, err
	}

	body := make([]byte, contentLength)
	copy(body, r.buf[headerLen:total])
	r.discard(total)

	path, rawQuery := splitTarget(target)
	req := &Request{
		Method:   ParseMethod(methodTok),
		Path:     path,
		RawQuery: rawQuery,
		Query:    ParseQuery(rawQuery),
		Version:  version,
		Headers:  headers,
		Body:     body,
	}
	req.KeepAlive = resolveKeepAlive(headers, version)
	req.Conn = r.conn
	if tcp, ok := r.conn.(interface{ RemoteAddr() net.Addr }); ok {
		req.RemoteAddr = tcp.RemoteAddr().String()
	}
	return req, nil, nil
}

// readUntilHeadersComplete grows r.buf by reading from the connection
// until it contains a CRLFCRLF terminator, returning the offset of the
// first byte after that terminator (i.e. headerLen).
func (r *Reader) readUntilHeadersComplete() (int, *cwisterr.Status, error) {
	for {
		if idx := bytes.Index(r.buf, []byte("\r\n\r\n")); idx >= 0 {
			return idx + 4, nil, nil
		}
		if len(r.buf) > r.cfg.BufferCeiling {
			return 0, cwisterr.NewStatus(413, "Payload Too Large", cwisterr.ErrHeadersTooLarge), nil
		}
		if err := r.readMore(); err != nil {
			return 0, nil, err
		}
	}
}

// fill ensures r.buf holds at least n bytes, reading more from the
// connection as needed.
func (r *Reader) fill(n int) error {
	for len(r.buf) < n {
		if err := r.readMore(); err != nil {
			return err
		}
	}
	return nil
}

// readMore performs one bounded read, appending to r.buf. It applies
// the configured I/O timeout as a read deadline, mapping EOF and
// deadline expiry to cwisterr.ErrConnectionClosed so the caller closes
// the connection without writing a response.
func (r *Reader) readMore() error {
	if r.cfg.IOTimeout > 0 {
		if err := r.conn.SetReadDeadline(time.Now().Add(r.cfg.IOTimeout)); err != nil {
			return err
		}
	}
	chunk := make([]byte, 4096)
	n, err := r.conn.Read(chunk)
	if n > 0 {
		r.buf = append(r.buf, chunk[:n]...)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return cwisterr.ErrConnectionClosed
		}
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return cwisterr.ErrConnectionClosed
		}
		return err
	}
	if n == 0 {
		return cwisterr.ErrConnectionClosed
	}
	return nil
}

// discard drops the first n bytes of r.buf, retaining any pipelined
// bytes already read for the next Next() call.
func (r *Reader) discard(n int) {
	r.buf = append(r.buf[:0], r.buf[n:]...)
}
