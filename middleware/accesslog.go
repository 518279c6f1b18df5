package middleware

import (
	"log"
	"time"

	"cwist/wire"
)

// AccessLog records one line per request: request-id, method, path,
// status, elapsed milliseconds, request body size, response body size.
// *log.Logger serializes concurrent writers internally (its own
// mutex), so output from concurrent workers never interleaves without
// cwist adding a lock of its own.
func AccessLog(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(req *wire.Request, next Next) *wire.Response {
		start := time.Now()
		resp := next(req)
		elapsed := time.Since(start)

		logger.Printf("id=%s method=%s path=%s status=%d elapsed_ms=%d req_bytes=%d resp_bytes=%d",
			req.Header(requestIDHeader), req.Method, req.Path, resp.StatusCode,
			elapsed.Milliseconds(), req.ContentLength(), len(resp.Body))

		return resp
	}
}
