package wire

// Response is the server's answer to one Request. Headers and Body are
// exclusively owned by the Response; a handler must not retain it past
// return.
type Response struct {
	Version    Version
	StatusCode int
	StatusText string
	Headers    Headers
	Body       []byte
	KeepAlive  bool
}

// NewResponse builds a Response with the given status and a text
// looked up from the standard reason-phrase table (StatusText falls
// back to "" for unrecognized codes — callers needing a custom phrase
// should set StatusText directly).
func NewResponse(version Version, code int) *Response {
	return &Response{
		Version:    version,
		StatusCode: code,
		StatusText: ReasonPhrase(code),
		KeepAlive:  true,
	}
}

// SetHeader sets a response header, case-insensitively replacing any
// existing value.
func (r *Response) SetHeader(name, value string) {
	r.Headers.Set(name, value)
}

// SetBody replaces the response body. Serialize fills in Content-Length
// from the final body unless the handler has already set one explicitly.
func (r *Response) SetBody(body []byte) {
	r.Body = body
}

// ReasonPhrase returns the standard reason phrase for a status code,
// or "" if cwist has no table entry for it.
func ReasonPhrase(code int) string {
	if p, ok := reasonPhrases[code]; ok {
		return p
	}
	return ""
}

var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	200: "OK",
	201: "Created",
	204: "No Content",
	206: "Partial Content",
	301: "Moved Permanently",
	302: "Found",
	304: "Not Modified",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	408: "Request Timeout",
	413: "Payload Too Large",
	429: "Too Many Requests",
	500: "Internal Server Error",
	501: "Not Implemented",
	503: "Service Unavailable",
}
