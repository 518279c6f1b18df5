package cwist

import "cwist/wire"

// NewTextResponse builds a response with the given status code and a
// text/plain body, using req's HTTP version; KeepAlive starts true and
// the server clears it when the request asked to close. A small
// convenience for handlers that would otherwise repeat
// wire.NewResponse/SetHeader/SetBody boilerplate for the common case.
func NewTextResponse(req *Request, code int, body string) *Response {
	resp := wire.NewResponse(req.Version, code)
	resp.SetHeader("Content-Type", "text/plain")
	resp.SetBody([]byte(body))
	return resp
}

// NewJSONResponse builds a response with an application/json body
// already marshaled by the caller.
func NewJSONResponse(req *Request, code int, body []byte) *Response {
	resp := wire.NewResponse(req.Version, code)
	resp.SetHeader("Content-Type", "application/json")
	resp.SetBody(body)
	return resp
}
