package wire

import (
	"fmt"
	"strconv"
)

// Serialize renders resp to its wire form: status line, every
// configured header, a synthesized Content-Length if the handler did
// not set one, a synthesized Connection header if the handler did not
// set one, a blank line, then the body. A synthesized Content-Length
// equals the wire byte count of the body; a Content-Length the handler
// set itself is written as-is (a HEAD response, for example, keeps the
// file size with an empty body).
func Serialize(resp *Response) []byte {
	headers := resp.Headers

	if !headers.Has("Content-Length") {
		headers.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	if !headers.Has("Connection") {
		if resp.KeepAlive {
			headers.Set("Connection", "keep-alive")
		} else {
			headers.Set("Connection", "close")
		}
	}

	text := resp.StatusText
	if text == "" {
		text = ReasonPhrase(resp.StatusCode)
	}

	buf := make([]byte, 0, 256+len(resp.Body))
	buf = append(buf, fmt.Sprintf("%s %d %s\r\n", resp.Version.String(), resp.StatusCode, text)...)
	for _, kv := range headers {
		buf = append(buf, kv.Name...)
		buf = append(buf, ": "...)
		buf = append(buf, kv.Value...)
		buf = append(buf, "\r\n"...)
	}
	buf = append(buf, "\r\n"...)
	buf = append(buf, resp.Body...)
	return buf
}
