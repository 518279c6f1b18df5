package ws

import (
	"crypto/sha1"
	"encoding/base64"
	"strings"

	"cwist/wire"
)

// webSocketGUID is the RFC 6455 magic string concatenated with the
// client's Sec-WebSocket-Key before hashing.
const webSocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// Eligible reports whether req is a valid WebSocket upgrade request:
// GET method, Upgrade: websocket, a Connection header containing the
// Upgrade token, and a non-empty Sec-WebSocket-Key.
func Eligible(req *wire.Request) bool {
	if req.Method != wire.MethodGET {
		return false
	}
	if !strings.EqualFold(req.Header("Upgrade"), "websocket") {
		return false
	}
	if !req.Headers.ContainsToken("Connection", "Upgrade") {
		return false
	}
	return req.Header("Sec-WebSocket-Key") != ""
}

// Accept computes the Sec-WebSocket-Accept value for a client key.
func Accept(key string) string {
	h := sha1.New()
	h.Write([]byte(key))
	h.Write([]byte(webSocketGUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// UpgradeResponse builds the 101 Switching Protocols response for a
// successful handshake. The caller is responsible for flagging
// req.Upgraded and handing the connection to a Conn afterward.
func UpgradeResponse(req *wire.Request) *wire.Response {
	resp := wire.NewResponse(req.Version, 101)
	resp.SetHeader("Upgrade", "websocket")
	resp.SetHeader("Connection", "Upgrade")
	resp.SetHeader("Sec-WebSocket-Accept", Accept(req.Header("Sec-WebSocket-Key")))
	return resp
}
