package cwist

import (
	"net"

	"cwist/wire"
	"cwist/ws"
)

// dispatch runs the middleware chain and, on fallthrough, the route
// table lookup. It is what every accepted connection's worker calls
// once per framed request.
func (s *Server) dispatch(req *Request) *Response {
	resp := s.chain.Dispatch(req, func(req *Request) *Response {
		handler, params, ok := s.table.Lookup(req.Method, req.Path)
		if !ok {
			return s.table.NotFound()(req)
		}
		req.PathParams = params
		return handler(req)
	})
	if !req.KeepAlive {
		resp.KeepAlive = false
	}
	return resp
}

// handleConnection owns one accepted TCP (or TLS) connection end to
// end: frame requests, dispatch them, write responses, loop on
// keep-alive, and hand off to the WebSocket frame loop on a successful
// upgrade.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	readerCfg := wire.ReaderConfig{
		BufferCeiling: s.cfg.ReadBufferCeiling,
		MaxBodySize:   s.cfg.MaxBodySize,
		IOTimeout:     s.cfg.IOTimeout,
	}
	r := wire.NewReader(conn, readerCfg)

	for {
		req, status, err := r.Next()
		if err != nil {
			// Peer closed or the read timed out: close silently, no
			// response.
			return
		}
		if status != nil {
			stub := &wire.Request{Version: wire.Version{Major: 1, Minor: 1}}
			resp := s.errorResponse(stub, status.Code, status.Text)
			resp.StatusText = status.Text
			resp.KeepAlive = false
			conn.Write(wire.Serialize(resp))
			return
		}

		resp := s.dispatch(req)
		if _, werr := conn.Write(wire.Serialize(resp)); werr != nil {
			return
		}

		if req.Upgraded {
			s.runWebSocket(req)
			return
		}
		if !resp.KeepAlive {
			return
		}
	}
}

// runWebSocket hands an upgraded connection to the WSHandler stashed
// on the request's session scratch map by HandleWS, tracking it in the
// live-connection registry for the duration of the handler's run.
func (s *Server) runWebSocket(req *Request) {
	raw, ok := req.Session()[wsHandlerSessionKey].(WSHandler)
	if !ok {
		return
	}
	conn := ws.NewConnWithParams(req.Conn, req.PathParams)
	entry := s.sessions.Track(nextSessionID(), conn)
	defer s.sessions.Untrack(entry.ID())
	raw(conn)
}
