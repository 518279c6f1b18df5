package middleware

import "cwist/wire"

const corsMaxAge = "86400"

// CORS always sets Access-Control-Allow-Origin: *. For an OPTIONS
// preflight it short-circuits with 204 and the standard
// Allow-Methods/Allow-Headers/Max-Age headers instead of reaching the
// route handler.
func CORS() Middleware {
	return func(req *wire.Request, next Next) *wire.Response {
		if req.Method == wire.MethodOPTIONS {
			resp := wire.NewResponse(req.Version, 204)
			resp.SetHeader("Access-Control-Allow-Origin", "*")
			resp.SetHeader("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			resp.SetHeader("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
			resp.SetHeader("Access-Control-Max-Age", corsMaxAge)
			return resp
		}

		resp := next(req)
		resp.SetHeader("Access-Control-Allow-Origin", "*")
		return resp
	}
}
