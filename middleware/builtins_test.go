package middleware

import (
	"log"
	"strings"
	"testing"

	"cwist/wire"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	c := NewChain()
	c.Use(RequestID())

	resp := c.Dispatch(&wire.Request{}, finalOK)
	id, _ := resp.Headers.Get(requestIDHeader)
	if len(id) != idLength {
		t.Fatalf("id=%q len=%d", id, len(id))
	}
}

func TestRequestIDPreservesExisting(t *testing.T) {
	req := &wire.Request{}
	req.Headers.Set(requestIDHeader, "client-supplied-id")

	c := NewChain()
	c.Use(RequestID())
	resp := c.Dispatch(req, finalOK)

	id, _ := resp.Headers.Get(requestIDHeader)
	if id != "client-supplied-id" {
		t.Fatalf("id=%q", id)
	}
}

func TestAccessLogWritesOneLine(t *testing.T) {
	var sb strings.Builder
	logger := log.New(&sb, "", 0)

	c := NewChain()
	c.Use(AccessLog(logger))
	c.Dispatch(&wire.Request{Method: wire.MethodGET, Path: "/x"}, finalOK)

	out := sb.String()
	if !strings.Contains(out, "method=GET") || !strings.Contains(out, "path=/x") || !strings.Contains(out, "status=200") {
		t.Fatalf("log output missing fields: %q", out)
	}
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(2)
	c := NewChain()
	c.Use(rl.Middleware())

	req := &wire.Request{RemoteAddr: "1.2.3.4:5555"}
	for i := 0; i < 2; i++ {
		resp := c.Dispatch(req, finalOK)
		if resp.StatusCode != 200 {
			t.Fatalf("request %d: status=%d", i, resp.StatusCode)
		}
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(1)
	c := NewChain()
	c.Use(rl.Middleware())

	req := &wire.Request{RemoteAddr: "1.2.3.4:5555"}
	c.Dispatch(req, finalOK)
	resp := c.Dispatch(req, finalOK)
	if resp.StatusCode != 429 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if v, _ := resp.Headers.Get("Retry-After"); v != "60" {
		t.Fatalf("retry-after=%q", v)
	}
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(1)
	c := NewChain()
	c.Use(rl.Middleware())

	req1 := &wire.Request{RemoteAddr: "1.1.1.1:1"}
	req2 := &wire.Request{RemoteAddr: "2.2.2.2:2"}

	if resp := c.Dispatch(req1, finalOK); resp.StatusCode != 200 {
		t.Fatalf("req1 status=%d", resp.StatusCode)
	}
	if resp := c.Dispatch(req2, finalOK); resp.StatusCode != 200 {
		t.Fatalf("req2 status=%d", resp.StatusCode)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	c := NewChain()
	c.Use(CORS())

	called := false
	final := func(req *wire.Request) *wire.Response {
		called = true
		return finalOK(req)
	}

	resp := c.Dispatch(&wire.Request{Method: wire.MethodOPTIONS}, final)
	if resp.StatusCode != 204 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if called {
		t.Fatal("expected handler to be skipped on preflight")
	}
	if v, _ := resp.Headers.Get("Access-Control-Allow-Origin"); v != "*" {
		t.Fatalf("origin=%q", v)
	}
}

func TestCORSSetsOriginOnNormalRequest(t *testing.T) {
	c := NewChain()
	c.Use(CORS())

	resp := c.Dispatch(&wire.Request{Method: wire.MethodGET}, finalOK)
	if v, _ := resp.Headers.Get("Access-Control-Allow-Origin"); v != "*" {
		t.Fatalf("origin=%q", v)
	}
}
