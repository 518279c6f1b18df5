package middleware

import (
	"testing"

	"cwist/wire"
)

func finalOK(req *wire.Request) *wire.Response {
	return wire.NewResponse(req.Version, 200)
}

func TestChainRunsInOrder(t *testing.T) {
	var order []string
	c := NewChain()
	c.Use(func(req *wire.Request, next Next) *wire.Response {
		order = append(order, "a-before")
		resp := next(req)
		order = append(order, "a-after")
		return resp
	})
	c.Use(func(req *wire.Request, next Next) *wire.Response {
		order = append(order, "b-before")
		resp := next(req)
		order = append(order, "b-after")
		return resp
	})

	c.Dispatch(&wire.Request{}, finalOK)

	want := []string{"a-before", "b-before", "b-after", "a-after"}
	if len(order) != len(want) {
		t.Fatalf("order=%v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order=%v want=%v", order, want)
		}
	}
}

func TestChainShortCircuit(t *testing.T) {
	called := false
	c := NewChain()
	c.Use(func(req *wire.Request, next Next) *wire.Response {
		return wire.NewResponse(req.Version, 204)
	})
	c.Use(func(req *wire.Request, next Next) *wire.Response {
		called = true
		return next(req)
	})

	resp := c.Dispatch(&wire.Request{}, finalOK)
	if resp.StatusCode != 204 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if called {
		t.Fatal("expected second middleware to be skipped")
	}
}

func TestChainEmptyReachesFinal(t *testing.T) {
	c := NewChain()
	resp := c.Dispatch(&wire.Request{}, finalOK)
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
}
