package ws_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"

	"cwist"
	"cwist/ws"
)

// TestUpgradeInteropWithGorillaClient exercises cwist's handshake and
// frame codec against an independent client implementation rather than
// only testing them against themselves.
func TestUpgradeInteropWithGorillaClient(t *testing.T) {
	cfg := cwist.DefaultConfig()
	cfg.ListenAddr = "127.0.0.1:0"
	srv := cwist.New(cfg)

	echoed := make(chan string, 1)
	srv.HandleWS("/echo", func(conn *ws.Conn) {
		frame, err := conn.ReadFrame()
		if err != nil || frame == nil {
			return
		}
		echoed <- string(frame.Payload)
		conn.Send(ws.OpText, frame.Payload)
	})

	go srv.Serve()
	select {
	case <-srv.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for listener")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	url := "ws://" + srv.Addr().String() + "/echo"
	dialer := gorilla.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, resp, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("gorilla dial failed: %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	if err := conn.WriteMessage(gorilla.TextMessage, []byte("hi")); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-echoed:
		if got != "hi" {
			t.Fatalf("server saw payload %q, want %q", got, "hi")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server to receive frame")
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read echo: %v", err)
	}
	if string(msg) != "hi" {
		t.Fatalf("echoed payload = %q, want %q", msg, "hi")
	}
}
