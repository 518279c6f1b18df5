package ws

import (
	"net"
	"testing"
)

func TestConnStartsOpenAndSends(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	c := NewConn(server)
	if c.State() != StateOpen {
		t.Fatal("expected initial state OPEN")
	}

	done := make(chan struct{})
	go func() {
		buf := make([]byte, 64)
		client.Read(buf)
		close(done)
	}()

	if err := c.Send(OpText, []byte("hi")); err != nil {
		t.Fatal(err)
	}
	<-done
}

func TestConnReadFrameReceivesClientFrame(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	frame := buildMaskedFrame(OpText, []byte("hi"))
	go client.Write(frame)

	c := NewConn(server)
	got, err := c.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Payload) != "hi" {
		t.Fatalf("payload=%q", got.Payload)
	}
}

func TestConnReadFrameCloseTransitionsState(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	frame := buildMaskedFrame(OpClose, nil)
	go client.Write(frame)

	c := NewConn(server)
	got, err := c.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if got.Opcode != OpClose {
		t.Fatalf("opcode=%v", got.Opcode)
	}
	if c.State() != StateClosing {
		t.Fatalf("state=%v", c.State())
	}
}

func TestConnSendAfterCloseFails(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	c := NewConn(server)
	go func() {
		buf := make([]byte, 64)
		for {
			if _, err := client.Read(buf); err != nil {
				return
			}
		}
	}()

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Send(OpText, []byte("late")); err != ErrClosed {
		t.Fatalf("err=%v", err)
	}
}
