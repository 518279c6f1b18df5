package tlsconf

import (
	"crypto/tls"
	"net"
)

// WrapListener presents the same net.Listener contract as the plain
// TCP listener, over an authenticated TLS stream. The worker that
// accepts from the returned listener performs the handshake implicitly
// on first Read/Write; a failed handshake surfaces as a read/write
// error and the worker closes the socket the same way it closes any
// other connection error.
func WrapListener(ln net.Listener, cfg *tls.Config) net.Listener {
	return tls.NewListener(ln, cfg)
}
