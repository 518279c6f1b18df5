// Package tlsconf builds the server-side crypto/tls.Config cwist wraps
// a plain TCP listener with when TLS is enabled: a certificate and key
// loaded from PEM files at startup.
package tlsconf

import (
	"crypto/tls"
	"fmt"
)

// Load reads a certificate/key pair from PEM files and returns a
// tls.Config ready to hand to tls.NewListener. tls.LoadX509KeyPair
// itself verifies the certificate and private key agree; a mismatch
// surfaces wrapped in the underlying library's own error text.
func Load(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("cwist: tls init: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"http/1.1"},
	}, nil
}
