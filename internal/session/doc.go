// Package session tracks live WebSocket connections for cwist's server
// facade: connection counting and close-all-on-shutdown.
package session
