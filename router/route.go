// Package router implements cwist's HTTP route table: a fixed-size hashed
// bucket array for literal routes, a linear list for parameterized routes,
// and static file serving.
package router

import (
	"strings"

	"cwist/wire"
)

// Handler processes a request and produces a response.
type Handler func(req *wire.Request) *wire.Response

type routeKind int

const (
	kindHandler routeKind = iota
	kindStatic
)

type route struct {
	method   wire.Method
	pattern  string
	segments []string // precomputed pattern segments for parameterized routes
	handler  Handler
	kind     routeKind

	// static file route fields
	urlPrefix string
	fsRoot    string
}

func isParameterized(pattern string) bool {
	for _, seg := range strings.Split(pattern, "/") {
		if strings.HasPrefix(seg, ":") {
			return true
		}
	}
	return false
}

func splitSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
