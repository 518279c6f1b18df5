package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an HTTP major.minor pair.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "HTTP/x.y" token. It returns ok=false for
// anything else, which the reader turns into a 400.
func ParseVersion(tok string) (Version, bool) {
	const prefix = "HTTP/"
	if !strings.HasPrefix(tok, prefix) {
		return Version{}, false
	}
	rest := tok[len(prefix):]
	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		return Version{}, false
	}
	major, err1 := strconv.Atoi(rest[:dot])
	minor, err2 := strconv.Atoi(rest[dot+1:])
	if err1 != nil || err2 != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor}, true
}

// DefaultKeepAlive returns the keep-alive default for this version when
// no explicit Connection header is present: true for HTTP/1.1+, false
// for HTTP/1.0 and earlier.
func (v Version) DefaultKeepAlive() bool {
	return v.Major > 1 || (v.Major == 1 && v.Minor >= 1)
}
