package cwist

import (
	"strconv"
	"sync/atomic"
)

var sessionSeq int64

// nextSessionID returns a process-unique, monotonically increasing
// identifier for the WebSocket connection registry. It need not be
// unguessable — internal/session.Registry uses it only as a map key —
// so a counter is simpler than the request-ID middleware's random
// alphanumeric scheme.
func nextSessionID() string {
	return strconv.FormatInt(atomic.AddInt64(&sessionSeq, 1), 10)
}
