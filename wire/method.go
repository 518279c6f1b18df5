package wire

// Method is the HTTP request method, normalized to a closed set.
// Methods cwist does not recognize parse successfully as
// MethodUnknown — the handler/router layer decides the response
// policy.
type Method string

const (
	MethodGET     Method = "GET"
	MethodPOST    Method = "POST"
	MethodPUT     Method = "PUT"
	MethodDELETE  Method = "DELETE"
	MethodPATCH   Method = "PATCH"
	MethodHEAD    Method = "HEAD"
	MethodOPTIONS Method = "OPTIONS"
	MethodUnknown Method = "UNKNOWN"
)

var knownMethods = map[string]Method{
	"GET":     MethodGET,
	"POST":    MethodPOST,
	"PUT":     MethodPUT,
	"DELETE":  MethodDELETE,
	"PATCH":   MethodPATCH,
	"HEAD":    MethodHEAD,
	"OPTIONS": MethodOPTIONS,
}

// ParseMethod maps a wire token to a Method, defaulting to MethodUnknown.
func ParseMethod(token string) Method {
	if m, ok := knownMethods[token]; ok {
		return m
	}
	return MethodUnknown
}
