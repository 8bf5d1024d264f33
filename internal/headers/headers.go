package headers

import "strings"

// Headers is a simple map of header name to value. Names are stored verbatim
// (lookups are case-sensitive) and a later Set for the same name overwrites
// the earlier value.
type Headers map[string]string

// NewHeaders creates an empty Headers map.
func NewHeaders() Headers {
	return make(Headers)
}

// Set stores a header value. Last write wins.
func (h Headers) Set(key, value string) {
	h[key] = value
}

// Get returns the value for key, or "" if absent.
func (h Headers) Get(key string) string {
	return h[key]
}

// ParseLine parses a single "Name: value" header line into the map.
// The line is split on the first colon only (values can contain ':').
// One trailing carriage return and any leading spaces are stripped from the
// value. Lines without a colon are ignored rather than rejected; the
// surrounding request parser degrades instead of failing.
func (h Headers) ParseLine(line string) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return
	}
	key := line[:colon]
	val := line[colon+1:]
	val = strings.TrimSuffix(val, "\r")
	val = strings.TrimLeft(val, " ")
	h[key] = val
}
