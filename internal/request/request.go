package request

import (
	"strings"

	"github.com/xaitan80/courseserver/internal/headers"
)

// Request is one parsed HTTP request. It lives for the duration of a single
// connection and is discarded after handling.
type Request struct {
	RequestLine RequestLine
	Headers     headers.Headers
	Body        string
}

// RequestLine holds the parsed first line of the request. The version is
// recorded but not acted on beyond its presence.
type RequestLine struct {
	Method        string
	RequestTarget string
	HttpVersion   string
}

// Parse parses an HTTP request from a single bounded read buffer.
//
// The parser is deliberately lenient: it never fails. Malformed input leaves
// the corresponding fields as empty strings and routing downstream turns that
// into a 400/404 rather than a dropped connection. Content-Length is not
// honored for body framing, the body is reconstructed line by line (not
// byte-exact for binary payloads), and anything beyond the caller's read
// buffer has already been truncated.
func Parse(buf []byte) *Request {
	r := &Request{Headers: headers.NewHeaders()}
	s := newScanner(string(buf))

	s.scanRequestLine(r)
	s.scanHeaderLines(r)
	s.scanBody(r)

	return r
}

// scanner walks the request buffer one line at a time.
type scanner struct {
	lines []string
	pos   int
}

func newScanner(raw string) *scanner {
	lines := strings.Split(raw, "\n")
	// A buffer ending in '\n' yields a final empty element; drop it so the
	// body does not grow a phantom line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &scanner{lines: lines}
}

func (s *scanner) next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

// scanRequestLine splits the first line on whitespace into method, target and
// version. Missing fields stay empty.
func (s *scanner) scanRequestLine(r *Request) {
	line, ok := s.next()
	if !ok {
		return
	}
	parts := strings.Fields(line)
	if len(parts) > 0 {
		r.RequestLine.Method = parts[0]
	}
	if len(parts) > 1 {
		r.RequestLine.RequestTarget = parts[1]
	}
	if len(parts) > 2 {
		r.RequestLine.HttpVersion = strings.TrimPrefix(parts[2], "HTTP/")
	}
}

// scanHeaderLines consumes header lines up to the first blank line.
func (s *scanner) scanHeaderLines(r *Request) {
	for {
		line, ok := s.next()
		if !ok {
			return
		}
		if line == "" || line == "\r" {
			return
		}
		r.Headers.ParseLine(line)
	}
}

// scanBody joins every remaining line with a trailing newline. A carriage
// return inside a CRLF body line survives; the body is not byte-exact.
func (s *scanner) scanBody(r *Request) {
	var b strings.Builder
	for {
		line, ok := s.next()
		if !ok {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	r.Body = b.String()
}
