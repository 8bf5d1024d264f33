package response

import (
	"fmt"
	"io"
	"strings"
)

// StatusCode is the limited set of HTTP status codes the server emits.
type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusBadRequest          StatusCode = 400
	StatusNotFound            StatusCode = 404
	StatusMethodNotAllowed    StatusCode = 405
	StatusInternalServerError StatusCode = 500
)

var reasonPhrases = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusInternalServerError: "Internal Server Error",
}

// ReasonPhrase returns the reason phrase for code. Codes outside the fixed
// table fall back to the generic server-error phrase; callers must not expect
// full RFC coverage.
func ReasonPhrase(code StatusCode) string {
	if phrase, ok := reasonPhrases[code]; ok {
		return phrase
	}
	return "Internal Server Error"
}

// Build frames a complete HTTP/1.1 response. The header set is fixed:
// Content-Type, Content-Length (always the exact byte length of body),
// permissive CORS, and Connection: close. Keep-alive is never offered.
func Build(code StatusCode, contentType, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", int(code), ReasonPhrase(code))
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(body))
	b.WriteString("Access-Control-Allow-Origin: *\r\n")
	b.WriteString("Connection: close\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// Writer writes framed responses to an underlying connection.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write builds and writes one complete response.
func (rw *Writer) Write(code StatusCode, contentType, body string) error {
	_, err := rw.w.Write(Build(code, contentType, body))
	return err
}
