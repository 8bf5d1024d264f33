// Package server owns the listening socket, the route table, and the
// per-connection request/response cycle.
package server

import (
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/xaitan80/courseserver/internal/content"
	"github.com/xaitan80/courseserver/internal/headers"
	"github.com/xaitan80/courseserver/internal/logger"
	"github.com/xaitan80/courseserver/internal/request"
	"github.com/xaitan80/courseserver/internal/response"
	"github.com/xaitan80/courseserver/internal/site"
)

// readBufferSize bounds one request read. Anything beyond it is silently
// truncated; Content-Length is not honored for body framing.
const readBufferSize = 4096

const (
	coursePrefix = "/course/"
	cssPrefix    = "/css/"
	jsPrefix     = "/js/"
)

// Handler is a registered route handler: (body, headers) in, body out.
// Handlers must be registered before Start; the table is read-only while
// the server runs.
type Handler func(body string, hdrs headers.Headers) string

// Server accepts TCP connections and serves the minimal HTTP/1.1 subset.
type Server struct {
	port      int
	staticDir string
	store     *content.Store
	routes    map[string]map[string]Handler

	mu      sync.Mutex
	ln      net.Listener
	running bool
	closed  atomic.Bool
	done    chan struct{}
}

// New creates an unstarted server around an already-loaded content store.
func New(port int, staticDir string, store *content.Store) *Server {
	return &Server{
		port:      port,
		staticDir: staticDir,
		store:     store,
		routes:    make(map[string]map[string]Handler),
	}
}

// AddRoute registers a handler for an exact (method, path) pair. A second
// registration for the same pair overwrites the first.
func (s *Server) AddRoute(method, path string, h Handler) {
	if s.routes[method] == nil {
		s.routes[method] = make(map[string]Handler)
	}
	s.routes[method][path] = h
}

// Start binds the listening socket and begins accepting connections in a
// background goroutine. Calling Start while the server is already running
// is a no-op. A bind failure is returned as an error and leaves no
// partially-running state.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		logger.Warn("server already running", "port", s.port)
		return nil
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.port, err)
	}

	s.ln = ln
	s.running = true
	s.closed.Store(false)
	s.done = make(chan struct{})
	logger.Info("server started", "addr", ln.Addr().String())
	go s.acceptLoop(ln, s.done)
	return nil
}

// Stop halts acceptance, closes the listening socket to unblock Accept, and
// waits for the accept loop to exit. It is safe to call from any goroutine,
// including a signal handler, and safe to call more than once.
//
// Stop does not wait for in-flight per-connection goroutines: workers are
// spawned detached and a slow client keeps its goroutine alive until it
// finishes or disconnects. That shutdown gap is part of the contract.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.closed.Store(true)
	err := s.ln.Close()
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done
	logger.Info("server stopped")
	return err
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// acceptLoop runs until the listener closes. Accept failures while running
// are logged and acceptance continues.
func (s *Server) acceptLoop(ln net.Listener, done chan struct{}) {
	defer close(done)
	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			logger.Warn("accept failed", "error", err)
			continue
		}
		go s.handle(conn)
	}
}

// handle serves exactly one request: a single bounded read, lenient parse,
// dispatch, framed write, close. There is no request timeout; an
// unresponsive client occupies this goroutine indefinitely.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		return
	}

	req := request.Parse(buf[:n])
	status, contentType, body := s.dispatch(req)
	logger.Debug("request", "method", req.RequestLine.Method, "path", req.RequestLine.RequestTarget, "status", int(status))

	rw := response.NewWriter(conn)
	if err := rw.Write(status, contentType, body); err != nil {
		logger.Debug("response write failed", "error", err)
	}
}

// dispatch resolves a request to (status, content type, body). The course
// and static-asset prefixes are checked before the route table; table
// lookup is exact and case-sensitive.
func (s *Server) dispatch(req *request.Request) (response.StatusCode, string, string) {
	method := req.RequestLine.Method
	path := req.RequestLine.RequestTarget

	if strings.HasPrefix(path, coursePrefix) {
		rest := path[len(coursePrefix):]
		slash := strings.IndexByte(rest, '/')
		if slash == -1 {
			return response.StatusBadRequest, "text/plain", "Invalid course path"
		}
		module, lesson := rest[:slash], rest[slash+1:]
		return response.StatusOK, "text/html", site.CoursePage(s.store, module, lesson)
	}

	if strings.HasPrefix(path, cssPrefix) || strings.HasPrefix(path, jsPrefix) {
		return s.serveStatic(path)
	}

	if handlers, ok := s.routes[method]; ok {
		if h, ok := handlers[path]; ok {
			body := h(req.Body, req.Headers)
			switch {
			case path == "/":
				return response.StatusOK, "text/html", site.Layout("Server Development Course", body)
			case path == "/health" || strings.HasPrefix(path, "/api/"):
				return response.StatusOK, "application/json", body
			}
			return response.StatusOK, "text/plain", body
		}
	}

	// The path may exist under a different method.
	for m, handlers := range s.routes {
		if m == method {
			continue
		}
		if _, ok := handlers[path]; ok {
			return response.StatusMethodNotAllowed, "text/plain", "Method Not Allowed"
		}
	}
	return response.StatusNotFound, "text/plain", "Not Found"
}

// serveStatic reads a file under the static root verbatim, with the content
// type inferred from the path.
func (s *Server) serveStatic(path string) (response.StatusCode, string, string) {
	data, err := os.ReadFile(s.staticDir + path)
	if err != nil {
		return response.StatusNotFound, mimeType(path), "File not found"
	}
	return response.StatusOK, mimeType(path), string(data)
}

func mimeType(path string) string {
	switch {
	case strings.Contains(path, ".html"):
		return "text/html"
	case strings.Contains(path, ".css"):
		return "text/css"
	case strings.Contains(path, ".json"):
		return "application/json"
	case strings.Contains(path, ".js"):
		return "application/javascript"
	}
	return "text/plain"
}
