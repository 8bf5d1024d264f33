package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/xaitan80/courseserver/internal/config"
	"github.com/xaitan80/courseserver/internal/content"
	"github.com/xaitan80/courseserver/internal/headers"
	"github.com/xaitan80/courseserver/internal/logger"
	"github.com/xaitan80/courseserver/internal/server"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// The first CLI argument overrides the configured port.
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			logger.Error("invalid port number, must be between 1 and 65535", "arg", os.Args[1])
			os.Exit(1)
		}
		cfg.Port = port
	}

	cat := content.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := content.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			logger.Error("loading catalog failed, using built-in ordering", "path", cfg.CatalogPath, "error", err)
		} else {
			cat = loaded
		}
	}

	store := content.Load(cfg.LessonsDir, cat)

	srv := server.New(cfg.Port, cfg.StaticDir, store)
	registerRoutes(srv, store)

	if err := srv.Start(); err != nil {
		logger.Error("starting server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("serving course content", "port", cfg.Port, "modules", len(store.Order), "lessons", store.LessonCount())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("shutting down", "signal", sig.String())
	if err := srv.Stop(); err != nil {
		logger.Error("stopping server failed", "error", err)
	}
}

// registerRoutes installs the static route surface. Everything here runs
// before Start; the table is never touched afterwards.
func registerRoutes(srv *server.Server, store *content.Store) {
	srv.AddRoute("GET", "/", func(body string, hdrs headers.Headers) string {
		return homePage(store)
	})
	srv.AddRoute("GET", "/health", func(body string, hdrs headers.Headers) string {
		return healthJSON(store)
	})
	srv.AddRoute("GET", "/api/users", func(body string, hdrs headers.Headers) string {
		return usersJSON
	})
	for _, id := range []string{"1", "2", "3"} {
		user := userJSON(id)
		srv.AddRoute("GET", "/api/users/"+id, func(body string, hdrs headers.Headers) string {
			return user
		})
	}
}

// homePage is the course landing page body; the server wraps it in the
// site layout.
func homePage(store *content.Store) string {
	page := `<div class="hero-section">` +
		`<h1>Learn Server Development</h1>` +
		`<p class="hero-subtitle">Build production-ready HTTP servers from scratch</p>` +
		`<div class="hero-buttons">` +
		`<a href="/course/fundamentals/introduction" class="btn btn-primary">Start Learning</a>` +
		`<a href="/api/users" class="btn btn-secondary">View API</a>` +
		`</div>` +
		`</div>` +
		`<div class="course-overview" id="course-overview">` +
		`<h2>Course Modules</h2>` +
		`<div class="module-list">`

	for i, name := range store.Order {
		mod := store.Modules[name]
		first := "introduction"
		if len(mod.Lessons) > 0 {
			first = mod.Lessons[0]
		}
		page += fmt.Sprintf(`<div class="module-item"><h3>%d. %s</h3>`+
			`<a href="/course/%s/%s" class="module-link">Start Module &rarr;</a></div>`,
			i+1, store.Catalog.ModuleTitle(name), name, first)
	}

	page += `</div></div>`
	return page
}

func healthJSON(store *content.Store) string {
	return fmt.Sprintf(`{"status": "healthy", "timestamp": %d, "uptime": "running", "version": "1.0.0", "modules": %d, "lessons": %d}`,
		time.Now().Unix(), len(store.Order), store.LessonCount())
}

const usersJSON = `{"success": true, "count": 3, "users": [` +
	`{"id": "1", "name": "John Doe", "email": "john@example.com", "age": 30}, ` +
	`{"id": "2", "name": "Jane Smith", "email": "jane@example.com", "age": 25}, ` +
	`{"id": "3", "name": "Bob Johnson", "email": "bob@example.com", "age": 35}]}`

func userJSON(id string) string {
	users := map[string]string{
		"1": `{"id": "1", "name": "John Doe", "email": "john@example.com", "age": 30}`,
		"2": `{"id": "2", "name": "Jane Smith", "email": "jane@example.com", "age": 25}`,
		"3": `{"id": "3", "name": "Bob Johnson", "email": "bob@example.com", "age": 35}`,
	}
	return fmt.Sprintf(`{"success": true, "user": %s}`, users[id])
}
