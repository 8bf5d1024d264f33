// Package site assembles full HTML pages around rendered lesson content.
package site

import (
	"fmt"
	"strings"

	"github.com/xaitan80/courseserver/internal/content"
)

// Layout wraps content in the site document shell: navbar, main content
// area, footer, and the stylesheet/script includes.
func Layout(title, body string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>`)
	b.WriteString(`<html lang="en">`)
	b.WriteString(`<head>`)
	b.WriteString(`<meta charset="UTF-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	b.WriteString(`<title>` + title + `</title>`)
	b.WriteString(`<link rel="stylesheet" href="/css/style.css">`)
	b.WriteString(`<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/themes/prism.min.css">`)
	b.WriteString(`</head>`)
	b.WriteString(`<body>`)
	b.WriteString(`<nav class="navbar">`)
	b.WriteString(`<div class="nav-container">`)
	b.WriteString(`<h1 class="nav-title">Server Development Course</h1>`)
	b.WriteString(`<ul class="nav-menu">`)
	b.WriteString(`<li><a href="/">Home</a></li>`)
	b.WriteString(`<li><a href="/course/fundamentals/introduction">Course</a></li>`)
	b.WriteString(`<li><a href="/api/users">API</a></li>`)
	b.WriteString(`<li><a href="/health">Health</a></li>`)
	b.WriteString(`</ul>`)
	b.WriteString(`</div>`)
	b.WriteString(`</nav>`)
	b.WriteString(`<main class="main-content">`)
	b.WriteString(body)
	b.WriteString(`</main>`)
	b.WriteString(`<footer class="footer">`)
	b.WriteString(`<p>&copy; Server Development Course</p>`)
	b.WriteString(`</footer>`)
	b.WriteString(`<script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/components/prism-core.min.js"></script>`)
	b.WriteString(`<script src="https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/plugins/autoloader/prism-autoloader.min.js"></script>`)
	b.WriteString(`<script src="/js/app.js"></script>`)
	b.WriteString(`</body>`)
	b.WriteString(`</html>`)
	return b.String()
}

// CoursePage builds the full lesson page: module/lesson navigation followed
// by the cached lesson HTML, wrapped in the site layout. Misses surface the
// store's not-found snippets inside an otherwise normal page.
func CoursePage(s *content.Store, module, lesson string) string {
	body := s.LessonHTML(module, lesson)
	nav := s.Navigation(module, lesson)

	var page strings.Builder
	page.WriteString(nav)
	page.WriteString(`<div class="lesson-content">`)
	page.WriteString(body)
	page.WriteString(`</div>`)

	title := "Server Development - " + module + " - " + lesson
	return Layout(title, page.String())
}

// ProgressTracker renders a completion bar over every lesson in the store.
func ProgressTracker(s *content.Store, completed map[string]bool) string {
	total := s.LessonCount()
	done := 0
	for _, name := range s.Order {
		for _, lesson := range s.Modules[name].Lessons {
			if completed[lesson] {
				done++
			}
		}
	}
	percentage := 0
	if total > 0 {
		percentage = done * 100 / total
	}

	var b strings.Builder
	b.WriteString(`<div class="progress-tracker">`)
	b.WriteString(`<h3>Your Progress</h3>`)
	b.WriteString(`<div class="progress-bar">`)
	fmt.Fprintf(&b, `<div class="progress-fill" style="width: %d%%;"></div>`, percentage)
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<p>%d of %d lessons completed (%d%%)</p>`, done, total, percentage)
	b.WriteString(`</div>`)
	return b.String()
}

// CodeEditor renders the interactive editor block embedded in some lessons.
func CodeEditor(language, defaultCode string) string {
	var b strings.Builder
	b.WriteString(`<div class="code-editor">`)
	b.WriteString(`<h3>Interactive Code Editor</h3>`)
	fmt.Fprintf(&b, `<textarea id="code-input" class="code-input" data-language="%s" rows="15">%s</textarea>`, language, defaultCode)
	b.WriteString(`<div class="editor-controls">`)
	b.WriteString(`<button onclick="runCode()" class="btn btn-primary">Run Code</button>`)
	b.WriteString(`<button onclick="resetCode()" class="btn btn-secondary">Reset</button>`)
	b.WriteString(`</div>`)
	b.WriteString(`<div id="output" class="code-output"></div>`)
	b.WriteString(`</div>`)
	return b.String()
}
