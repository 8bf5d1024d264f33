package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaitan80/courseserver/internal/content"
)

func testStore() *content.Store {
	// A missing root builds the fallback store from the built-in catalog.
	return content.Load("/nonexistent-lessons-root", content.DefaultCatalog())
}

func Test_Layout_Wraps_Body(t *testing.T) {
	html := Layout("My Title", "<p>hello</p>")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>My Title</title>")
	assert.Contains(t, html, `<main class="main-content"><p>hello</p></main>`)
	assert.Contains(t, html, `href="/css/style.css"`)
}

func Test_CoursePage_Contains_Navigation_And_Content(t *testing.T) {
	s := testStore()
	html := CoursePage(s, "fundamentals", "sockets")
	assert.Contains(t, html, `class="course-navigation"`)
	assert.Contains(t, html, `class="lesson-content"`)
	assert.Contains(t, html, "<title>Server Development - fundamentals - sockets</title>")
}

func Test_CoursePage_Unknown_Module(t *testing.T) {
	s := testStore()
	html := CoursePage(s, "nope", "whatever")
	assert.Contains(t, html, "Module Not Found")
	// Navigation degrades to nothing for unknown modules.
	assert.NotContains(t, html, `class="course-navigation"`)
}

func Test_CoursePage_Unknown_Lesson(t *testing.T) {
	s := testStore()
	html := CoursePage(s, "fundamentals", "nope")
	assert.Contains(t, html, "Lesson Not Found")
	assert.Contains(t, html, `class="course-navigation"`)
}

func Test_ProgressTracker_Percentages(t *testing.T) {
	s := testStore()
	require.Equal(t, 16, s.LessonCount())

	html := ProgressTracker(s, map[string]bool{"introduction": true, "sockets": true, "scaling": true, "unknown": true})
	assert.Contains(t, html, "3 of 16 lessons completed (18%)")
	assert.Contains(t, html, `style="width: 18%;"`)
}

func Test_ProgressTracker_Empty(t *testing.T) {
	s := testStore()
	html := ProgressTracker(s, nil)
	assert.Contains(t, html, "0 of 16 lessons completed (0%)")
}

func Test_CodeEditor(t *testing.T) {
	html := CodeEditor("cpp", "int main() {}")
	assert.Contains(t, html, `data-language="cpp"`)
	assert.Contains(t, html, "int main() {}")
	assert.Contains(t, html, "Run Code")
}
