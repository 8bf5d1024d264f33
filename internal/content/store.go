// Package content discovers lesson markdown on disk, renders it once at
// startup, and serves the resulting catalog to every connection without
// locking. The Store must never be mutated after Load returns; any future
// hot-reload path has to introduce its own synchronization first.
package content

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/xaitan80/courseserver/internal/logger"
	"github.com/xaitan80/courseserver/internal/markdown"
)

// Lesson is one markdown document with its cached rendering.
type Lesson struct {
	Title   string
	Content string
	HTML    string
	Tags    []string
}

// Module is a named group of lessons in presentation order.
type Module struct {
	Name    string
	Lessons []string
	Data    map[string]Lesson
}

// Store is the immutable in-memory catalog of modules and lessons.
type Store struct {
	Order   []string
	Modules map[string]*Module
	Catalog Catalog
}

var (
	titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	tagRe   = regexp.MustCompile(`#(\w+)`)
)

// Load scans dir for lesson content. If dir is empty, several candidate
// locations are probed and the first existing directory wins. When no
// lessons directory exists at all the store is built from the catalog with
// placeholder content so the server stays partially functional; that is a
// degrade-gracefully policy, not an error.
func Load(dir string, cat Catalog) *Store {
	s := &Store{Modules: make(map[string]*Module), Catalog: cat}

	root := dir
	if root == "" {
		root = findLessonsRoot()
	}
	if root == "" {
		logger.Warn("no lessons directory found, using built-in fallback catalog")
		s.loadFallback()
		return s
	}
	logger.Info("loading lessons", "dir", root)

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Error("reading lessons directory failed, using fallback", "dir", root, "error", err)
		s.loadFallback()
		return s
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		mod := &Module{Name: entry.Name(), Data: make(map[string]Lesson)}
		s.loadModuleDir(mod, filepath.Join(root, entry.Name()))
		sortLessons(mod, cat)
		s.Modules[mod.Name] = mod
	}
	s.Order = sortModules(s.Modules, cat)

	logger.Info("lessons loaded", "modules", len(s.Modules))
	return s
}

// findLessonsRoot probes the candidate lesson locations relative to the
// working directory.
func findLessonsRoot() string {
	candidates := []string{
		"lessons",
		filepath.Join("..", "lessons"),
		filepath.Join("..", "..", "lessons"),
		"./lessons",
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	return ""
}

func (s *Store) loadModuleDir(mod *Module, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("reading module directory failed", "dir", dir, "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		text, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Error("reading lesson failed, skipping", "file", entry.Name(), "error", err)
			continue
		}
		raw := string(text)
		mod.Lessons = append(mod.Lessons, name)
		mod.Data[name] = Lesson{
			Title:   ExtractTitle(raw),
			Content: raw,
			HTML:    markdown.Render(raw),
			Tags:    ExtractTags(raw),
		}
	}
}

// loadFallback builds placeholder modules straight from the catalog.
func (s *Store) loadFallback() {
	for _, modName := range s.Catalog.Modules {
		mod := &Module{Name: modName, Data: make(map[string]Lesson)}
		for _, lessonName := range s.Catalog.Lessons[modName] {
			mod.Lessons = append(mod.Lessons, lessonName)
			mod.Data[lessonName] = Lesson{
				Title: s.Catalog.LessonTitle(lessonName),
				HTML:  "<h2>" + lessonName + "</h2><p>Lesson content is not available.</p>",
			}
		}
		s.Modules[modName] = mod
		s.Order = append(s.Order, modName)
	}
}

// ExtractTitle returns the text of the first level-1 heading, or a default.
func ExtractTitle(md string) string {
	if m := titleRe.FindStringSubmatch(md); m != nil {
		return m[1]
	}
	return "Untitled Lesson"
}

// ExtractTags returns every "#word" token in the text. Heading markers that
// touch a word (the second '#' of "## Sub") count as tags too.
func ExtractTags(md string) []string {
	var tags []string
	for _, m := range tagRe.FindAllStringSubmatch(md, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// sortLessons reorders a module's lessons per the catalog: known lessons
// first in catalog order, unknown ones appended in discovery order.
func sortLessons(mod *Module, cat Catalog) {
	desired, ok := cat.Lessons[mod.Name]
	if !ok {
		return
	}
	var sorted []string
	for _, name := range desired {
		if contains(mod.Lessons, name) {
			sorted = append(sorted, name)
		}
	}
	for _, name := range mod.Lessons {
		if !contains(sorted, name) {
			sorted = append(sorted, name)
		}
	}
	mod.Lessons = sorted
}

// sortModules produces the module iteration order: catalog order first,
// then any remaining modules in lexical map-key order.
func sortModules(modules map[string]*Module, cat Catalog) []string {
	var order []string
	for _, name := range cat.Modules {
		if _, ok := modules[name]; ok {
			order = append(order, name)
		}
	}
	var rest []string
	for name := range modules {
		if !contains(order, name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Module returns the named module, or nil if unknown.
func (s *Store) Module(name string) *Module {
	return s.Modules[name]
}

// LessonHTML returns the cached rendering for a lesson. Misses return
// not-found snippets rather than errors.
func (s *Store) LessonHTML(module, lesson string) string {
	mod, ok := s.Modules[module]
	if !ok {
		return "<h2>Module Not Found</h2><p>This module is not available.</p>"
	}
	l, ok := mod.Data[lesson]
	if !ok {
		return "<h2>Lesson Not Found</h2><p>This lesson is not available.</p>"
	}
	return l.HTML
}

// LessonCount returns the total number of lessons across all modules.
func (s *Store) LessonCount() int {
	n := 0
	for _, mod := range s.Modules {
		n += len(mod.Lessons)
	}
	return n
}
