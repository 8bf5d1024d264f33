package content

import "strings"

// Navigation builds the course navigation block for one lesson page: the
// module tab strip, the current module's lesson list, and previous/next
// links. An unknown module yields an empty string; the caller degrades to a
// page without navigation.
func (s *Store) Navigation(module, currentLesson string) string {
	mod, ok := s.Modules[module]
	if !ok {
		return ""
	}

	var nav strings.Builder
	nav.WriteString(`<div class="course-navigation">`)
	nav.WriteString(`<div class="nav-header">`)
	nav.WriteString(`<h2>Server Development Course</h2>`)
	nav.WriteString(`<div class="breadcrumb">`)
	nav.WriteString(`<a href="/">Home</a> &rarr; `)
	nav.WriteString(`<a href="/#course-overview">Course</a> &rarr; `)
	nav.WriteString(`<span class="current-module">` + module + `</span>`)
	nav.WriteString(`</div></div>`)

	nav.WriteString(s.moduleTabs(module))
	nav.WriteString(s.lessonList(mod, currentLesson))

	prev, next := s.PrevNext(module, currentLesson)
	nav.WriteString(`<div class="lesson-navigation">`)
	if prev != "" {
		nav.WriteString(`<a href="/course/` + module + `/` + prev + `" class="nav-btn prev-btn">&larr; Previous</a>`)
	}
	if next != "" {
		nav.WriteString(`<a href="/course/` + module + `/` + next + `" class="nav-btn next-btn">Next &rarr;</a>`)
	}
	nav.WriteString(`</div>`)

	nav.WriteString(`</div>`)
	return nav.String()
}

// moduleTabs lists every module in canonical order, each tab linking to the
// module's first lesson, with the current module marked active.
func (s *Store) moduleTabs(current string) string {
	var b strings.Builder
	b.WriteString(`<div class="module-tabs"><ul>`)
	for _, name := range s.Order {
		mod, ok := s.Modules[name]
		if !ok {
			continue
		}
		active := ""
		if name == current {
			active = ` class="active"`
		}
		first := "introduction"
		if len(mod.Lessons) > 0 {
			first = mod.Lessons[0]
		}
		b.WriteString(`<li` + active + `><a href="/course/` + name + `/` + first + `">` + s.Catalog.ModuleTitle(name) + `</a></li>`)
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// lessonList renders the ordered lessons of a module with the current one
// marked active.
func (s *Store) lessonList(mod *Module, current string) string {
	var b strings.Builder
	b.WriteString(`<div class="module-navigation">`)
	b.WriteString(`<h3>Module: ` + s.Catalog.ModuleTitle(mod.Name) + `</h3>`)
	b.WriteString(`<ul class="lesson-list">`)
	for _, name := range mod.Lessons {
		active := ""
		if name == current {
			active = ` class="active"`
		}
		b.WriteString(`<li` + active + `><a href="/course/` + mod.Name + `/` + name + `">` + s.Catalog.LessonTitle(name) + `</a></li>`)
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// PrevNext returns the lesson ids before and after currentLesson in its
// module's ordered list. Either side is empty at the corresponding boundary,
// for an unknown module, or for a lesson not in the list.
func (s *Store) PrevNext(module, currentLesson string) (prev, next string) {
	mod, ok := s.Modules[module]
	if !ok {
		return "", ""
	}
	for i, name := range mod.Lessons {
		if name != currentLesson {
			continue
		}
		if i > 0 {
			prev = mod.Lessons[i-1]
		}
		if i+1 < len(mod.Lessons) {
			next = mod.Lessons[i+1]
		}
		return prev, next
	}
	return "", ""
}
