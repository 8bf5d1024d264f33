package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLesson(t *testing.T, dir, module, name, text string) {
	t.Helper()
	moduleDir := filepath.Join(dir, module)
	require.NoError(t, os.MkdirAll(moduleDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(moduleDir, name+".md"), []byte(text), 0o644))
}

func Test_Load_Discovers_Modules_And_Lessons(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "fundamentals", "introduction", "# Welcome\n\nHello.\n")

	s := Load(dir, DefaultCatalog())
	mod := s.Module("fundamentals")
	require.NotNil(t, mod)
	assert.Equal(t, []string{"introduction"}, mod.Lessons)
	assert.Equal(t, "Welcome", mod.Data["introduction"].Title)
	assert.Contains(t, mod.Data["introduction"].HTML, "<h1>Welcome</h1>")
}

func Test_Catalog_Orders_Lessons_Regardless_Of_Discovery_Order(t *testing.T) {
	dir := t.TempDir()
	// ReadDir enumerates lexically, so on disk these come back b-ish first.
	writeLesson(t, dir, "fundamentals", "sockets", "# Sockets\n")
	writeLesson(t, dir, "fundamentals", "introduction", "# Intro\n")
	writeLesson(t, dir, "fundamentals", "http-basics", "# HTTP\n")

	s := Load(dir, DefaultCatalog())
	assert.Equal(t, []string{"introduction", "sockets", "http-basics"}, s.Module("fundamentals").Lessons)
}

func Test_Custom_Catalog_Beats_Lexical_Order(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "mod", "a", "# A\n")
	writeLesson(t, dir, "mod", "b", "# B\n")

	cat := Catalog{Modules: []string{"mod"}, Lessons: map[string][]string{"mod": {"b", "a"}}}
	s := Load(dir, cat)
	assert.Equal(t, []string{"b", "a"}, s.Module("mod").Lessons)
}

func Test_Unknown_Lessons_Append_In_Discovery_Order(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "fundamentals", "introduction", "# Intro\n")
	writeLesson(t, dir, "fundamentals", "zz-extra", "# Extra\n")
	writeLesson(t, dir, "fundamentals", "aa-extra", "# Extra\n")

	s := Load(dir, DefaultCatalog())
	assert.Equal(t, []string{"introduction", "aa-extra", "zz-extra"}, s.Module("fundamentals").Lessons)
}

func Test_Module_Absent_From_Catalog_Keeps_Discovery_Order(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "extras", "beta", "# Beta\n")
	writeLesson(t, dir, "extras", "alpha", "# Alpha\n")

	s := Load(dir, DefaultCatalog())
	require.NotNil(t, s.Module("extras"))
	assert.Equal(t, []string{"alpha", "beta"}, s.Module("extras").Lessons)
	// Unknown modules come after every catalog module in the iteration order.
	assert.Equal(t, "extras", s.Order[len(s.Order)-1])
}

func Test_Module_Order_Follows_Catalog(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "deployment", "scaling", "# S\n")
	writeLesson(t, dir, "fundamentals", "introduction", "# I\n")

	s := Load(dir, DefaultCatalog())
	assert.Equal(t, []string{"fundamentals", "deployment"}, s.Order)
}

func Test_Non_Markdown_Files_Are_Ignored(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "fundamentals", "introduction", "# Intro\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fundamentals", "notes.txt"), []byte("skip"), 0o644))

	s := Load(dir, DefaultCatalog())
	assert.Equal(t, []string{"introduction"}, s.Module("fundamentals").Lessons)
}

func Test_Missing_Root_Falls_Back_To_Builtin_Catalog(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope"), DefaultCatalog())

	// os.ReadDir on a missing path fails, which triggers the fallback store.
	assert.Equal(t, DefaultCatalog().Modules, s.Order)
	html := s.LessonHTML("fundamentals", "sockets")
	assert.Contains(t, html, "Lesson content is not available.")
	assert.Equal(t, 16, s.LessonCount())
}

func Test_LessonHTML_Not_Found_Snippets(t *testing.T) {
	dir := t.TempDir()
	writeLesson(t, dir, "fundamentals", "introduction", "# Intro\n")

	s := Load(dir, DefaultCatalog())
	assert.Contains(t, s.LessonHTML("nope", "x"), "Module Not Found")
	assert.Contains(t, s.LessonHTML("fundamentals", "nope"), "Lesson Not Found")
	assert.Contains(t, s.LessonHTML("fundamentals", "introduction"), "<h1>Intro</h1>")
}

func Test_Title_Defaults_When_No_Heading(t *testing.T) {
	assert.Equal(t, "Untitled Lesson", ExtractTitle("no heading here\n"))
	assert.Equal(t, "My Lesson", ExtractTitle("intro\n# My Lesson\nbody\n"))
}

func Test_Tags_Match_Hash_Word_Tokens(t *testing.T) {
	tags := ExtractTags("# Title\n\nwe cover #sockets and #threading here\n")
	assert.Contains(t, tags, "sockets")
	assert.Contains(t, tags, "threading")
}

func Test_Catalog_Roundtrip_From_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"modules": ["m1"],
		"lessons": {"m1": ["l2", "l1"]},
		"moduleTitles": {"m1": "Module One"},
		"lessonTitles": {"l1": "Lesson One"}
	}`), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, cat.Modules)
	assert.Equal(t, []string{"l2", "l1"}, cat.Lessons["m1"])
	assert.Equal(t, "Module One", cat.ModuleTitle("m1"))
	assert.Equal(t, "Lesson One", cat.LessonTitle("l1"))
	assert.Equal(t, "l2", cat.LessonTitle("l2"))
}

func Test_LoadCatalog_Missing_File(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
