// Package markdown converts lesson markdown to HTML through a fixed sequence
// of whole-text passes. The order of the passes is load-bearing: each pass
// operates on the accumulated output of the previous ones, not on a syntax
// tree, and the renderer is total — any input string produces some output.
package markdown

import (
	"regexp"
	"strings"
)

// Render applies every transformation pass in order.
func Render(src string) string {
	html := src
	html = renderHeadings(html)
	html = renderCodeBlocks(html)
	html = renderInlineCode(html)
	html = renderBold(html)
	html = renderLists(html)
	html = renderLinks(html)
	html = renderTables(html)
	return html
}

var headingPatterns = []struct {
	re  *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`(?m)^#\s+(.+)$`), "<h1>${1}</h1>"},
	{regexp.MustCompile(`(?m)^##\s+(.+)$`), "<h2>${1}</h2>"},
	{regexp.MustCompile(`(?m)^###\s+(.+)$`), "<h3>${1}</h3>"},
	{regexp.MustCompile(`(?m)^####\s+(.+)$`), "<h4>${1}</h4>"},
}

// renderHeadings turns lines starting with 1-4 '#' characters into h1-h4.
func renderHeadings(src string) string {
	html := src
	for _, p := range headingPatterns {
		html = p.re.ReplaceAllString(html, p.rep)
	}
	return html
}

// renderCodeBlocks replaces triple-backtick fenced blocks with pre/code HTML.
// The text on the opening fence line is the language tag; only cpp/c++ select
// a language class. Block content is copied verbatim, without HTML escaping.
// An unclosed fence is left as literal text.
func renderCodeBlocks(src string) string {
	html := src
	pos := 0
	for {
		start := strings.Index(html[pos:], "```")
		if start == -1 {
			break
		}
		start += pos
		end := strings.Index(html[start+3:], "```")
		if end == -1 {
			break
		}
		end += start + 3

		language := ""
		var code string
		langStart := start + 3
		if nl := strings.IndexByte(html[langStart:end], '\n'); nl != -1 {
			language = strings.Trim(html[langStart:langStart+nl], " \t")
			code = html[langStart+nl+1 : end]
		} else {
			code = html[langStart:end]
		}
		code = strings.Trim(code, " \t\r\n")

		var block string
		if language == "cpp" || language == "c++" {
			block = `<div class="code-example"><pre><code class="language-cpp">` + code + `</code></pre></div>`
		} else {
			block = `<div class="code-example"><pre><code>` + code + `</code></pre></div>`
		}

		html = html[:start] + block + html[end+3:]
		pos = start + len(block)
	}
	return html
}

// renderInlineCode wraps single-backtick spans in <code>. A span whose
// opening backtick immediately follows a closed code-block tag is skipped.
// That is a positional heuristic, not a structural check; nested or
// malformed fences confuse it and that behavior is kept as is.
func renderInlineCode(src string) string {
	html := src
	pos := 0
	for {
		i := strings.Index(html[pos:], "`")
		if i == -1 {
			break
		}
		i += pos
		if i > 0 && strings.HasSuffix(html[:i], "</code>") {
			pos = i + 1
			continue
		}
		j := strings.Index(html[i+1:], "`")
		if j == -1 {
			break
		}
		j += i + 1

		span := "<code>" + html[i+1:j] + "</code>"
		html = html[:i] + span + html[j+1:]
		pos = i + len(span)
	}
	return html
}

// renderBold replaces paired double-asterisk spans with <strong>. An
// unmatched opener is left alone.
func renderBold(src string) string {
	html := src
	pos := 0
	for {
		i := strings.Index(html[pos:], "**")
		if i == -1 {
			break
		}
		i += pos
		j := strings.Index(html[i+2:], "**")
		if j == -1 {
			break
		}
		j += i + 2

		text := html[i+2 : j]
		html = html[:i] + "<strong>" + text + "</strong>" + html[j+2:]
		pos = i + len("<strong></strong>") + len(text)
	}
	return html
}

var (
	ulItemRe = regexp.MustCompile(`(?m)^-\s+(.+)$`)
	olItemRe = regexp.MustCompile(`(?m)^\d+\.\s+(.+)$`)
	ulRunRe  = regexp.MustCompile(`(<li>.*?</li>\s*)+`)
)

// renderLists wraps "- " lines in <li> and merges runs of consecutive <li>
// lines into a single <ul>. "N. " lines are wrapped in <li> afterwards and
// deliberately get no <ol> wrapper; the asymmetry is part of the contract.
func renderLists(src string) string {
	html := src
	html = ulItemRe.ReplaceAllString(html, "<li>${1}</li>")
	html = ulRunRe.ReplaceAllString(html, "<ul>${0}</ul>")
	html = olItemRe.ReplaceAllString(html, "<li>${1}</li>")
	return html
}

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// renderLinks turns [text](url) into anchors.
func renderLinks(src string) string {
	return linkRe.ReplaceAllString(src, `<a href="${2}">${1}</a>`)
}

// renderTables groups consecutive lines that start and end with '|' into a
// table. The line following a table row is dropped when it consists solely
// of '|', '-' and spaces (the header separator). Every other grouped line
// becomes one <tr> of <td> cells.
func renderTables(src string) string {
	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var b strings.Builder
	inTable := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		isRow := len(line) > 0 && line[0] == '|' && line[len(line)-1] == '|'
		if isRow {
			if !inTable {
				inTable = true
				b.WriteString(`<div class="table-container"><table class="course-table">`)
			}
			b.WriteString(renderTableRow(line))
			if i+1 < len(lines) && isSeparatorLine(lines[i+1]) {
				i++
			}
			continue
		}
		if inTable {
			inTable = false
			b.WriteString("</table></div>")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if inTable {
		b.WriteString("</table></div>")
	}
	return b.String()
}

func isSeparatorLine(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '|', '-', ' ':
		default:
			return false
		}
	}
	return true
}

func renderTableRow(row string) string {
	var b strings.Builder
	b.WriteString("<tr>")

	cells := strings.Split(row, "|")
	cells = cells[1:] // the split always yields a leading empty segment
	if n := len(cells); n > 0 && cells[n-1] == "" {
		cells = cells[:n-1] // likewise a trailing one for the closing '|'
	}
	for _, cell := range cells {
		cell = strings.Trim(cell, " \t")
		cell = renderBold(cell)
		b.WriteString("<td>")
		b.WriteString(cell)
		b.WriteString("</td>")
	}

	b.WriteString("</tr>")
	return b.String()
}
