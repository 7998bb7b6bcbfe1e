// Package flatpage maps URL paths to markdown files with optional YAML
// frontmatter, and indexes the metadata of a directory of such files so
// lookups never re-read file contents.
//
// A URL relates to a filename through a fixed identity rule: every '/' is
// replaced by '^' and a ".md" suffix is appended, so the root URL "/" lives
// in the file "^.md" and "/about" in "^about.md". All files sit directly
// inside one root directory.
package flatpage

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-flatpage/internal/frontmatter"
	"github.com/goliatone/go-flatpage/internal/markdown"
)

// allowedInURL lists the characters a URL may contain besides ASCII
// alphanumerics. Anything outside this set makes the URL resolve to no file
// at all, which keeps lookups from ever escaping the root directory.
const allowedInURL = "/_-"

// urlSeparator replaces '/' when a URL is flattened into a filename.
const urlSeparator = "^"

const mdExtension = ".md"

// NoExtra is the extra-fields type for pages without custom frontmatter keys.
type NoExtra = struct{}

// Page is one resolved content unit. The type parameter E receives any
// frontmatter fields beyond title and description; use NoExtra when the
// frontmatter carries none.
type Page[E any] struct {
	// Title for the html title tag, og:title, etc. Falls back to the first
	// line of the body when the frontmatter sets none.
	Title string
	// Description for the html meta description tag; empty when absent.
	Description string
	// Body is the raw markdown following the frontmatter block, trimmed of
	// surrounding whitespace.
	Body string
	// Extra holds the caller-typed frontmatter fields.
	Extra E
}

var renderer = markdown.New()

// FromContent parses a page from raw file content. The metadata block is
// optional; without one the whole (trimmed) content becomes the body.
func FromContent[E any](content string) (*Page[E], error) {
	matter, body, ok := frontmatter.Split(content)
	if !ok {
		matter, body = "", strings.TrimSpace(content)
	}

	page := &Page[E]{Body: body}
	meta, err := frontmatter.Decode(matter, &page.Extra)
	if err != nil {
		return nil, err
	}

	page.Title = meta.Title
	page.Description = meta.Description
	if page.Title == "" {
		page.Title = titleFromMarkdown(body)
	}
	return page, nil
}

// ByPath reads and parses the page at path. Any read failure, including
// content that is not valid UTF-8, is reported as absence rather than an
// error; only a frontmatter decode failure on content that was read is an
// error, wrapped with the offending path.
func ByPath[E any](path string) (*Page[E], error) {
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return nil, nil
	}

	page, err := FromContent[E](string(data))
	if err != nil {
		return nil, &FrontmatterError{Path: path, Err: err}
	}
	return page, nil
}

// ByURL maps url onto a file under root and reads it. URLs that are empty or
// contain any character outside ASCII alphanumerics and "/_-" resolve to
// absence without touching the filesystem.
func ByURL[E any](root, url string) (*Page[E], error) {
	filename, ok := urlToFilename(url)
	if !ok {
		return nil, nil
	}
	return ByPath[E](filepath.Join(root, filename))
}

// HTML renders Body with the footnote, strikethrough, table and task-list
// extensions enabled. The result is recomputed on every call.
func (p *Page[E]) HTML() string {
	return renderer.Render(p.Body)
}

// Meta projects the page down to the metadata the store keeps in memory.
func (p *Page[E]) Meta() PageMeta {
	return PageMeta{Title: p.Title, Description: p.Description}
}

// titleFromMarkdown takes the first line of body as the title, with any
// markdown header prefix and surrounding whitespace stripped.
func titleFromMarkdown(body string) string {
	line, _, _ := strings.Cut(body, "\n")
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// urlToFilename flattens url into a markdown filename, rejecting anything
// outside the whitelist.
func urlToFilename(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, r := range url {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		case strings.ContainsRune(allowedInURL, r):
		default:
			return "", false
		}
	}
	return urlToStem(url) + mdExtension, true
}

// urlToStem applies the identity rule shared with the store: every '/'
// becomes the reserved separator. A URL segment literally containing '^'
// would collide with a URL using '/' in that position; the ambiguity is
// accepted rather than validated away.
func urlToStem(url string) string {
	return strings.ReplaceAll(url, "/", urlSeparator)
}
