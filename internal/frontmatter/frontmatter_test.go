package frontmatter

import (
	"strings"
	"testing"
)

func TestSplit_NoFrontmatter(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"plain text", "foo"},
		{"delimiter without newline", "---"},
		{"delimiter not at start", "foo\n---not a frontmatter\n---"},
		{"unterminated block", "---\nnot a frontmatter"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := Split(tc.content); ok {
				t.Fatalf("expected no frontmatter in %q", tc.content)
			}
		})
	}
}

func TestSplit_EmptyBody(t *testing.T) {
	matter, body, ok := Split("---\nmatter\n---")
	if !ok {
		t.Fatalf("expected frontmatter to be found")
	}
	if matter != "matter" {
		t.Fatalf("matter mismatch, got %q", matter)
	}
	if body != "" {
		t.Fatalf("expected empty body, got %q", body)
	}
}

func TestSplit_WithBody(t *testing.T) {
	matter, body, ok := Split("---\nmatter\n---\nbody")
	if !ok {
		t.Fatalf("expected frontmatter to be found")
	}
	if matter != "matter" {
		t.Fatalf("matter mismatch, got %q", matter)
	}
	if body != "body" {
		t.Fatalf("body mismatch, got %q", body)
	}
}

func TestSplit_LeadingWhitespace(t *testing.T) {
	matter, body, ok := Split("\n\n---\ntitle: Foo\n---\nbody")
	if !ok {
		t.Fatalf("expected frontmatter after leading whitespace")
	}
	if matter != "title: Foo" {
		t.Fatalf("matter mismatch, got %q", matter)
	}
	if body != "body" {
		t.Fatalf("body mismatch, got %q", body)
	}
}

func TestDecode_Empty(t *testing.T) {
	meta, err := Decode("", nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if meta.Title != "" || meta.Description != "" {
		t.Fatalf("expected zero meta, got %+v", meta)
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	meta, err := Decode("foo: 1\nbar: true", nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if meta.Title != "" || meta.Description != "" {
		t.Fatalf("expected zero meta, got %+v", meta)
	}
}

func TestDecode_TitleOnly(t *testing.T) {
	meta, err := Decode("title: foo", nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if meta.Title != "foo" {
		t.Fatalf("title mismatch, got %q", meta.Title)
	}
	if meta.Description != "" {
		t.Fatalf("expected empty description, got %q", meta.Description)
	}
}

func TestDecode_ExtraFields(t *testing.T) {
	var extra struct {
		Slug   string `yaml:"slug"`
		Active bool   `yaml:"active"`
	}

	meta, err := Decode("slug: foo\nactive: true", &extra)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("expected empty title, got %q", meta.Title)
	}
	if extra.Slug != "foo" || !extra.Active {
		t.Fatalf("extra mismatch: %+v", extra)
	}
}

func TestDecode_ExtraExcludesRecognisedKeys(t *testing.T) {
	// The extra record must only see keys beyond title and description even
	// when it declares fields with the same names.
	var extra struct {
		Title string `yaml:"title"`
		Slug  string `yaml:"slug"`
	}

	meta, err := Decode("title: Foo\nslug: bar", &extra)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if meta.Title != "Foo" {
		t.Fatalf("title mismatch, got %q", meta.Title)
	}
	if extra.Title != "" {
		t.Fatalf("extra should not receive the title, got %q", extra.Title)
	}
	if extra.Slug != "bar" {
		t.Fatalf("slug mismatch, got %q", extra.Slug)
	}
}

func TestDecode_ExtraMap(t *testing.T) {
	extra := map[string]any{}

	if _, err := Decode("title: Foo\nslug: bar", &extra); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, found := extra["title"]; found {
		t.Fatalf("extra map should not receive the title: %#v", extra)
	}
	if extra["slug"] != "bar" {
		t.Fatalf("slug mismatch: %#v", extra)
	}
}

func TestDecode_MalformedYAML(t *testing.T) {
	if _, err := Decode("title: [broken", nil); err == nil {
		t.Fatalf("expected a yaml error")
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	_, err := Decode("title:\n  - a\n  - b", nil)
	if err == nil {
		t.Fatalf("expected a yaml error for a non-scalar title")
	}
	if !strings.Contains(err.Error(), "title") && !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("unexpected error text: %v", err)
	}
}
