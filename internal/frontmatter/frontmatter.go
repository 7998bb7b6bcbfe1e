// Package frontmatter splits markdown content into a leading YAML metadata
// block and the page body, and decodes the block into typed records.
package frontmatter

import (
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	openDelimiter  = "---\n"
	closeDelimiter = "\n---"
)

// Meta holds the frontmatter fields recognised by name. Every other key is
// passed through to the caller's extra record untouched.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Split locates a leading frontmatter block in content. When one is found it
// returns the text strictly between the delimiters, verbatim, and the body
// following the closing delimiter, trimmed of surrounding whitespace.
//
// The opening delimiter must be the very first thing in the content after
// leading whitespace, so a document whose body merely contains a delimited
// block (a quoted example, say) is not mistaken for having frontmatter. An
// unterminated block is treated the same way rather than reported as an
// error.
func Split(content string) (matter, body string, ok bool) {
	trimmed := strings.TrimLeftFunc(content, unicode.IsSpace)

	rest, found := strings.CutPrefix(trimmed, openDelimiter)
	if !found {
		return "", "", false
	}

	matter, body, found = strings.Cut(rest, closeDelimiter)
	if !found {
		return "", "", false
	}
	return matter, strings.TrimSpace(body), true
}

// Decode unmarshals a frontmatter block. Keys beyond title and description
// are rebuilt into a remainder mapping and decoded into extra when extra is
// non-nil. An empty block yields the zero Meta and leaves extra untouched.
// Malformed YAML and type mismatches surface as the yaml.v3 error unchanged.
func Decode(matter string, extra any) (Meta, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(matter), &doc); err != nil {
		return Meta{}, err
	}
	if doc.Kind == 0 {
		// Empty block.
		return Meta{}, nil
	}

	var meta Meta
	if err := doc.Decode(&meta); err != nil {
		return Meta{}, err
	}

	if extra != nil {
		rest := remainder(&doc)
		if rest != nil {
			if err := rest.Decode(extra); err != nil {
				return Meta{}, err
			}
		}
	}
	return meta, nil
}

// remainder rebuilds the block's top-level mapping without the title and
// description entries, so the extra record only ever sees keys beyond the
// recognised ones.
func remainder(doc *yaml.Node) *yaml.Node {
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		// Non-mapping frontmatter already failed the Meta decode.
		return nil
	}

	rest := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Value == "title" || key.Value == "description" {
			continue
		}
		rest.Content = append(rest.Content, key, node.Content[i+1])
	}
	if len(rest.Content) == 0 {
		return nil
	}
	return rest
}
