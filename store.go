package flatpage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// PageMeta is the projection of a Page the store keeps in memory.
type PageMeta struct {
	Title       string
	Description string
}

// Store indexes the metadata of every markdown file directly inside a
// directory so lookups by URL or file stem never re-read file contents. The
// index is a snapshot taken by ReadDir; files that change afterwards go
// unnoticed until a new store is built, an accepted limitation. A Store is
// immutable after construction and therefore safe for concurrent readers.
type Store[E any] struct {
	root   string
	pages  map[string]PageMeta
	logger Logger
}

// StoreOption adjusts how ReadDir builds a store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger Logger
}

// WithLogger routes scan diagnostics to the given logger instead of
// discarding them.
func WithLogger(logger Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ReadDir builds a store from the markdown files directly inside root. The
// scan is not recursive. Subdirectories, non-regular files, names without a
// ".md" suffix and stems that are not valid UTF-8 are skipped. Files that
// disappear or turn unreadable between the listing and the read are skipped
// as well, while a frontmatter decode failure aborts the whole build: a
// partially built index would be worse than a failed one.
func ReadDir[E any](root string, opts ...StoreOption) (*Store[E], error) {
	options := storeOptions{logger: NoOpLogger()}
	for _, opt := range opts {
		opt(&options)
	}

	dir, err := os.Open(root)
	if err != nil {
		return nil, &DirReadError{Path: root, Err: err}
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &DirEntryError{Err: err}
	}

	store := &Store[E]{
		root:   root,
		pages:  make(map[string]PageMeta, len(entries)),
		logger: options.logger,
	}
	for _, entry := range entries {
		name := entry.Name()
		stem, found := strings.CutSuffix(name, mdExtension)
		if !found || stem == "" || !entry.Type().IsRegular() || !utf8.ValidString(stem) {
			continue
		}

		page, err := ByPath[NoExtra](filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		if page == nil {
			// Removed or turned unreadable since the listing.
			store.logger.Debug("flatpage: skipping unreadable entry", "name", name)
			continue
		}
		// Later duplicates would overwrite earlier entries; with a single
		// extension and OS-unique filenames that does not happen in practice.
		store.pages[stem] = page.Meta()
	}

	store.logger.Debug("flatpage: directory indexed", "root", root, "pages", len(store.pages))
	return store, nil
}

// MetaByStem returns the cached metadata for a file stem. No I/O happens.
func (s *Store[E]) MetaByStem(stem string) (PageMeta, bool) {
	meta, ok := s.pages[stem]
	return meta, ok
}

// MetaByURL returns the cached metadata for a URL. The character whitelist
// of ByURL does not apply here: the lookup is index-only and can never touch
// the filesystem, so there is no path to traverse out of.
func (s *Store[E]) MetaByURL(url string) (PageMeta, bool) {
	return s.MetaByStem(urlToStem(url))
}

// PageByStem re-reads the full page for an indexed stem. Stems absent from
// the index resolve to absence without any I/O; present stems are always
// read from disk again, since the index accelerates metadata only, never
// page bodies.
func (s *Store[E]) PageByStem(stem string) (*Page[E], error) {
	if _, ok := s.pages[stem]; !ok {
		return nil, nil
	}
	return ByPath[E](filepath.Join(s.root, stem+mdExtension))
}

// PageByURL re-reads the full page for a URL present in the index.
func (s *Store[E]) PageByURL(url string) (*Page[E], error) {
	return s.PageByStem(urlToStem(url))
}

// Len reports how many pages the index holds.
func (s *Store[E]) Len() int {
	return len(s.pages)
}

// Stems lists the indexed file stems in sorted order.
func (s *Store[E]) Stems() []string {
	stems := make([]string, 0, len(s.pages))
	for stem := range s.pages {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}
