package flatpage

import (
	"errors"
	"fmt"
)

var (
	// ErrFrontmatter marks a metadata block that failed YAML decoding.
	ErrFrontmatter = errors.New("flatpage: broken frontmatter")
	// ErrDirRead marks a root directory that could not be listed.
	ErrDirRead = errors.New("flatpage: read dir")
	// ErrDirEntry marks a directory entry that could not be inspected.
	ErrDirEntry = errors.New("flatpage: read dir entry")
)

// FrontmatterError carries the YAML decode failure together with the path of
// the offending file.
type FrontmatterError struct {
	Path string
	Err  error
}

func (e *FrontmatterError) Error() string {
	if e == nil {
		return ErrFrontmatter.Error()
	}
	return fmt.Sprintf("%s in %s: %v", ErrFrontmatter.Error(), e.Path, e.Err)
}

func (e *FrontmatterError) Unwrap() []error {
	return []error{ErrFrontmatter, e.Err}
}

// DirReadError reports that the store's root directory itself could not be
// opened for listing.
type DirReadError struct {
	Path string
	Err  error
}

func (e *DirReadError) Error() string {
	if e == nil {
		return ErrDirRead.Error()
	}
	return fmt.Sprintf("%s %s: %v", ErrDirRead.Error(), e.Path, e.Err)
}

func (e *DirReadError) Unwrap() []error {
	return []error{ErrDirRead, e.Err}
}

// DirEntryError reports that an entry inside an otherwise readable directory
// could not be inspected.
type DirEntryError struct {
	Err error
}

func (e *DirEntryError) Error() string {
	if e == nil {
		return ErrDirEntry.Error()
	}
	return fmt.Sprintf("%s: %v", ErrDirEntry.Error(), e.Err)
}

func (e *DirEntryError) Unwrap() []error {
	return []error{ErrDirEntry, e.Err}
}
