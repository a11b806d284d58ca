// Package source provides byte sources for extracted ROM container trees.
package source

import "errors"

// ErrNotFound is returned when a path or archive entry does not exist.
// It is distinct from reading an existing but empty file.
var ErrNotFound = errors.New("file not found")

// Source supplies raw byte blocks by container path or archive entry index.
// Implementations never cache; callers own all caching policy.
type Source interface {
	// File returns the raw bytes of the file at the given container path.
	File(path string) ([]byte, error)

	// ArchiveEntry returns the raw bytes of one entry inside a packed
	// archive, addressed by numeric index.
	ArchiveEntry(path string, index int) ([]byte, error)

	// EntryCount returns the number of entries in a packed archive.
	EntryCount(path string) (int, error)
}
