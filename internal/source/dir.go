package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dir serves byte blocks from a directory tree of extracted container
// contents. A plain file maps to its relative path, an unpacked archive maps
// to a directory holding one "<index>.bin" file per entry.
type Dir struct {
	root string
}

// NewDir creates a byte source rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// File returns the raw bytes of the file at the given container path.
func (d *Dir) File(path string) ([]byte, error) {
	data, err := os.ReadFile(d.join(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// ArchiveEntry returns the raw bytes of one entry of an unpacked archive.
func (d *Dir) ArchiveEntry(path string, index int) ([]byte, error) {
	entry := filepath.Join(d.join(path), strconv.Itoa(index)+".bin")
	data, err := os.ReadFile(entry)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s:%d", ErrNotFound, path, index)
		}
		return nil, fmt.Errorf("reading %s:%d: %w", path, index, err)
	}
	return data, nil
}

// EntryCount returns the number of "<index>.bin" entries of an archive.
func (d *Dir) EntryCount(path string) (int, error) {
	entries, err := os.ReadDir(d.join(path))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("listing %s: %w", path, err)
	}

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".bin") {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSuffix(name, ".bin"))
		if err != nil {
			continue
		}
		if idx+1 > count {
			count = idx + 1
		}
	}
	return count, nil
}

func (d *Dir) join(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(strings.Trim(path, "/")))
}
