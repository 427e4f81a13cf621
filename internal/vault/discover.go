// Package vault discovers save files in a directory and groups them into
// slots: the primary save plus its numbered backups.
package vault

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/backmassage/savekeeper/internal/savename"
)

// Entry is one conforming save file found in the saves directory.
type Entry struct {
	Path string
	Name savename.ParsedName
}

// Discover reads dir (non-recursive; the game keeps all saves flat) and
// parses every regular file name through the save-name grammar. Conforming
// files come back as entries sorted by file name for deterministic
// processing order; non-conforming names are returned separately so callers
// can report them without failing the scan.
func Discover(dir string) (entries []Entry, skipped []string, err error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		name, perr := savename.Parse(d.Name())
		if perr != nil {
			skipped = append(skipped, d.Name())
			continue
		}
		entries = append(entries, Entry{
			Path: filepath.Join(dir, d.Name()),
			Name: name,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return filepath.Base(entries[i].Path) < filepath.Base(entries[j].Path)
	})
	sort.Strings(skipped)
	return entries, skipped, nil
}
