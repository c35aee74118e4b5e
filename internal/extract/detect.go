package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Pending filters manifest names down to the files that need reprocessing,
// preserving manifest order. A name whose source file does not exist is
// skipped silently. Without a stamp every existing file is pending; with one,
// a file is pending iff its modification time strictly exceeds the stamp's.
func Pending(names []string, sourceDir string, stamp Stamp) ([]string, error) {
	stampTime, haveStamp, err := stamp.ModTime()
	if err != nil {
		return nil, err
	}
	return filterExisting(names, sourceDir, func(mtime time.Time) bool {
		return !haveStamp || mtime.After(stampTime)
	})
}

// Existing returns the manifest names whose source files are present,
// ignoring the stamp entirely. Used by forced runs.
func Existing(names []string, sourceDir string) ([]string, error) {
	return filterExisting(names, sourceDir, func(time.Time) bool { return true })
}

func filterExisting(names []string, sourceDir string, keep func(mtime time.Time) bool) ([]string, error) {
	pending := make([]string, 0, len(names))
	for _, name := range names {
		info, err := os.Stat(filepath.Join(sourceDir, name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat source %s: %w", name, err)
		}
		if keep(info.ModTime()) {
			pending = append(pending, name)
		}
	}
	return pending, nil
}
