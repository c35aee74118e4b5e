package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Stamp is the persisted extraction timestamp marker. The gate for
// reprocessing is the file's modification time, not its textual content; the
// content is a human-readable courtesy.
type Stamp struct {
	Path string
}

// ModTime returns the stamp's modification time. ok is false when no stamp
// has been written yet, in which case every source file counts as modified.
func (s Stamp) ModTime() (mtime time.Time, ok bool, err error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("stat stamp %s: %w", s.Path, err)
	}
	return info.ModTime(), true, nil
}

// Update overwrites the stamp wholesale with the given time, refreshing its
// modification time as a side effect.
func (s Stamp) Update(now time.Time) error {
	if err := os.WriteFile(s.Path, []byte(now.Format(time.ANSIC)), 0o644); err != nil {
		return fmt.Errorf("write stamp %s: %w", s.Path, err)
	}
	return nil
}
