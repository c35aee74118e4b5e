// Package manifest reads the extraction work list: a plain text file naming
// one source document per line. Blank lines are ignored; order is preserved.
package manifest

import (
	"fmt"
	"os"
	"strings"
)

// Read returns the filenames listed in the manifest at path, in file order.
// A missing or unreadable manifest is an error; extraction cannot proceed
// without a work list.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}
