// Package langslot maps language slot indices from source documents to
// human-readable language names for diagnostic surfaces.
//
// The slot layout is a convention of the source data, not a guarantee: slot 3
// usually holds Simplified Chinese and slot 2 Traditional Chinese, which is
// why those are the default preferred slots. Names are only ever shown to
// humans; the extraction heuristics never depend on them.
package langslot

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var conventional = map[int]language.Tag{
	0: language.Japanese,
	1: language.English,
	2: language.TraditionalChinese,
	3: language.SimplifiedChinese,
}

// Tag returns the language conventionally stored at the given slot index.
func Tag(index int) (language.Tag, bool) {
	tag, ok := conventional[index]
	return tag, ok
}

// Name returns a display name for a slot, falling back to the bare index for
// slots outside the documented convention.
func Name(index int) string {
	tag, ok := conventional[index]
	if !ok {
		return fmt.Sprintf("slot %d", index)
	}
	return fmt.Sprintf("%s (slot %d)", display.English.Languages().Name(tag), index)
}
