package extract

import (
	"strings"

	"sceneline/internal/config"
)

// Resolver turns raw dialogue entries into (character, text) pairs. The zero
// value is not usable; construct with NewResolver.
type Resolver struct {
	preferredSlots []int
	markers        []string
}

// NewResolver builds a resolver from the extract configuration section.
func NewResolver(cfg config.Extract) *Resolver {
	return &Resolver{
		preferredSlots: append([]int(nil), cfg.PreferredSlots...),
		markers:        append([]string(nil), cfg.Markers...),
	}
}

// Line is one resolved dialogue line. Character and Text are nil when the
// entry carried no usable value; both still occupy a slot in the flattened
// output. Slot and Strategy record how the line was chosen, for diagnostics.
type Line struct {
	Character *string
	Text      *string
	Slot      int    // language slot index, -1 when no language list applied
	Strategy  string // selection strategy name, "fallback", or ""
}

// Resolve extracts the character and text from one dialogue entry.
//
// A language-tagged entry is resolved through the tiered selection policy in
// selectLanguageItem. When the entry has no language list, or the list holds
// no non-empty text, resolution degrades to the legacy fixed-position shapes
// (text at index 2, then index 1).
func (r *Resolver) Resolve(entry any) Line {
	fields, ok := entry.([]any)
	if !ok {
		return Line{Slot: -1}
	}

	if items, found := findLanguageList(fields); found {
		if item, slot, strategy, picked := r.selectLanguageItem(items); picked {
			character := itemCharacter(item)
			if character == nil {
				// The chosen language item carries no name; the
				// entry head does, with index 0 preferred.
				character = fallbackCharacter(fields, false)
			}
			text := r.stripMarkers(item[1].(string))
			return Line{Character: character, Text: &text, Slot: slot, Strategy: strategy}
		}
	}

	// Compatibility path for older/plain entry shapes. Note the character
	// preference flips to index 1 here; preserved as-is from the data this
	// format grew around.
	character := fallbackCharacter(fields, true)
	if len(fields) > 2 {
		if text, ok := fields[2].(string); ok {
			cleaned := r.stripMarkers(text)
			return Line{Character: character, Text: &cleaned, Slot: -1, Strategy: strategyFallback}
		}
	}
	if len(fields) > 1 {
		if text, ok := fields[1].(string); ok {
			cleaned := r.stripMarkers(text)
			return Line{Character: character, Text: &cleaned, Slot: -1, Strategy: strategyFallback}
		}
	}
	return Line{Character: character, Slot: -1, Strategy: strategyFallback}
}

// findLanguageList returns the first field of the entry that is a non-empty
// list in which every element qualifies as a language item.
func findLanguageList(fields []any) ([]any, bool) {
	for _, field := range fields {
		items, ok := field.([]any)
		if !ok || len(items) == 0 {
			continue
		}
		if allLanguageItems(items) {
			return items, true
		}
	}
	return nil, false
}

// isLanguageItem reports whether v is a (character, text, ...) tuple: a list
// of length >= 2 whose second element is a string.
func isLanguageItem(v any) bool {
	item, ok := v.([]any)
	if !ok || len(item) < 2 {
		return false
	}
	_, ok = item[1].(string)
	return ok
}

func allLanguageItems(items []any) bool {
	for _, item := range items {
		if !isLanguageItem(item) {
			return false
		}
	}
	return true
}

// itemCharacter returns the item's leading element when it is a non-empty
// string.
func itemCharacter(item []any) *string {
	if len(item) == 0 {
		return nil
	}
	name, ok := item[0].(string)
	if !ok || name == "" {
		return nil
	}
	return &name
}

// fallbackCharacter scans the entry head for a non-empty string name. The
// order is (1, 0) on the legacy path and (0, 1) when a language list chose an
// item without a character.
func fallbackCharacter(fields []any, preferIndex1 bool) *string {
	order := []int{0, 1}
	if preferIndex1 {
		order = []int{1, 0}
	}
	for _, index := range order {
		if index >= len(fields) {
			continue
		}
		if name, ok := fields[index].(string); ok && name != "" {
			return &name
		}
	}
	return nil
}

// stripMarkers removes the configured formatting markers, in order.
func (r *Resolver) stripMarkers(text string) string {
	for _, marker := range r.markers {
		text = strings.ReplaceAll(text, marker, "")
	}
	return text
}
