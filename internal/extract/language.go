package extract

import (
	"strings"
	"unicode"
)

// Strategy names reported in Line provenance.
const (
	strategyPreferredSlot = "preferred-slot"
	strategyCJKScan       = "cjk-scan"
	strategyReverseScan   = "reverse-scan"
	strategyFallback      = "fallback"
)

// cjkTable covers the CJK Unified Ideographs Extension A, CJK Unified
// Ideographs, and CJK Compatibility Ideographs blocks.
var cjkTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1},
	},
}

func containsCJK(text string) bool {
	return strings.ContainsFunc(text, func(r rune) bool {
		return unicode.Is(cjkTable, r)
	})
}

// selectionStrategy picks one language item from the list, returning its slot
// index. Strategies are evaluated in order and the first hit wins, keeping
// the tie-break policy auditable in isolation.
type selectionStrategy struct {
	name string
	pick func(r *Resolver, items []any) (int, bool)
}

var selectionStrategies = []selectionStrategy{
	{strategyPreferredSlot, (*Resolver).pickPreferredSlot},
	{strategyCJKScan, (*Resolver).pickCJKForward},
	{strategyReverseScan, (*Resolver).pickNonEmptyReverse},
}

// selectLanguageItem applies the tiered selection policy to a language list.
// The returned item is guaranteed to be a language item with non-empty text.
func (r *Resolver) selectLanguageItem(items []any) (item []any, slot int, strategy string, ok bool) {
	for _, s := range selectionStrategies {
		if index, found := s.pick(r, items); found {
			return items[index].([]any), index, s.name, true
		}
	}
	return nil, -1, "", false
}

// pickPreferredSlot tries the configured slot indices in order, accepting a
// slot only when it holds a valid language item with non-empty text.
func (r *Resolver) pickPreferredSlot(items []any) (int, bool) {
	for _, slot := range r.preferredSlots {
		if slot >= len(items) {
			continue
		}
		if itemText(items[slot]) != "" {
			return slot, true
		}
	}
	return -1, false
}

// pickCJKForward scans forward for the first item whose text contains a CJK
// ideograph.
func (r *Resolver) pickCJKForward(items []any) (int, bool) {
	for index, item := range items {
		if text := itemText(item); text != "" && containsCJK(text) {
			return index, true
		}
	}
	return -1, false
}

// pickNonEmptyReverse scans backward for the first item with any text at all.
func (r *Resolver) pickNonEmptyReverse(items []any) (int, bool) {
	for index := len(items) - 1; index >= 0; index-- {
		if itemText(items[index]) != "" {
			return index, true
		}
	}
	return -1, false
}

// itemText returns the item's text field, or "" when v is not a valid
// language item.
func itemText(v any) string {
	item, ok := v.([]any)
	if !ok || len(item) < 2 {
		return ""
	}
	text, _ := item[1].(string)
	return text
}
