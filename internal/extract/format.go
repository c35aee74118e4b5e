package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeText renders per-scene dialogue slots in the review layout: one
// bracketed block per scene, null placeholders for missing scenes, and the
// text of each (character, text) pair on an extra-indented line so diffs read
// as speaker/line couplets. The layout is a human-scanning aid, deliberately
// not strict JSON.
func EncodeText(slots [][]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, slot := range slots {
		if i > 0 {
			buf.WriteByte(',')
		}
		if slot == nil {
			buf.WriteString("\n  null")
			continue
		}
		buf.WriteString("\n  [\n    ")
		for j, value := range slot {
			if j > 0 {
				buf.WriteString(",\n    ")
			}
			encoded, err := encodeValue(value)
			if err != nil {
				return nil, fmt.Errorf("encode text slot %d: %w", i, err)
			}
			if j%2 == 1 {
				buf.WriteString("  ")
			}
			buf.Write(encoded)
		}
		buf.WriteString("\n  ]")
	}
	buf.WriteString("\n]")
	return buf.Bytes(), nil
}

// EncodeSelect renders selection payloads as a standard 2-space indented JSON
// array. Values pass through exactly as decoded; non-ASCII characters are
// preserved literally.
func EncodeSelect(values []any) ([]byte, error) {
	if values == nil {
		values = []any{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(values); err != nil {
		return nil, fmt.Errorf("encode select output: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeValue marshals a single value compactly without HTML escaping.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
