package extract_test

import (
	"encoding/json"
	"strings"
	"testing"

	"sceneline/internal/extract"
)

func TestEncodeTextEmpty(t *testing.T) {
	for _, slots := range [][][]any{nil, {}} {
		out, err := extract.EncodeText(slots)
		if err != nil {
			t.Fatalf("EncodeText: %v", err)
		}
		if string(out) != "[\n]" {
			t.Fatalf("got %q, want %q", out, "[\n]")
		}
	}
}

func TestEncodeTextLayout(t *testing.T) {
	slots := [][]any{
		nil,
		{"Amy", "Hi", nil, "孤立 text"},
	}
	out, err := extract.EncodeText(slots)
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	want := "[" +
		"\n  null," +
		"\n  [\n" +
		"    \"Amy\",\n" +
		"      \"Hi\",\n" +
		"    null,\n" +
		"      \"孤立 text\"\n" +
		"  ]" +
		"\n]"
	if string(out) != want {
		t.Fatalf("layout mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestEncodeTextAllocatedEmptyScene(t *testing.T) {
	out, err := extract.EncodeText([][]any{{}})
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	want := "[\n  [\n    \n  ]\n]"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEncodeTextPreservesNonASCIIAndSpecials(t *testing.T) {
	out, err := extract.EncodeText([][]any{{"継続", "a<b&c\"d\""}})
	if err != nil {
		t.Fatalf("EncodeText: %v", err)
	}
	got := string(out)
	for _, want := range []string{`"継続"`, `"a<b&c\"d\""`} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q missing %q", got, want)
		}
	}
}

func TestEncodeSelectEmpty(t *testing.T) {
	for _, values := range [][]any{nil, {}} {
		out, err := extract.EncodeSelect(values)
		if err != nil {
			t.Fatalf("EncodeSelect: %v", err)
		}
		if string(out) != "[]" {
			t.Fatalf("got %q, want %q", out, "[]")
		}
	}
}

func TestEncodeSelectIndentedPassThrough(t *testing.T) {
	values := []any{
		nil,
		map[string]any{"choices": []any{"跳过", "继续"}, "id": json.Number("12")},
	}
	out, err := extract.EncodeSelect(values)
	if err != nil {
		t.Fatalf("EncodeSelect: %v", err)
	}
	want := `[
  null,
  {
    "choices": [
      "跳过",
      "继续"
    ],
    "id": 12
  }
]`
	if string(out) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}
