package extract_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"sceneline/internal/extract"
)

func decodeDoc(t *testing.T, raw string) any {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}

func TestWalkNoScenes(t *testing.T) {
	r := newResolver(t)
	for _, raw := range []string{
		`{}`,
		`{"scenes": null}`,
		`{"scenes": "nope"}`,
		`{"scenes": 7}`,
		`[1, 2, 3]`,
	} {
		result := r.Walk(decodeDoc(t, raw))
		if result.HasScenes {
			t.Errorf("doc %s: expected HasScenes false", raw)
		}
		if len(result.Text) != 0 || len(result.Select) != 0 {
			t.Errorf("doc %s: expected empty outputs, got %v / %v", raw, result.Text, result.Select)
		}
	}
}

func TestWalkSceneIndexAlignment(t *testing.T) {
	r := newResolver(t)
	doc := decodeDoc(t, `{"scenes": [
		{},
		{},
		{"texts": [["a01", "Amy", "Hi"]]}
	]}`)

	result := r.Walk(doc)
	if !result.HasScenes {
		t.Fatal("expected HasScenes")
	}
	if len(result.Text) != 3 {
		t.Fatalf("text length = %d, want 3", len(result.Text))
	}
	if result.Text[0] != nil || result.Text[1] != nil {
		t.Fatalf("expected nil placeholders, got %v", result.Text[:2])
	}
	want := []any{"Amy", "Hi"}
	if !reflect.DeepEqual(result.Text[2], want) {
		t.Fatalf("scene 2 = %v, want %v", result.Text[2], want)
	}
	if len(result.Select) != 0 {
		t.Fatalf("expected no select slots, got %v", result.Select)
	}
	if result.Scenes != 1 || result.Lines != 1 {
		t.Fatalf("counts = (%d scenes, %d lines), want (1, 1)", result.Scenes, result.Lines)
	}
}

func TestWalkNonObjectScenesSkippedWithoutSlot(t *testing.T) {
	r := newResolver(t)
	doc := decodeDoc(t, `{"scenes": [
		"not a scene",
		{"texts": [["Amy", "Hi"]]},
		42
	]}`)

	result := r.Walk(doc)
	// The trailing non-object scene allocates nothing; length stops at the
	// last scene that contributed.
	if len(result.Text) != 2 {
		t.Fatalf("text length = %d, want 2", len(result.Text))
	}
	if result.Text[0] != nil {
		t.Fatalf("slot 0 should stay nil, got %v", result.Text[0])
	}
}

func TestWalkSelectsPassThrough(t *testing.T) {
	r := newResolver(t)
	doc := decodeDoc(t, `{"scenes": [
		{},
		{"selects": {"choices": ["跳过", "继续"], "id": 12}},
		{"texts": [], "selects": null}
	]}`)

	result := r.Walk(doc)
	if len(result.Select) != 3 {
		t.Fatalf("select length = %d, want 3", len(result.Select))
	}
	if result.Select[0] != nil {
		t.Fatalf("slot 0 should be nil, got %v", result.Select[0])
	}
	payload, ok := result.Select[1].(map[string]any)
	if !ok {
		t.Fatalf("slot 1 type = %T", result.Select[1])
	}
	if payload["id"] != json.Number("12") {
		t.Fatalf("payload id = %v (%T)", payload["id"], payload["id"])
	}
	// A null selects value still allocates the slot via the presence check.
	if result.Select[2] != nil {
		t.Fatalf("slot 2 should be nil payload, got %v", result.Select[2])
	}
	if result.Selects != 2 {
		t.Fatalf("selects count = %d, want 2", result.Selects)
	}

	// Scene 2 declared an empty texts list: allocated but empty.
	if len(result.Text) != 3 || result.Text[2] == nil || len(result.Text[2]) != 0 {
		t.Fatalf("unexpected text slots: %v", result.Text)
	}
}

func TestWalkAppendsPairEvenWhenUnresolved(t *testing.T) {
	r := newResolver(t)
	doc := decodeDoc(t, `{"scenes": [
		{"texts": ["garbage", ["a01", "Amy", "Hi"], 17]}
	]}`)

	result := r.Walk(doc)
	want := []any{nil, nil, "Amy", "Hi", nil, nil}
	if !reflect.DeepEqual(result.Text[0], want) {
		t.Fatalf("scene 0 = %v, want %v", result.Text[0], want)
	}
	if result.Lines != 3 {
		t.Fatalf("lines = %d, want 3", result.Lines)
	}
}

func TestWalkObservedReportsProvenance(t *testing.T) {
	r := newResolver(t)
	doc := decodeDoc(t, `{"scenes": [
		{"texts": [
			["Amy", "Hi"],
			[[["A", ""], ["B", ""], ["C", ""], ["D", "文本"]]]
		]}
	]}`)

	type seen struct {
		scene, line int
		slot        int
		strategy    string
	}
	var observed []seen
	r.WalkObserved(doc, func(sceneIndex, lineIndex int, _ any, line extract.Line) {
		observed = append(observed, seen{sceneIndex, lineIndex, line.Slot, line.Strategy})
	})

	want := []seen{
		{0, 0, -1, "fallback"},
		{0, 1, 3, "preferred-slot"},
	}
	if !reflect.DeepEqual(observed, want) {
		t.Fatalf("observed = %v, want %v", observed, want)
	}
}
