package extract

// Result holds a document's flattened outputs. Text and Select are aligned
// with scene index; nil slots serialize as null placeholders. A non-nil but
// empty text slot means the scene declared a dialogue list with no entries.
type Result struct {
	HasScenes bool
	Text      [][]any
	Select    []any
	Scenes    int // scenes that contributed dialogue
	Lines     int // dialogue lines extracted
	Selects   int // scenes that contributed selection payloads
}

// LineObserver receives every resolved dialogue line during a walk. Used by
// diagnostic surfaces that need per-line provenance.
type LineObserver func(sceneIndex, lineIndex int, entry any, line Line)

// Walk flattens a decoded source document into index-aligned text and
// selection outputs.
func (r *Resolver) Walk(doc any) Result {
	return r.WalkObserved(doc, nil)
}

// WalkObserved is Walk with an optional per-line observer.
//
// Scenes that are not objects are skipped without allocating a slot. A scene
// with a dialogue list gets a fresh text slot even when a previous walk of
// the same index wrote one; a scene with a "selects" key (presence check, its
// value may be anything including null) has that value passed through
// unchanged.
func (r *Resolver) WalkObserved(doc any, observe LineObserver) Result {
	result := Result{
		Text:   [][]any{},
		Select: []any{},
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return result
	}
	scenes, ok := root["scenes"].([]any)
	if !ok {
		return result
	}
	result.HasScenes = true

	for sceneIndex, rawScene := range scenes {
		scene, ok := rawScene.(map[string]any)
		if !ok {
			continue
		}

		if texts, ok := scene["texts"].([]any); ok {
			result.Text = padTo(result.Text, sceneIndex)
			slot := make([]any, 0, len(texts)*2)
			for lineIndex, entry := range texts {
				line := r.Resolve(entry)
				if observe != nil {
					observe(sceneIndex, lineIndex, entry, line)
				}
				slot = append(slot, deref(line.Character), deref(line.Text))
			}
			result.Text[sceneIndex] = slot
			result.Scenes++
			result.Lines += len(texts)
		}

		if payload, ok := scene["selects"]; ok {
			result.Select = padTo(result.Select, sceneIndex)
			result.Select[sceneIndex] = payload
			result.Selects++
		}
	}

	return result
}

// padTo extends slots with nil placeholders until index is addressable.
func padTo[T any](slots []T, index int) []T {
	var zero T
	for len(slots) <= index {
		slots = append(slots, zero)
	}
	return slots
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
