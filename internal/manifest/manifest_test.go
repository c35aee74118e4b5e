package manifest_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sceneline/internal/manifest"
)

func TestReadSkipsBlankLinesAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsonlist.txt")
	content := "b.json\n\na.json\r\n\nc.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	names, err := manifest.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"b.json", "a.json", "c.json"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v want %v", names, want)
	}
}

func TestReadMissingManifestFails(t *testing.T) {
	if _, err := manifest.Read(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestReadEmptyManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonlist.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	names, err := manifest.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}
}
