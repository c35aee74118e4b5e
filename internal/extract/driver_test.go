package extract_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sceneline/internal/extract"
	"sceneline/internal/journal"
	"sceneline/internal/logging"
	"sceneline/internal/testsupport"
)

const fixtureDoc = `{
  "scenes": [
    {"texts": [["a01", "Amy", "Hi"]], "selects": {"choices": ["yes", "no"]}},
    "not a scene",
    {"texts": [
      [[["A", ""], ["B", ""], ["C", "你好"], ["D", ""]]]
    ]}
  ]
}`

func TestDriverRunWritesArtifactsAndStamp(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSource(t, cfg, "story.json", fixtureDoc)
	testsupport.WriteManifest(t, cfg, "story.json")

	driver := extract.NewDriver(cfg, logging.NewNop(), nil)
	report, err := driver.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Files) != 1 || report.Files[0].Name != "story.json" {
		t.Fatalf("unexpected files: %+v", report.Files)
	}
	if !report.StampUpdated {
		t.Fatal("expected stamp update")
	}

	text := testsupport.ReadFile(t, filepath.Join(cfg.Paths.TextDir, "story.json"))
	for _, want := range []string{`"Amy"`, `"Hi"`, `"C"`, `"你好"`, "null"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text artifact missing %q:\n%s", want, text)
		}
	}
	// Scene 1 is not an object, scene 2 has texts: three aligned slots with
	// a null in the middle.
	wantText := "[" +
		"\n  [\n    \"Amy\",\n      \"Hi\"\n  ]," +
		"\n  null," +
		"\n  [\n    \"C\",\n      \"你好\"\n  ]" +
		"\n]"
	if text != wantText {
		t.Fatalf("text artifact layout:\ngot:\n%s\nwant:\n%s", text, wantText)
	}

	selects := testsupport.ReadFile(t, filepath.Join(cfg.Paths.SelectDir, "story.json"))
	wantSelect := `[
  {
    "choices": [
      "yes",
      "no"
    ]
  }
]`
	if selects != wantSelect {
		t.Fatalf("select artifact:\ngot:\n%s\nwant:\n%s", selects, wantSelect)
	}

	if _, err := os.Stat(cfg.Paths.Stamp); err != nil {
		t.Fatalf("stamp missing: %v", err)
	}
}

func TestDriverSecondRunIsNoop(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := testsupport.WriteSource(t, cfg, "story.json", fixtureDoc)
	testsupport.WriteManifest(t, cfg, "story.json")

	// Backdate the source so the stamp written by the first run clearly
	// postdates it.
	testsupport.Touch(t, source, time.Now().Add(-time.Hour))

	driver := extract.NewDriver(cfg, logging.NewNop(), nil)
	first, err := driver.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if len(first.Files) != 1 {
		t.Fatalf("first run files: %+v", first.Files)
	}

	textBefore := testsupport.ReadFile(t, filepath.Join(cfg.Paths.TextDir, "story.json"))

	second, err := driver.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(second.Files) != 0 {
		t.Fatalf("second run should be a no-op, processed %+v", second.Files)
	}
	if second.StampUpdated {
		t.Fatal("second run must not advance the stamp")
	}

	textAfter := testsupport.ReadFile(t, filepath.Join(cfg.Paths.TextDir, "story.json"))
	if textBefore != textAfter {
		t.Fatal("artifact changed across a no-op run")
	}
}

func TestDriverForceReprocessesEverything(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := testsupport.WriteSource(t, cfg, "story.json", fixtureDoc)
	testsupport.WriteManifest(t, cfg, "story.json")
	testsupport.Touch(t, source, time.Now().Add(-time.Hour))
	testsupport.Touch(t, cfg.Paths.Stamp, time.Now())

	driver := extract.NewDriver(cfg, logging.NewNop(), nil)
	report, err := driver.Run(context.Background(), true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Files) != 1 {
		t.Fatalf("force run should process the file, got %+v", report.Files)
	}
}

func TestDriverNoScenesStillWritesArtifacts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSource(t, cfg, "empty.json", `{"title": "no scenes here"}`)
	testsupport.WriteManifest(t, cfg, "empty.json")

	driver := extract.NewDriver(cfg, logging.NewNop(), nil)
	report, err := driver.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Files) != 1 || !report.Files[0].Skipped {
		t.Fatalf("expected one skipped file, got %+v", report.Files)
	}
	// Output artifacts exist even without scenes; downstream consumers
	// depend on the files being present.
	if got := testsupport.ReadFile(t, filepath.Join(cfg.Paths.TextDir, "empty.json")); got != "[\n]" {
		t.Fatalf("text artifact = %q, want %q", got, "[\n]")
	}
	if got := testsupport.ReadFile(t, filepath.Join(cfg.Paths.SelectDir, "empty.json")); got != "[]" {
		t.Fatalf("select artifact = %q, want %q", got, "[]")
	}
	// A skipped file still counts as work done: the stamp advances.
	if !report.StampUpdated {
		t.Fatal("expected stamp update after a skipped-but-processed file")
	}
}

func TestDriverMalformedJSONAbortsAndKeepsStamp(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSource(t, cfg, "good.json", fixtureDoc)
	testsupport.WriteSource(t, cfg, "bad.json", `{"scenes": [`)
	testsupport.WriteManifest(t, cfg, "good.json", "bad.json")

	driver := extract.NewDriver(cfg, logging.NewNop(), nil)
	_, err := driver.Run(context.Background(), false)
	if err == nil {
		t.Fatal("expected parse failure to abort the run")
	}
	if !strings.Contains(err.Error(), "bad.json") {
		t.Fatalf("error should name the file: %v", err)
	}

	// The failure happened after good.json was written: its artifacts stay.
	if _, statErr := os.Stat(filepath.Join(cfg.Paths.TextDir, "good.json")); statErr != nil {
		t.Fatalf("good.json artifact missing: %v", statErr)
	}
	// But the stamp must not advance, so both files are retried next run.
	if _, statErr := os.Stat(cfg.Paths.Stamp); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("stamp should not exist after aborted run: %v", statErr)
	}
}

func TestDriverMissingManifestFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	driver := extract.NewDriver(cfg, logging.NewNop(), nil)
	if _, err := driver.Run(context.Background(), false); err == nil {
		t.Fatal("expected missing manifest to fail")
	}
}

func TestDriverRecordsJournal(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithJournal())
	testsupport.WriteSource(t, cfg, "story.json", fixtureDoc)
	testsupport.WriteSource(t, cfg, "empty.json", `{}`)
	testsupport.WriteManifest(t, cfg, "story.json", "empty.json")

	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	defer store.Close()

	driver := extract.NewDriver(cfg, logging.NewNop(), store)
	report, err := driver.Run(context.Background(), false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	runs, err := store.RecentRuns(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 journal run, got %d", len(runs))
	}
	if runs[0].ID != report.ID {
		t.Fatalf("journal run ID %q != report ID %q", runs[0].ID, report.ID)
	}
	if runs[0].FilesProcessed != 1 || runs[0].FilesSkipped != 1 {
		t.Fatalf("unexpected counts: %+v", runs[0])
	}

	files, err := store.RunFiles(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("RunFiles: %v", err)
	}
	if len(files) != 2 || files[0].Status != journal.StatusDone || files[1].Status != journal.StatusSkipped {
		t.Fatalf("unexpected file records: %+v", files)
	}
}
