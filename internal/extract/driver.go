package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sceneline/internal/config"
	"sceneline/internal/journal"
	"sceneline/internal/logging"
	"sceneline/internal/manifest"
)

// ErrRunInProgress is returned when another extraction holds the run lock.
var ErrRunInProgress = errors.New("another extraction is already running for this workspace")

// Driver orchestrates extraction across the manifest: change detection, the
// per-file walk, artifact writes, journal bookkeeping, and the stamp update.
type Driver struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *Resolver
	journal  *journal.Store // nil disables run history
}

// NewDriver builds a driver. journal may be nil.
func NewDriver(cfg *config.Config, logger *slog.Logger, jnl *journal.Store) *Driver {
	return &Driver{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "extract"),
		resolver: NewResolver(cfg.Extract),
		journal:  jnl,
	}
}

// FileReport is the outcome for one processed file.
type FileReport struct {
	Name    string
	Scenes  int
	Lines   int
	Selects int
	Skipped bool // document had no scenes
}

// RunReport summarizes one extraction run.
type RunReport struct {
	ID           string
	StartedAt    time.Time
	Duration     time.Duration
	Files        []FileReport
	StampUpdated bool
}

// Run executes one extraction pass. With force set, every manifest entry
// whose source file exists is reprocessed regardless of the stamp.
//
// Files are processed strictly in manifest order; the first load, parse, or
// write failure aborts the whole run and leaves the stamp untouched, so the
// next run reconsiders the same files. Artifacts already written stay in
// place.
func (d *Driver) Run(ctx context.Context, force bool) (*RunReport, error) {
	lock := flock.New(d.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, ErrRunInProgress
	}
	defer func() {
		_ = lock.Unlock()
	}()

	names, err := manifest.Read(d.cfg.Paths.Manifest)
	if err != nil {
		return nil, err
	}

	stamp := Stamp{Path: d.cfg.Paths.Stamp}
	var pending []string
	if force {
		pending, err = Existing(names, d.cfg.Paths.SourceDir)
	} else {
		pending, err = Pending(names, d.cfg.Paths.SourceDir, stamp)
	}
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}

	if err := d.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	for _, name := range pending {
		fileReport, err := d.extractFile(name)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, fileReport)
	}

	if len(report.Files) > 0 {
		if err := stamp.Update(time.Now()); err != nil {
			return nil, err
		}
		report.StampUpdated = true
		d.logger.Info("extract time updated", logging.String("stamp", stamp.Path))
	} else {
		d.logger.Info("no file updated")
	}

	report.Duration = time.Since(report.StartedAt)

	if err := d.recordRun(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// extractFile loads one source document, walks it, and writes both artifacts.
// Artifacts are written even for documents without scenes so downstream
// consumers can rely on the files existing.
func (d *Driver) extractFile(name string) (FileReport, error) {
	sourcePath := filepath.Join(d.cfg.Paths.SourceDir, name)
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return FileReport{}, fmt.Errorf("read source %s: %w", name, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	// Numbers stay json.Number so selection payloads round-trip without
	// reformatting.
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return FileReport{}, fmt.Errorf("parse source %s: %w", name, err)
	}

	result := d.resolver.Walk(doc)

	textOut, err := EncodeText(result.Text)
	if err != nil {
		return FileReport{}, fmt.Errorf("format text for %s: %w", name, err)
	}
	selectOut, err := EncodeSelect(result.Select)
	if err != nil {
		return FileReport{}, fmt.Errorf("format selects for %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(d.cfg.Paths.TextDir, name), textOut, 0o644); err != nil {
		return FileReport{}, fmt.Errorf("write text artifact for %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(d.cfg.Paths.SelectDir, name), selectOut, 0o644); err != nil {
		return FileReport{}, fmt.Errorf("write select artifact for %s: %w", name, err)
	}

	report := FileReport{
		Name:    name,
		Scenes:  result.Scenes,
		Lines:   result.Lines,
		Selects: result.Selects,
		Skipped: !result.HasScenes,
	}
	if report.Skipped {
		d.logger.Info(fmt.Sprintf("%s skipped (no scenes).", name))
	} else {
		d.logger.Info(fmt.Sprintf("%s extract DONE!", name),
			logging.Int("scenes", report.Scenes),
			logging.Int("lines", report.Lines),
			logging.Int("selects", report.Selects))
	}
	return report, nil
}

func (d *Driver) recordRun(ctx context.Context, report *RunReport) error {
	if d.journal == nil {
		return nil
	}

	run := journal.Run{
		ID:         report.ID,
		StartedAt:  report.StartedAt,
		FinishedAt: report.StartedAt.Add(report.Duration),
	}
	files := make([]journal.FileRecord, 0, len(report.Files))
	for _, file := range report.Files {
		record := journal.FileRecord{
			Filename: file.Name,
			Scenes:   file.Scenes,
			Lines:    file.Lines,
			Selects:  file.Selects,
			Status:   journal.StatusDone,
		}
		if file.Skipped {
			record.Status = journal.StatusSkipped
			run.FilesSkipped++
		} else {
			run.FilesProcessed++
		}
		run.Lines += file.Lines
		files = append(files, record)
	}

	if err := d.journal.RecordRun(ctx, run, files); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
