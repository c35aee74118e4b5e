package testsupport

import (
	"path/filepath"
	"testing"

	"sceneline/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a unique temp workspace per test.
// The journal is disabled by default so engine tests stay filesystem-only.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = root
	cfg.Paths.SourceDir = filepath.Join(root, "json")
	cfg.Paths.TextDir = filepath.Join(root, "extract", "text")
	cfg.Paths.SelectDir = filepath.Join(root, "extract", "select")
	cfg.Paths.Manifest = filepath.Join(root, "jsonlist.txt")
	cfg.Paths.Stamp = filepath.Join(root, "last_extract_time.txt")
	cfg.Paths.LogDir = filepath.Join(root, "logs")
	cfg.Journal.Enabled = false
	cfg.Journal.Path = filepath.Join(root, "logs", "journal.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithJournal enables the run journal on the test config.
func WithJournal() ConfigOption {
	return func(c *config.Config) {
		c.Journal.Enabled = true
	}
}

// WithPreferredSlots overrides the language slot preference order.
func WithPreferredSlots(slots ...int) ConfigOption {
	return func(c *config.Config) {
		c.Extract.PreferredSlots = slots
	}
}
